// ABOUTME: Heuristic entity extraction from free-form user input
// ABOUTME: Finds the company name preceding indicator words like "stock" or "shares"

package entity

import (
	"strings"
)

const minEntityLength = 2

// entityIndicators are words that in financial chatter usually follow the
// company being asked about ("Tesla stock", "Rivian shares")
var entityIndicators = map[string]bool{
	"stock":   true,
	"shares":  true,
	"ticker":  true,
	"company": true,
	"corp":    true,
	"inc":     true,
	"ltd":     true,
}

// invalidPatterns mark strings that are clearly not company names
var invalidPatterns = []string{
	"http://", "https://", "www.", ".com", ".org", ".net",
	"test", "example", "demo", "sample",
}

// Extractor pulls a likely company name out of conversational input. It
// is a cheap pattern matcher, not a language model; callers should treat
// an empty result as "ask the user to name the company".
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the token preceding the first indicator word, or an
// empty string when the input names no recognizable entity.
func (e *Extractor) Extract(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if i == 0 {
			continue
		}
		if entityIndicators[normalizeToken(word)] {
			candidate := strings.Trim(words[i-1], ".,!?;:'\"()")
			if IsValidEntityName(candidate) {
				return candidate
			}
		}
	}
	return ""
}

func normalizeToken(word string) string {
	return strings.Trim(strings.ToLower(word), ".,!?;:'\"()")
}

// IsValidEntityName reports whether a string is plausible as a company
// name: long enough and free of URL fragments and placeholder words.
func IsValidEntityName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minEntityLength {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, pattern := range invalidPatterns {
		if strings.Contains(lower, pattern) {
			return false
		}
	}

	return true
}
