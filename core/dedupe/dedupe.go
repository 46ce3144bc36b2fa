// ABOUTME: Deduplicator removes URL-identical and near-duplicate news items
// ABOUTME: Title similarity uses token overlap over the larger token set, first-seen wins

package dedupe

import (
	"strings"

	"newsiq-app-api/core/domain"
)

// SimilarityThreshold is the title token-overlap ratio above which two
// items are considered the same story.
const SimilarityThreshold = 0.7

// Dedupe removes duplicates from a candidate list. Stage one drops items
// whose normalized URL was already seen; stage two drops items whose title
// similarity to any previously accepted item exceeds SimilarityThreshold.
// Acceptance follows input order, so the first-seen item always wins:
// callers should feed higher-priority sources first.
//
// The title comparison is O(n²) over the candidate set. That is fine for
// the tens of items a single query produces, but it is a known ceiling if
// candidate sets ever grow by orders of magnitude.
func Dedupe(items []domain.NewsItem) []domain.NewsItem {
	if len(items) == 0 {
		return []domain.NewsItem{}
	}

	unique := make([]domain.NewsItem, 0, len(items))
	seenURLs := make(map[string]struct{}, len(items))
	seenTitles := make([][]string, 0, len(items))

	for _, item := range items {
		url := normalizeURL(item.URL)
		if url != "" {
			if _, dup := seenURLs[url]; dup {
				continue
			}
		}

		tokens := tokenize(item.Title)
		if similarToAny(tokens, seenTitles) {
			continue
		}

		if url != "" {
			seenURLs[url] = struct{}{}
		}
		seenTitles = append(seenTitles, tokens)
		unique = append(unique, item)
	}

	return unique
}

// TitleSimilarity returns the overlap ratio between two titles: the size of
// the intersection of their lower-cased token sets divided by the size of
// the larger set. Empty titles have zero similarity.
func TitleSimilarity(a, b string) float64 {
	return tokenSimilarity(tokenize(a), tokenize(b))
}

// normalizeURL lowercases the URL and strips the scheme so that the same
// article reached over http and https counts as one.
func normalizeURL(url string) string {
	u := strings.ToLower(strings.TrimSpace(url))
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	return u
}

// tokenize splits a title into its lower-cased word set
func tokenize(title string) []string {
	fields := strings.Fields(strings.ToLower(title))
	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

func tokenSimilarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}

	common := 0
	for _, t := range b {
		if _, ok := set[t]; ok {
			common++
		}
	}

	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}

	return float64(common) / float64(larger)
}

func similarToAny(tokens []string, accepted [][]string) bool {
	for _, prev := range accepted {
		if tokenSimilarity(tokens, prev) > SimilarityThreshold {
			return true
		}
	}
	return false
}
