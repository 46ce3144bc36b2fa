// ABOUTME: Shared helpers for source adapters
// ABOUTME: Link normalization, snippet truncation and loose timestamp parsing

package sources

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// defaultTimeout bounds a full adapter fetch
	defaultTimeout = 30 * time.Second

	// maxSnippetLength caps stored snippet size
	maxSnippetLength = 200
)

// normalizeLink turns scheme-relative hrefs from scraped result pages into
// absolute HTTPS URLs. Anything else is returned untouched; URL validation
// happens later in the pipeline.
func normalizeLink(href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}

// truncateSnippet limits a snippet to maxSnippetLength characters
func truncateSnippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxSnippetLength {
		return s
	}
	return s[:maxSnippetLength-3] + "..."
}

// parseTimestamp parses a loosely formatted publish date. Feeds disagree
// wildly on formats, so dateparse gets the first shot. The second return
// is false when nothing parseable was found.
func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
