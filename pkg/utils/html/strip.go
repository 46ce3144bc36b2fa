// ABOUTME: HTML utilities for stripping markup from feed content
// ABOUTME: Converts HTML fragments to plain text for scoring and display

package html

import (
	stdhtml "html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML converts an HTML fragment to plain text. Tags and script or
// style bodies are removed, entities are decoded, and runs of whitespace
// collapse to single spaces.
func StripHTML(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		// Unparseable markup, fall back to entity decoding only
		return collapseWhitespace(stdhtml.UnescapeString(fragment))
	}

	doc.Find("script, style").Remove()
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
