// ABOUTME: Impact scorer assigns a bounded salience score to a news item
// ABOUTME: Additive keyword-bucket model, deterministic so results are testable

package scoring

import (
	"strings"

	"newsiq-app-api/core/domain"
)

// baseScore is the starting point before any keyword adjustments
const baseScore = 5.0

// minSnippetLength is the snippet size under which the brevity penalty applies
const minSnippetLength = 50

// Keyword buckets with their per-match increments. Matching is
// case-insensitive substring search over title+snippet; every match in a
// bucket adds that bucket's increment, the final clamp is the only cap.
var impactBuckets = []struct {
	increment float64
	keywords  []string
}{
	{4.0, []string{"bankruptcy", "lawsuit", "investigation", "scandal", "fraud", "fired", "resignation"}},
	{2.5, []string{"acquisition", "merger", "ipo", "earnings beat", "breakthrough", "partnership"}},
	{1.5, []string{"earnings", "revenue", "quarterly", "investment", "expansion", "launch"}},
	{0.5, []string{"update", "statement", "comment", "meeting", "interview"}},
}

// Score computes the impact score for a news item from its title, snippet
// and the query context that produced it. The result is always in [0, 10].
func Score(title, snippet, queryContext string) float64 {
	text := strings.ToLower(title + " " + snippet)
	score := baseScore

	for _, bucket := range impactBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(text, keyword) {
				score += bucket.increment
			}
		}
	}

	// Recency hint from the query variant that found the item
	query := strings.ToLower(queryContext)
	if strings.Contains(query, "today") || strings.Contains(query, "latest") {
		score += 1.0
	}

	// Very short snippets carry little signal
	if len(snippet) < minSnippetLength {
		score -= 0.5
	}

	return domain.ClampScore(score)
}

// Classify assigns a content type to a news item based on keyword presence.
// The first matching category wins; anything unmatched is General.
func Classify(title, snippet string) domain.ContentType {
	text := strings.ToLower(title + " " + snippet)

	categories := []struct {
		contentType domain.ContentType
		keywords    []string
	}{
		{domain.ContentFinancial, []string{"earnings", "quarterly", "revenue", "profit"}},
		{domain.ContentMA, []string{"acquisition", "merger", "deal", "partnership"}},
		{domain.ContentProduct, []string{"product", "launch", "release", "innovation"}},
		{domain.ContentLeadership, []string{"ceo", "executive", "leadership"}},
		{domain.ContentMarket, []string{"stock", "shares", "market", "trading"}},
	}

	for _, category := range categories {
		for _, keyword := range category.keywords {
			if strings.Contains(text, keyword) {
				return category.contentType
			}
		}
	}

	return domain.ContentGeneral
}
