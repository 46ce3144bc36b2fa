// ABOUTME: NewsItem domain model represents a single news mention of an entity
// ABOUTME: Provides score clamping and validation to keep pipeline invariants intact

package domain

import (
	"net/url"
	"strings"
	"time"
)

// Score bounds for the impact score of a news item.
const (
	MinImpactScore = 0.0
	MaxImpactScore = 10.0
)

// ContentType classifies the kind of news a NewsItem carries
type ContentType string

// Known content type classifications
const (
	ContentFinancial  ContentType = "Financial"
	ContentMA         ContentType = "M&A"
	ContentProduct    ContentType = "Product"
	ContentLeadership ContentType = "Leadership"
	ContentMarket     ContentType = "Market"
	ContentGeneral    ContentType = "General"
)

// NewsItem represents a single news mention flowing through the pipeline
type NewsItem struct {
	// Title is the headline of the news item
	Title string

	// URL is the absolute HTTP(S) link to the article
	URL string

	// Source identifies the adapter or feed that produced this item
	Source string

	// Snippet is an optional excerpt, may be empty
	Snippet string

	// Timestamp is the publish or discovery time. A nil timestamp means
	// unknown age: the item survives time filtering but earns no
	// freshness boost.
	Timestamp *time.Time

	// ImpactScore is the heuristic salience metric, always in [0, 10]
	ImpactScore float64

	// SearchQuery records which query variant produced this item
	SearchQuery string

	// ContentType is an optional classification of the news
	ContentType ContentType
}

// BoostScore raises the impact score by delta, clamped to the valid range
func (n *NewsItem) BoostScore(delta float64) {
	n.ImpactScore = ClampScore(n.ImpactScore + delta)
}

// AgeAt returns how old the item is relative to now.
// The second return is false when the timestamp is unknown.
func (n *NewsItem) AgeAt(now time.Time) (time.Duration, bool) {
	if n.Timestamp == nil {
		return 0, false
	}
	return now.Sub(*n.Timestamp), true
}

// HasValidURL reports whether the item's URL looks like an absolute HTTP(S) URL
func (n *NewsItem) HasValidURL() bool {
	if n.URL == "" {
		return false
	}
	parsed, err := url.Parse(n.URL)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

// IsValid checks if the item has the required fields for ranking
func (n *NewsItem) IsValid() bool {
	return n.Title != "" && n.HasValidURL()
}

// ClampScore bounds a score to [MinImpactScore, MaxImpactScore]
func ClampScore(score float64) float64 {
	if score < MinImpactScore {
		return MinImpactScore
	}
	if score > MaxImpactScore {
		return MaxImpactScore
	}
	return score
}
