// ABOUTME: Ranking-time score boosts and final ordering of surviving items
// ABOUTME: Credibility and freshness boosts, then sort by (score, recency) descending

package aggregator

import (
	"sort"
	"strings"
	"time"

	"newsiq-app-api/core/domain"
)

// Boost amounts applied after filtering, both clamped by BoostScore
const (
	credibilityBoost = 1.0
	freshnessBoost   = 0.5
)

// freshnessWindow is the item age under which the freshness boost applies
const freshnessWindow = time.Hour

// defaultTrustedSources is the built-in credibility allow-list
var defaultTrustedSources = []string{"reuters", "bloomberg", "cnbc", "ap", "wsj"}

// applyBoosts raises scores in place: +1.0 for items from a trusted
// source, +0.5 for items under an hour old. Unknown-age items never get
// the freshness boost.
func applyBoosts(items []domain.NewsItem, trusted []string, now time.Time) {
	for i := range items {
		source := strings.ToLower(items[i].Source)
		for _, t := range trusted {
			if strings.Contains(source, t) {
				items[i].BoostScore(credibilityBoost)
				break
			}
		}

		if age, known := items[i].AgeAt(now); known && age < freshnessWindow {
			items[i].BoostScore(freshnessBoost)
		}
	}
}

// sortRanked orders items by impact score descending, with recency as the
// tiebreak: a more recent item wins an equal score. Items with no
// timestamp sort as if oldest for tiebreak purposes only.
func sortRanked(items []domain.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ImpactScore != items[j].ImpactScore {
			return items[i].ImpactScore > items[j].ImpactScore
		}
		ti, tj := items[i].Timestamp, items[j].Timestamp
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})
}
