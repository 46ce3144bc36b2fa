// ABOUTME: Quality filter drops low-signal candidates before ranking
// ABOUTME: Threshold, minimum title length and absolute HTTP(S) URL checks

package aggregator

import (
	"strings"

	"newsiq-app-api/core/domain"
)

// minTitleLength is the shortest title considered real news
const minTitleLength = 10

// qualityFilter drops items that score below the threshold, carry a title
// shorter than minTitleLength, look like error pages, or lack an absolute
// HTTP(S) URL. The threshold compares the pre-boost impact score.
func qualityFilter(items []domain.NewsItem, threshold float64) []domain.NewsItem {
	filtered := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		if item.ImpactScore < threshold {
			continue
		}
		if len(item.Title) < minTitleLength {
			continue
		}
		if strings.Contains(strings.ToLower(item.Title), "error") {
			continue
		}
		if !item.HasValidURL() {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
