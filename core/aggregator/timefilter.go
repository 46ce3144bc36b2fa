// ABOUTME: Time filter discards items outside the caller's recency window
// ABOUTME: Unknown-age items are kept: absence of information is not grounds for exclusion

package aggregator

import (
	"time"

	"newsiq-app-api/core/domain"
)

// defaultWindowHours applies when the caller's window is not a known value
const defaultWindowHours = 24

// windowHours maps the caller-facing window labels to hours
var windowHours = map[string]int{
	"1 hour":   1,
	"6 hours":  6,
	"24 hours": 24,
	"1 week":   168,
}

// WindowHours resolves a window label to hours, defaulting to 24
func WindowHours(window string) int {
	if hours, ok := windowHours[window]; ok {
		return hours
	}
	return defaultWindowHours
}

// cutoffFor derives the cutoff timestamp for a window. Unknown hour
// counts fall back to the default window.
func cutoffFor(hours int, now time.Time) time.Time {
	valid := false
	for _, h := range windowHours {
		if h == hours {
			valid = true
			break
		}
	}
	if !valid {
		hours = defaultWindowHours
	}
	return now.Add(-time.Duration(hours) * time.Hour)
}

// filterByWindow retains items published at or after the cutoff. Items
// with no timestamp are retained too; they just earn no freshness boost
// later.
func filterByWindow(items []domain.NewsItem, cutoff time.Time) []domain.NewsItem {
	filtered := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		if item.Timestamp == nil || !item.Timestamp.Before(cutoff) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
