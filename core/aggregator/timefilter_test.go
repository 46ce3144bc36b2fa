package aggregator

import (
	"testing"
	"time"

	"newsiq-app-api/core/domain"
)

func TestWindowHours_KnownLabels(t *testing.T) {
	tests := []struct {
		window string
		want   int
	}{
		{"1 hour", 1},
		{"6 hours", 6},
		{"24 hours", 24},
		{"1 week", 168},
	}

	for _, tt := range tests {
		if got := WindowHours(tt.window); got != tt.want {
			t.Errorf("WindowHours(%q) = %d, want %d", tt.window, got, tt.want)
		}
	}
}

func TestWindowHours_UnknownLabelDefaults(t *testing.T) {
	if got := WindowHours("1 fortnight"); got != 24 {
		t.Errorf("WindowHours(unknown) = %d, want default 24", got)
	}
}

func TestCutoffFor_UnknownHoursDefaults(t *testing.T) {
	now := time.Now()

	cutoff := cutoffFor(7, now)

	if want := now.Add(-24 * time.Hour); !cutoff.Equal(want) {
		t.Errorf("cutoffFor(7) = %v, want default 24h cutoff %v", cutoff, want)
	}
}

func TestFilterByWindow_ItemAtCutoffRetained(t *testing.T) {
	cutoff := time.Now().Add(-24 * time.Hour)
	items := []domain.NewsItem{
		{Title: "Exactly at cutoff", Timestamp: timePtr(cutoff)},
	}

	filtered := filterByWindow(items, cutoff)

	if len(filtered) != 1 {
		t.Error("item timestamped exactly at the cutoff should be retained")
	}
}

func TestFilterByWindow_StaleItemDropped(t *testing.T) {
	cutoff := time.Now().Add(-24 * time.Hour)
	items := []domain.NewsItem{
		{Title: "One second too old", Timestamp: timePtr(cutoff.Add(-time.Second))},
	}

	filtered := filterByWindow(items, cutoff)

	if len(filtered) != 0 {
		t.Error("item older than the cutoff should be dropped")
	}
}

func TestFilterByWindow_UnknownAgeRetained(t *testing.T) {
	cutoff := time.Now().Add(-time.Hour)
	items := []domain.NewsItem{
		{Title: "No timestamp at all"},
	}

	filtered := filterByWindow(items, cutoff)

	if len(filtered) != 1 {
		t.Error("item with no timestamp should survive any window")
	}
}

func TestFilterByWindow_RecentItemRetained(t *testing.T) {
	cutoff := time.Now().Add(-24 * time.Hour)
	items := []domain.NewsItem{
		{Title: "Published an hour ago", Timestamp: timePtr(time.Now().Add(-time.Hour))},
	}

	filtered := filterByWindow(items, cutoff)

	if len(filtered) != 1 {
		t.Error("recent item should be retained")
	}
}
