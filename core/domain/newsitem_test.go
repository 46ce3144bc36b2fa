package domain

import (
	"testing"
	"time"
)

func TestClampScore_WithinRange(t *testing.T) {
	if got := ClampScore(5.5); got != 5.5 {
		t.Errorf("ClampScore(5.5) = %f, want 5.5", got)
	}
}

func TestClampScore_AboveMax(t *testing.T) {
	if got := ClampScore(12.3); got != MaxImpactScore {
		t.Errorf("ClampScore(12.3) = %f, want %f", got, MaxImpactScore)
	}
}

func TestClampScore_BelowMin(t *testing.T) {
	if got := ClampScore(-1.0); got != MinImpactScore {
		t.Errorf("ClampScore(-1.0) = %f, want %f", got, MinImpactScore)
	}
}

func TestBoostScore_ClampsAtMax(t *testing.T) {
	item := NewsItem{ImpactScore: 9.8}

	item.BoostScore(1.0)

	if item.ImpactScore != MaxImpactScore {
		t.Errorf("BoostScore pushed score to %f, want %f", item.ImpactScore, MaxImpactScore)
	}
}

func TestBoostScore_AddsDelta(t *testing.T) {
	item := NewsItem{ImpactScore: 5.0}

	item.BoostScore(1.0)

	if item.ImpactScore != 6.0 {
		t.Errorf("BoostScore result = %f, want 6.0", item.ImpactScore)
	}
}

func TestAgeAt_UnknownTimestamp(t *testing.T) {
	item := NewsItem{}

	_, known := item.AgeAt(time.Now())

	if known {
		t.Error("AgeAt should report unknown age for nil timestamp")
	}
}

func TestAgeAt_KnownTimestamp(t *testing.T) {
	now := time.Now()
	published := now.Add(-2 * time.Hour)
	item := NewsItem{Timestamp: &published}

	age, known := item.AgeAt(now)

	if !known {
		t.Fatal("AgeAt should report known age")
	}
	if age != 2*time.Hour {
		t.Errorf("AgeAt = %v, want 2h", age)
	}
}

func TestHasValidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"https URL", "https://example.com/article", true},
		{"http URL", "http://example.com/article", true},
		{"empty URL", "", false},
		{"relative URL", "/news/article", false},
		{"non-http scheme", "ftp://example.com/file", false},
		{"missing host", "https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewsItem{URL: tt.url}
			if got := item.HasValidURL(); got != tt.want {
				t.Errorf("HasValidURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsValid_RequiresTitle(t *testing.T) {
	item := NewsItem{URL: "https://example.com/article"}

	if item.IsValid() {
		t.Error("IsValid should be false without a title")
	}
}
