package sources

import (
	"strings"
	"testing"
)

func TestNormalizeLink(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{"absolute URL untouched", "https://example.com/a", "https://example.com/a"},
		{"scheme-relative gets https", "//duckduckgo.com/l/?uddg=x", "https://duckduckgo.com/l/?uddg=x"},
		{"surrounding whitespace trimmed", "  https://example.com/a  ", "https://example.com/a"},
		{"relative path untouched", "/news/1", "/news/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeLink(tt.href); got != tt.want {
				t.Errorf("normalizeLink(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}

func TestTruncateSnippet_ShortUnchanged(t *testing.T) {
	if got := truncateSnippet("short snippet"); got != "short snippet" {
		t.Errorf("truncateSnippet = %q", got)
	}
}

func TestTruncateSnippet_LongCapped(t *testing.T) {
	long := strings.Repeat("word ", 100)

	got := truncateSnippet(long)

	if len(got) > maxSnippetLength {
		t.Errorf("truncated snippet length %d exceeds %d", len(got), maxSnippetLength)
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated snippet should end with ellipsis")
	}
}

func TestParseTimestamp_RFC1123(t *testing.T) {
	ts, ok := parseTimestamp("Mon, 02 Jan 2023 15:04:05 GMT")

	if !ok {
		t.Fatal("parseTimestamp should handle RFC1123 dates")
	}
	if ts.Year() != 2023 {
		t.Errorf("year = %d, want 2023", ts.Year())
	}
}

func TestParseTimestamp_ISO(t *testing.T) {
	ts, ok := parseTimestamp("2024-06-15T10:30:00Z")

	if !ok || ts.Month() != 6 {
		t.Errorf("parseTimestamp ISO failed: ok=%v ts=%v", ok, ts)
	}
}

func TestParseTimestamp_Garbage(t *testing.T) {
	if _, ok := parseTimestamp("not a date"); ok {
		t.Error("parseTimestamp should reject garbage input")
	}
}

func TestParseTimestamp_Empty(t *testing.T) {
	if _, ok := parseTimestamp(""); ok {
		t.Error("parseTimestamp should reject empty input")
	}
}
