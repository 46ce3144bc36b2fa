package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	readability "github.com/go-shiori/go-readability"
)

type mockLogger struct {
	warnMessages []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnMessages = append(m.warnMessages, msg)
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

type mockCache struct {
	store map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if data, ok := m.store[key]; ok {
		return data, nil
	}
	return nil, errors.New("key not found")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.store[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.store, key)
	return nil
}

func stubArticle(text string) func(string, time.Duration) (readability.Article, error) {
	return func(url string, timeout time.Duration) (readability.Article, error) {
		return readability.Article{TextContent: text}, nil
	}
}

func TestExtractContent_ReturnsArticleText(t *testing.T) {
	orig := fromURL
	defer func() { fromURL = orig }()
	fromURL = stubArticle("Tesla reported record deliveries this quarter.")

	service := NewService(nil, &mockLogger{})

	got, err := service.ExtractContent(context.Background(), "https://example-news.com/tesla")
	if err != nil {
		t.Fatalf("ExtractContent returned error: %v", err)
	}
	if got != "Tesla reported record deliveries this quarter." {
		t.Errorf("ExtractContent = %q", got)
	}
}

func TestExtractContent_CapsLength(t *testing.T) {
	orig := fromURL
	defer func() { fromURL = orig }()
	fromURL = stubArticle(strings.Repeat("a", 1500))

	service := NewService(nil, &mockLogger{})

	got, err := service.ExtractContent(context.Background(), "https://example-news.com/long")
	if err != nil {
		t.Fatalf("ExtractContent returned error: %v", err)
	}
	if len(got) != 1000 {
		t.Errorf("content length = %d, want 1000", len(got))
	}
}

func TestExtractContent_FailureYieldsPlaceholder(t *testing.T) {
	orig := fromURL
	defer func() { fromURL = orig }()
	fromURL = func(url string, timeout time.Duration) (readability.Article, error) {
		return readability.Article{}, errors.New("fetch failed")
	}

	logger := &mockLogger{}
	service := NewService(nil, logger)

	got, err := service.ExtractContent(context.Background(), "https://example-news.com/broken")
	if err != nil {
		t.Fatalf("extraction failure should not surface an error, got %v", err)
	}
	if got != FailedPlaceholder {
		t.Errorf("ExtractContent = %q, want placeholder", got)
	}
	if len(logger.warnMessages) == 0 {
		t.Error("extraction failure should be logged")
	}
}

func TestExtractContent_EmptyBodyYieldsPlaceholder(t *testing.T) {
	orig := fromURL
	defer func() { fromURL = orig }()
	fromURL = stubArticle("   ")

	service := NewService(nil, &mockLogger{})

	got, err := service.ExtractContent(context.Background(), "https://example-news.com/empty")
	if err != nil {
		t.Fatalf("ExtractContent returned error: %v", err)
	}
	if got != FailedPlaceholder {
		t.Errorf("ExtractContent = %q, want placeholder", got)
	}
}

func TestExtractContent_UsesCache(t *testing.T) {
	orig := fromURL
	defer func() { fromURL = orig }()

	calls := 0
	fromURL = func(url string, timeout time.Duration) (readability.Article, error) {
		calls++
		return readability.Article{TextContent: "cached body"}, nil
	}

	cache := newMockCache()
	service := NewService(cache, &mockLogger{})

	for i := 0; i < 2; i++ {
		got, err := service.ExtractContent(context.Background(), "https://example-news.com/cached")
		if err != nil {
			t.Fatalf("ExtractContent returned error: %v", err)
		}
		if got != "cached body" {
			t.Errorf("ExtractContent = %q", got)
		}
	}

	if calls != 1 {
		t.Errorf("extractor called %d times, want 1 (second hit served from cache)", calls)
	}
}

func TestExtractContent_FailuresNotCached(t *testing.T) {
	orig := fromURL
	defer func() { fromURL = orig }()
	fromURL = func(url string, timeout time.Duration) (readability.Article, error) {
		return readability.Article{}, errors.New("fetch failed")
	}

	cache := newMockCache()
	service := NewService(cache, &mockLogger{})

	_, _ = service.ExtractContent(context.Background(), "https://example-news.com/broken")

	if len(cache.store) != 0 {
		t.Error("placeholder results should not be cached")
	}
}

func TestExtractContent_CancelledContext(t *testing.T) {
	service := NewService(nil, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := service.ExtractContent(ctx, "https://example-news.com/x"); err == nil {
		t.Error("cancelled context should surface an error")
	}
}
