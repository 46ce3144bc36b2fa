package aggregator

import (
	"context"
	"errors"
	"time"

	"newsiq-app-api/core/domain"
)

// mockAdapter is a mock implementation of the SourceAdapter interface
type mockAdapter struct {
	name      string
	items     []domain.NewsItem
	err       error
	delay     time.Duration
	fetchFunc func(ctx context.Context, entity string) ([]domain.NewsItem, error)
}

func (m *mockAdapter) Name() string {
	return m.name
}

func (m *mockAdapter) Fetch(ctx context.Context, entity string) ([]domain.NewsItem, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, entity)
	}
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return []domain.NewsItem{}, ctx.Err()
		}
	}
	return m.items, m.err
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugMessages []string
	infoMessages  []string
	warnMessages  []string
	errorMessages []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	m.debugMessages = append(m.debugMessages, msg)
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	m.infoMessages = append(m.infoMessages, msg)
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnMessages = append(m.warnMessages, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.errorMessages = append(m.errorMessages, msg)
}

// mockCache is a mock implementation of the Cache interface
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

// newsItem builds a test item with sensible defaults
func newsItem(title, url, source string, score float64, ts *time.Time) domain.NewsItem {
	return domain.NewsItem{
		Title:       title,
		URL:         url,
		Source:      source,
		ImpactScore: score,
		Timestamp:   ts,
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
