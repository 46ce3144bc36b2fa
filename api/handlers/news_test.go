package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"

	"newsiq-app-api/core/aggregator"
	"newsiq-app-api/core/domain"
	coreerrors "newsiq-app-api/core/errors"
)

// mockAggregator is a mock implementation of the aggregation pipeline
type mockAggregator struct {
	aggregateFunc func(ctx context.Context, req aggregator.Request) (*domain.AggregateResult, error)
	snapshot      *domain.SessionSnapshot
	lastRequest   aggregator.Request
	calls         int
}

func (m *mockAggregator) Aggregate(ctx context.Context, req aggregator.Request) (*domain.AggregateResult, error) {
	m.calls++
	m.lastRequest = req
	if m.aggregateFunc != nil {
		return m.aggregateFunc(ctx, req)
	}
	return &domain.AggregateResult{
		Entity:  req.Entity,
		Outcome: domain.OutcomeOK,
		Items:   []domain.NewsItem{{Title: "Tesla earnings beat", URL: "https://reuters.com/t", Source: "Reuters", ImpactScore: 8.0}},
	}, nil
}

func (m *mockAggregator) Snapshot(sessionID string) *domain.SessionSnapshot {
	return m.snapshot
}

// mockExtractor is a mock entity extractor
type mockExtractor struct {
	result string
}

func (m *mockExtractor) Extract(text string) string {
	return m.result
}

// mockSummarizer is a mock summarizer
type mockSummarizer struct {
	summary string
	err     error
}

func (m *mockSummarizer) Summarize(ctx context.Context, items []domain.NewsItem, style, entity string) (string, error) {
	return m.summary, m.err
}

func newTestHandler(standard, enterprise *mockAggregator) *NewsHandler {
	return NewNewsHandler(standard, enterprise, &mockExtractor{}, &mockSummarizer{summary: "summary text"}, 5.0)
}

func TestNewsHandler_RegisterRoutes(t *testing.T) {
	handler := newTestHandler(&mockAggregator{}, nil)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/news/query"] == nil || openapi.Paths["/news/query"].Post == nil {
		t.Error("POST /news/query endpoint not registered")
	}
	if openapi.Paths["/sessions/{session_id}"] == nil || openapi.Paths["/sessions/{session_id}"].Get == nil {
		t.Error("GET /sessions/{session_id} endpoint not registered")
	}
	if openapi.Paths["/health"] == nil || openapi.Paths["/health"].Get == nil {
		t.Error("GET /health endpoint not registered")
	}
}

func TestNewsHandler_QueryNews_Success(t *testing.T) {
	standard := &mockAggregator{}
	handler := newTestHandler(standard, nil)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/news/query", map[string]interface{}{
		"entity": "Tesla",
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d, want 200, body %s", resp.Code, resp.Body.String())
	}

	body := resp.Body.String()
	if !strings.Contains(body, `"outcome":"ok"`) {
		t.Errorf("response should report the ok outcome: %s", body)
	}
	if !strings.Contains(body, "Tesla earnings beat") {
		t.Errorf("response should include item titles: %s", body)
	}
	if !strings.Contains(body, "summary text") {
		t.Errorf("response should include the styled summary: %s", body)
	}
}

func TestNewsHandler_QueryNews_DefaultsApplied(t *testing.T) {
	standard := &mockAggregator{}
	handler := newTestHandler(standard, nil)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/news/query", map[string]interface{}{
		"entity": "Tesla",
	})
	if resp.Code != 200 {
		t.Fatalf("status = %d", resp.Code)
	}

	if standard.lastRequest.WindowHours != 24 {
		t.Errorf("WindowHours = %d, want 24 default", standard.lastRequest.WindowHours)
	}
	if standard.lastRequest.ImpactThreshold != 5.0 {
		t.Errorf("ImpactThreshold = %v, want 5.0 default", standard.lastRequest.ImpactThreshold)
	}
}

func TestNewsHandler_QueryNews_ExtractsEntityFromMessage(t *testing.T) {
	standard := &mockAggregator{}
	handler := NewNewsHandler(standard, nil, &mockExtractor{result: "Tesla"}, &mockSummarizer{}, 5.0)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/news/query", map[string]interface{}{
		"message": "What is happening with Tesla stock?",
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
	if standard.lastRequest.Entity != "Tesla" {
		t.Errorf("Entity = %q, want extracted Tesla", standard.lastRequest.Entity)
	}
}

func TestNewsHandler_QueryNews_NoEntityRecognized(t *testing.T) {
	handler := newTestHandler(&mockAggregator{}, nil)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/news/query", map[string]interface{}{
		"message": "What happened in the markets today?",
	})

	if resp.Code != 400 {
		t.Errorf("status = %d, want 400 when no entity is recognized", resp.Code)
	}
}

func TestNewsHandler_QueryNews_EnterpriseRouting(t *testing.T) {
	standard := &mockAggregator{}
	enterprise := &mockAggregator{}
	handler := newTestHandler(standard, enterprise)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/news/query", map[string]interface{}{
		"entity":     "Tesla",
		"enterprise": true,
	})
	if resp.Code != 200 {
		t.Fatalf("status = %d", resp.Code)
	}

	if enterprise.calls != 1 {
		t.Errorf("enterprise service calls = %d, want 1", enterprise.calls)
	}
	if standard.calls != 0 {
		t.Errorf("standard service calls = %d, want 0", standard.calls)
	}
}

func TestNewsHandler_QueryNews_NoResultsMessage(t *testing.T) {
	standard := &mockAggregator{
		aggregateFunc: func(ctx context.Context, req aggregator.Request) (*domain.AggregateResult, error) {
			return &domain.AggregateResult{
				Entity:  req.Entity,
				Outcome: domain.OutcomeNoResults,
				Items:   []domain.NewsItem{},
			}, nil
		},
	}
	handler := newTestHandler(standard, nil)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/news/query", map[string]interface{}{
		"entity": "Obscurecorp",
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `"outcome":"no_results"`) {
		t.Errorf("response should report no_results: %s", body)
	}
	if !strings.Contains(body, "No recent news found") {
		t.Errorf("no_results should carry a guidance message: %s", body)
	}
}

func TestNewsHandler_QueryNews_BelowThresholdMessage(t *testing.T) {
	standard := &mockAggregator{
		aggregateFunc: func(ctx context.Context, req aggregator.Request) (*domain.AggregateResult, error) {
			return &domain.AggregateResult{
				Entity:     req.Entity,
				Outcome:    domain.OutcomeBelowThreshold,
				Items:      []domain.NewsItem{},
				Candidates: 7,
			}, nil
		},
	}
	handler := newTestHandler(standard, nil)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/news/query", map[string]interface{}{
		"entity": "Tesla",
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `"outcome":"below_threshold"`) {
		t.Errorf("response should report below_threshold: %s", body)
	}
	if !strings.Contains(body, "impact threshold") {
		t.Errorf("below_threshold should explain the threshold: %s", body)
	}
}

func TestNewsHandler_QueryNews_ValidationErrorMapsTo400(t *testing.T) {
	standard := &mockAggregator{
		aggregateFunc: func(ctx context.Context, req aggregator.Request) (*domain.AggregateResult, error) {
			return nil, &coreerrors.ValidationError{Field: "entity", Message: "entity name must be at least 2 characters"}
		},
	}
	handler := newTestHandler(standard, nil)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/news/query", map[string]interface{}{
		"entity": "zz",
	})

	if resp.Code != 400 {
		t.Errorf("status = %d, want 400 for validation error", resp.Code)
	}
}

func TestNewsHandler_GetSession_Found(t *testing.T) {
	standard := &mockAggregator{
		snapshot: &domain.SessionSnapshot{
			Entity:         "Tesla",
			Items:          []domain.NewsItem{{Title: "Stored item"}},
			QueryTime:      time.Now(),
			ProcessingTime: time.Second,
		},
	}
	handler := newTestHandler(standard, nil)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/sessions/sess-1")

	if resp.Code != 200 {
		t.Fatalf("status = %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Stored item") {
		t.Errorf("session response should carry stored items: %s", resp.Body.String())
	}
}

func TestNewsHandler_GetSession_NotFound(t *testing.T) {
	handler := newTestHandler(&mockAggregator{}, nil)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/sessions/unknown")

	if resp.Code != 404 {
		t.Errorf("status = %d, want 404 for unknown session", resp.Code)
	}
}

func TestNewsHandler_Health(t *testing.T) {
	handler := newTestHandler(&mockAggregator{}, nil)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/health")

	if resp.Code != 200 {
		t.Errorf("status = %d, want 200", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"status":"ok"`) {
		t.Errorf("health response = %s", resp.Body.String())
	}
}
