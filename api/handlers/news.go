// ABOUTME: News query handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for news aggregation, sessions, and health

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"newsiq-app-api/api/dto/mappers"
	"newsiq-app-api/api/dto/requests"
	"newsiq-app-api/api/dto/responses"
	"newsiq-app-api/core/aggregator"
	"newsiq-app-api/core/domain"
	"newsiq-app-api/core/interfaces"
)

// AggregatorService defines the methods needed from the aggregation pipeline
type AggregatorService interface {
	Aggregate(ctx context.Context, req aggregator.Request) (*domain.AggregateResult, error)
	Snapshot(sessionID string) *domain.SessionSnapshot
}

// NewsHandler handles news-related HTTP requests
type NewsHandler struct {
	standard         AggregatorService
	enterprise       AggregatorService
	extractor        interfaces.EntityExtractor
	summarizer       interfaces.Summarizer
	defaultThreshold float64
}

// NewNewsHandler creates a new news handler. The enterprise service may
// equal the standard one when no extended search path is configured.
func NewNewsHandler(standard, enterprise AggregatorService, extractor interfaces.EntityExtractor, summarizer interfaces.Summarizer, defaultThreshold float64) *NewsHandler {
	return &NewsHandler{
		standard:         standard,
		enterprise:       enterprise,
		extractor:        extractor,
		summarizer:       summarizer,
		defaultThreshold: defaultThreshold,
	}
}

// RegisterRoutes registers all news-related routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "queryNews",
		Method:      http.MethodPost,
		Path:        "/news/query",
		Summary:     "Aggregate and rank news for an entity",
		Description: "Fans out to all configured news sources, deduplicates, filters, and ranks the results",
		Tags:        []string{"News"},
	}, h.QueryNews)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/sessions/{session_id}",
		Summary:     "Fetch the most recent result snapshot for a session",
		Tags:        []string{"Sessions"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service liveness check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// QueryNewsInput defines the input for the QueryNews operation
type QueryNewsInput struct {
	Body requests.NewsQueryRequest
}

// QueryNewsOutput defines the output for the QueryNews operation
type QueryNewsOutput struct {
	Body responses.NewsQueryResponse
}

// QueryNews handles the POST /news/query endpoint
func (h *NewsHandler) QueryNews(ctx context.Context, input *QueryNewsInput) (*QueryNewsOutput, error) {
	input.Body.ApplyDefaults(h.defaultThreshold)

	entity := input.Body.Entity
	if entity == "" && h.extractor != nil {
		entity = h.extractor.Extract(input.Body.Message)
	}
	if entity == "" {
		return nil, huma.Error400BadRequest("No company recognized. Mention a specific company name for detailed news analysis.")
	}

	service := h.standard
	if input.Body.Enterprise && h.enterprise != nil {
		service = h.enterprise
	}

	start := time.Now()
	result, err := service.Aggregate(ctx, aggregator.Request{
		Entity:          entity,
		WindowHours:     aggregator.WindowHours(input.Body.TimeRange),
		ImpactThreshold: *input.Body.ImpactThreshold,
		SessionID:       input.Body.SessionID,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	out := &QueryNewsOutput{
		Body: responses.NewsQueryResponse{
			Entity:     result.Entity,
			Outcome:    string(result.Outcome),
			Items:      mappers.ToNewsItemResponses(result.Items),
			Candidates: result.Candidates,
			DurationMs: time.Since(start).Milliseconds(),
		},
	}

	switch result.Outcome {
	case domain.OutcomeNoResults:
		out.Body.Message = fmt.Sprintf("No recent news found for '%s'. The company might be private, very new, or the name might need clarification.", result.Entity)
	case domain.OutcomeBelowThreshold:
		out.Body.Message = fmt.Sprintf("News for '%s' was found but nothing met the impact threshold. Try lowering it.", result.Entity)
	default:
		if h.summarizer != nil {
			summary, err := h.summarizer.Summarize(ctx, result.Items, input.Body.Style, result.Entity)
			if err != nil {
				return nil, toHumaError(err)
			}
			out.Body.Summary = summary
		}
	}

	return out, nil
}

// GetSessionInput defines the input for the GetSession operation
type GetSessionInput struct {
	SessionID string `path:"session_id" maxLength:"100" doc:"Session identifier"`
}

// GetSessionOutput defines the output for the GetSession operation
type GetSessionOutput struct {
	Body responses.SessionResponse
}

// GetSession handles the GET /sessions/{session_id} endpoint
func (h *NewsHandler) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	snapshot := h.standard.Snapshot(input.SessionID)
	if snapshot == nil {
		return nil, huma.Error404NotFound("No snapshot stored for this session")
	}

	resp := mappers.ToSessionResponse(input.SessionID, snapshot)
	return &GetSessionOutput{Body: *resp}, nil
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *NewsHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}, nil
}
