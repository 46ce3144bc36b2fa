// ABOUTME: Response DTOs for news query API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// NewsItemResponse represents a ranked news item in API responses
type NewsItemResponse struct {
	Title       string     `json:"title" doc:"Headline of the news item"`
	URL         string     `json:"url" doc:"Link to the full article"`
	Source      string     `json:"source" doc:"Adapter or feed that produced the item"`
	Snippet     string     `json:"snippet,omitempty" doc:"Short excerpt"`
	Timestamp   *time.Time `json:"timestamp,omitempty" doc:"Publish or discovery time, absent when unknown"`
	ImpactScore float64    `json:"impact_score" doc:"Heuristic salience score in [0, 10]"`
	ContentType string     `json:"content_type,omitempty" doc:"Classification of the news"`
}

// NewsQueryResponse represents the response for a news aggregation query
type NewsQueryResponse struct {
	Entity     string             `json:"entity" doc:"Entity the news was aggregated for"`
	Outcome    string             `json:"outcome" doc:"ok, no_results, or below_threshold"`
	Message    string             `json:"message,omitempty" doc:"Guidance when no items are returned"`
	Summary    string             `json:"summary,omitempty" doc:"Styled markdown summary of the items"`
	Items      []NewsItemResponse `json:"items" doc:"Ranked news items"`
	Candidates int                `json:"candidates" doc:"Deduplicated items considered before filtering"`
	DurationMs int64              `json:"duration_ms" doc:"Server-side processing time in milliseconds"`
}

// SessionResponse represents a stored session snapshot
type SessionResponse struct {
	SessionID    string             `json:"session_id" doc:"Session identifier"`
	Entity       string             `json:"entity" doc:"Entity of the stored query"`
	Items        []NewsItemResponse `json:"items" doc:"Items from the stored query"`
	QueryTime    time.Time          `json:"query_time" doc:"When the stored query ran"`
	ProcessingMs int64              `json:"processing_ms" doc:"Processing time of the stored query"`
}

// ArticleContentResponse carries extracted article text
type ArticleContentResponse struct {
	URL     string `json:"url" doc:"Article URL the content was extracted from"`
	Content string `json:"content" doc:"Readable article text, truncated"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status" doc:"Service status"`
}
