// ABOUTME: Mappers between domain models and API response DTOs
// ABOUTME: Keeps the wire format decoupled from the core domain types

package mappers

import (
	"newsiq-app-api/api/dto/responses"
	"newsiq-app-api/core/domain"
)

// ToNewsItemResponse converts a domain news item to its response DTO
func ToNewsItemResponse(item domain.NewsItem) responses.NewsItemResponse {
	return responses.NewsItemResponse{
		Title:       item.Title,
		URL:         item.URL,
		Source:      item.Source,
		Snippet:     item.Snippet,
		Timestamp:   item.Timestamp,
		ImpactScore: item.ImpactScore,
		ContentType: string(item.ContentType),
	}
}

// ToNewsItemResponses converts a slice of domain news items
func ToNewsItemResponses(items []domain.NewsItem) []responses.NewsItemResponse {
	result := make([]responses.NewsItemResponse, len(items))
	for i, item := range items {
		result[i] = ToNewsItemResponse(item)
	}
	return result
}

// ToSessionResponse converts a stored session snapshot to its response DTO
func ToSessionResponse(sessionID string, snapshot *domain.SessionSnapshot) *responses.SessionResponse {
	if snapshot == nil {
		return nil
	}
	return &responses.SessionResponse{
		SessionID:    sessionID,
		Entity:       snapshot.Entity,
		Items:        ToNewsItemResponses(snapshot.Items),
		QueryTime:    snapshot.QueryTime,
		ProcessingMs: snapshot.ProcessingTime.Milliseconds(),
	}
}
