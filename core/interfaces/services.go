// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"newsiq-app-api/core/domain"
)

// SourceAdapter fetches raw candidate news items for one entity from a
// single external source. Adapters never block past their own timeout;
// on transport or parse failure they return an empty list plus a
// non-fatal error for logging, never a panic.
type SourceAdapter interface {
	// Name returns a short identifier for the adapter, used in logs
	Name() string

	// Fetch returns zero or more news items for the given entity name.
	// Every returned item has Source, Timestamp (best effort) and
	// ImpactScore assigned.
	Fetch(ctx context.Context, entity string) ([]domain.NewsItem, error)
}

// EntityExtractor pulls a candidate entity (company) name out of free text.
// An empty string means no entity was found and the aggregation core
// should not be invoked.
type EntityExtractor interface {
	Extract(text string) string
}

// Summarizer turns a ranked item list into a user-facing text response
// in the requested style. It receives the list exactly as the
// aggregator produced it.
type Summarizer interface {
	Summarize(ctx context.Context, items []domain.NewsItem, style string, entity string) (string, error)
}

// ContentExtractor retrieves readable article text for a news item URL
type ContentExtractor interface {
	ExtractContent(ctx context.Context, url string) (string, error)
}
