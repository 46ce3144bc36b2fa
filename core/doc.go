// Package core contains the business logic for the NewsIQ API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (NewsItem, SessionSnapshot, AggregateResult)
// - sources: News source adapters (RSS feeds, DuckDuckGo search, multi-query scrape)
// - scoring: Keyword-based impact scoring
// - dedupe: URL and title-similarity deduplication
// - aggregator: Concurrent fan-out pipeline combining the above
// - entity: Company-name extraction from free-form text
// - summary: Styled text summaries of ranked results
// - extract: Full-article content extraction
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "newsiq-app-api/core/aggregator"
//	    "newsiq-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	svc := aggregator.NewService(deps, aggregator.Options{
//	    Sources: adapters,
//	})
//
//	// Aggregate news
//	result, err := svc.Aggregate(ctx, aggregator.Request{
//	    Entity:      "Tesla",
//	    WindowHours: 24,
//	})
package core
