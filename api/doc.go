// Package api provides the HTTP API layer for the NewsIQ application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type NewsQueryRequest struct {
//	    Entity          string   `json:"entity,omitempty" maxLength:"100"`
//	    Style           string   `json:"style,omitempty" enum:"professional,bullets,casual,executive,technical"`
//	    ImpactThreshold *float64 `json:"impact_threshold,omitempty" minimum:"0" maximum:"10"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling (when configured)
//
// # Usage Example
//
//	// Create API with middleware
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI := api.NewAPIWithMiddleware(cfg)
//
//	// Register handlers
//	newsHandler := handlers.NewNewsHandler(standard, enterprise, extractor, summarizer, threshold)
//	newsHandler.RegisterRoutes(humaAPI)
//
//	// Get HTTP handler
//	router := humaAPI.Adapter()
//
//	// Start server
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "entity is required",
//	    "instance": "/news/query"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
