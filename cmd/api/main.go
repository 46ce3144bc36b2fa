// ABOUTME: Main entry point for the NewsIQ API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsiq-app-api/api"
	"newsiq-app-api/api/handlers"
	"newsiq-app-api/core/aggregator"
	"newsiq-app-api/core/entity"
	"newsiq-app-api/core/extract"
	"newsiq-app-api/core/interfaces"
	"newsiq-app-api/core/sources"
	"newsiq-app-api/core/summary"
	"newsiq-app-api/infrastructure/cache/memory"
	"newsiq-app-api/infrastructure/cache/redis"
	stdhttp "newsiq-app-api/infrastructure/http/standard"
	logruslogger "newsiq-app-api/infrastructure/logger/logrus"
	"newsiq-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogrusLogger(logruslogger.Options{
		LogFile: cfg.Server.LogFile,
		Debug:   cfg.Server.Debug,
	})
	logger.Info("Starting NewsIQ API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	crawlTimeout := time.Duration(cfg.Crawler.TimeoutSeconds) * time.Second
	httpClient := stdhttp.NewStandardHTTPClient(crawlTimeout)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create source adapters. Registration order matters: the
	// deduplicator keeps the first-seen copy of a story, so RSS feeds
	// (vendor newsrooms) take priority over scraped search results.
	subTimeout := time.Duration(cfg.Crawler.SubTimeoutSeconds) * time.Second
	rssAdapter := sources.NewFeedAdapter(deps, cfg.Crawler.Feeds, crawlTimeout)
	searchAdapter := sources.NewSearchAdapter(deps, crawlTimeout)
	multiAdapter := sources.NewMultiQueryAdapter(deps, subTimeout, 15)

	// Both pipelines share one session store so follow-up lookups see
	// either flow's snapshots
	sessions := aggregator.NewSessionStore(cache)

	standard := aggregator.NewService(deps,
		[]interfaces.SourceAdapter{rssAdapter, searchAdapter},
		aggregator.Options{
			MaxResults:     cfg.Aggregation.MaxResults,
			TrustedSources: cfg.Aggregation.TrustedSources,
			Sessions:       sessions,
		})

	enterprise := aggregator.NewService(deps,
		[]interfaces.SourceAdapter{rssAdapter, multiAdapter},
		aggregator.Options{
			MaxResults:     cfg.Aggregation.EnterpriseMaxResults,
			TrustedSources: cfg.Aggregation.TrustedSources,
			Sessions:       sessions,
		})

	summarizer := summary.NewService(&deps)
	extractor := entity.NewExtractor()
	contentService := extract.NewService(cache, logger)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	newsHandler := handlers.NewNewsHandler(standard, enterprise, extractor, summarizer, cfg.Aggregation.ImpactThreshold)
	newsHandler.RegisterRoutes(humaAPI)

	contentHandler := handlers.NewContentHandler(contentService)
	contentHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
