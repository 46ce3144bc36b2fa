// ABOUTME: Article content extraction for full-text enrichment of news items
// ABOUTME: Uses go-readability with a cache in front, capped to a short excerpt

package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"newsiq-app-api/core/interfaces"
)

const (
	// maxContentLength caps extracted text so downstream summaries stay small
	maxContentLength = 1000

	extractTimeout  = 10 * time.Second
	contentCacheTTL = time.Hour

	// FailedPlaceholder is returned when a page cannot be extracted
	FailedPlaceholder = "Content extraction failed"
)

// fromURL is swapped in tests to avoid network access
var fromURL = readability.FromURL

// Service extracts the readable body of an article URL. Extraction is
// best effort: pages that cannot be parsed yield a placeholder rather
// than an error, so one bad article never fails a whole response.
type Service struct {
	cache  interfaces.Cache
	logger interfaces.Logger
}

func NewService(cache interfaces.Cache, logger interfaces.Logger) *Service {
	return &Service{
		cache:  cache,
		logger: logger,
	}
}

// ExtractContent returns up to 1000 characters of the article's main
// text. Results are cached per URL; failures return the placeholder
// string and a nil error.
func (s *Service) ExtractContent(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cacheKey := fmt.Sprintf("content:%s", url)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil && data != nil {
			return string(data), nil
		}
	}

	article, err := fromURL(url, extractTimeout)
	if err != nil {
		s.logger.Warn("Content extraction failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return FailedPlaceholder, nil
	}

	content := truncateContent(article.TextContent)
	if content == "" {
		return FailedPlaceholder, nil
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, []byte(content), contentCacheTTL)
	}

	return content, nil
}

func truncateContent(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > maxContentLength {
		return trimmed[:maxContentLength]
	}
	return trimmed
}
