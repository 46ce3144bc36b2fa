// ABOUTME: Search adapter scrapes DuckDuckGo HTML search results for entity news
// ABOUTME: One query, top five results, failures degrade to an empty result set

package sources

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsiq-app-api/core/domain"
	coreerrors "newsiq-app-api/core/errors"
	"newsiq-app-api/core/interfaces"
	"newsiq-app-api/core/scoring"
)

const (
	searchSourceName = "DuckDuckGo"
	searchBaseURL    = "https://html.duckduckgo.com/html/"
	maxSearchResults = 5
)

// SearchAdapter fetches entity news by scraping the DuckDuckGo HTML endpoint
type SearchAdapter struct {
	deps    interfaces.Dependencies
	timeout time.Duration
}

// NewSearchAdapter creates a search adapter. A zero timeout falls back to
// the default fetch budget.
func NewSearchAdapter(deps interfaces.Dependencies, timeout time.Duration) *SearchAdapter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SearchAdapter{deps: deps, timeout: timeout}
}

// Name returns the adapter identifier
func (a *SearchAdapter) Name() string {
	return "duckduckgo"
}

// Fetch scrapes search results for "<entity> news". On any transport or
// parse failure it returns an empty list and a tagged error for the caller
// to log; the error is never fatal.
func (a *SearchAdapter) Fetch(ctx context.Context, entity string) ([]domain.NewsItem, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	query := entity + " news"
	searchURL := searchBaseURL + "?q=" + url.QueryEscape(query)

	resp, err := a.deps.HTTPClient.Get(ctx, searchURL)
	if err != nil {
		return []domain.NewsItem{}, &coreerrors.SourceUnavailableError{
			Source: a.Name(),
			Reason: "search request failed",
			Err:    err,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return []domain.NewsItem{}, &coreerrors.SourceUnavailableError{
			Source: a.Name(),
			Reason: "search returned non-200 status",
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return []domain.NewsItem{}, &coreerrors.SourceUnavailableError{
			Source: a.Name(),
			Reason: "result page parse failed",
			Err:    err,
		}
	}

	now := time.Now()
	items := make([]domain.NewsItem, 0, maxSearchResults)

	doc.Find("div.result").EachWithBreak(func(_ int, result *goquery.Selection) bool {
		link := result.Find("a.result__a").First()
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return true
		}

		ts := now
		items = append(items, domain.NewsItem{
			Title:       title,
			URL:         normalizeLink(href),
			Source:      searchSourceName,
			Timestamp:   &ts,
			ImpactScore: scoring.Score(title, "", query),
			SearchQuery: query,
			ContentType: scoring.Classify(title, ""),
		})

		return len(items) < maxSearchResults
	})

	return items, nil
}
