// ABOUTME: Multi-query adapter issues several search reformulations and temporal filters
// ABOUTME: Internally deduplicates and caps its output before the global merge

package sources

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsiq-app-api/core/dedupe"
	"newsiq-app-api/core/domain"
	coreerrors "newsiq-app-api/core/errors"
	"newsiq-app-api/core/interfaces"
	"newsiq-app-api/core/scoring"
)

const (
	multiQuerySourceName = "DuckDuckGo-Enhanced"
	defaultSubTimeout    = 15 * time.Second
	maxResultsPerPage    = 5
	defaultMultiQueryCap = 15
)

// Query reformulations issued for every entity. The variety covers the
// angles a single "<entity> news" query tends to miss.
var queryVariants = []string{
	`"%s" news today`,
	`%s earnings latest`,
	`%s stock news`,
	`%s press release`,
	`%s acquisition merger`,
	`%s CEO announcement`,
	`%s financial results`,
}

// Temporal filters applied to each query: unbounded, last day, last week
var temporalFilters = []string{"", "&df=d", "&df=w"}

// MultiQueryAdapter is the extended search variant. It fans a single
// entity across several query reformulations and recency filters against
// the same backing source, then deduplicates its own output so the global
// merge starts from a clean per-adapter set.
type MultiQueryAdapter struct {
	deps       interfaces.Dependencies
	subTimeout time.Duration
	maxResults int
}

// NewMultiQueryAdapter creates a multi-query adapter. subTimeout bounds
// each sub-request; zero values fall back to defaults.
func NewMultiQueryAdapter(deps interfaces.Dependencies, subTimeout time.Duration, maxResults int) *MultiQueryAdapter {
	if subTimeout <= 0 {
		subTimeout = defaultSubTimeout
	}
	if maxResults <= 0 {
		maxResults = defaultMultiQueryCap
	}
	return &MultiQueryAdapter{deps: deps, subTimeout: subTimeout, maxResults: maxResults}
}

// Name returns the adapter identifier
func (a *MultiQueryAdapter) Name() string {
	return "duckduckgo-multi"
}

// Fetch runs every query variant against every temporal filter. Individual
// sub-requests that fail or time out are skipped; the adapter only errors
// when not a single page could be fetched.
func (a *MultiQueryAdapter) Fetch(ctx context.Context, entity string) ([]domain.NewsItem, error) {
	var all []domain.NewsItem
	var lastErr error
	fetched := false

	for _, variant := range queryVariants {
		query := strings.ReplaceAll(variant, "%s", entity)
		encoded := url.QueryEscape(query)

		for _, filter := range temporalFilters {
			pageURL := searchBaseURL + "?q=" + encoded + filter

			pageItems, err := a.fetchPage(ctx, pageURL, query)
			if err != nil {
				lastErr = err
				if a.deps.Logger != nil {
					a.deps.Logger.Debug("Sub-request failed", map[string]interface{}{
						"query": query,
						"url":   pageURL,
						"error": err.Error(),
					})
				}
				continue
			}
			fetched = true
			all = append(all, pageItems...)
		}
	}

	if !fetched && lastErr != nil {
		return []domain.NewsItem{}, &coreerrors.SourceUnavailableError{
			Source: a.Name(),
			Reason: "all sub-requests failed",
			Err:    lastErr,
		}
	}

	// Clean the adapter's own output before the global merge sees it
	unique := dedupe.Dedupe(all)

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].ImpactScore > unique[j].ImpactScore
	})

	if len(unique) > a.maxResults {
		unique = unique[:a.maxResults]
	}

	return unique, nil
}

// fetchPage scrapes one search result page under its own time budget
func (a *MultiQueryAdapter) fetchPage(ctx context.Context, pageURL, query string) ([]domain.NewsItem, error) {
	subCtx, cancel := context.WithTimeout(ctx, a.subTimeout)
	defer cancel()

	resp, err := a.deps.HTTPClient.Get(subCtx, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "search page fetch failed",
			API:        multiQuerySourceName,
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]domain.NewsItem, 0, maxResultsPerPage)

	doc.Find("div.result, div.web-result").EachWithBreak(func(_ int, result *goquery.Selection) bool {
		link := result.Find("a.result__a").First()
		if link.Length() == 0 {
			link = result.Find("h3 a, a").First()
		}
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return true
		}

		snippet := strings.TrimSpace(result.Find(".result__snippet, .snippet").First().Text())

		ts := now
		items = append(items, domain.NewsItem{
			Title:       title,
			URL:         normalizeLink(href),
			Source:      multiQuerySourceName,
			Snippet:     truncateSnippet(snippet),
			Timestamp:   &ts,
			ImpactScore: scoring.Score(title, snippet, query),
			SearchQuery: query,
			ContentType: scoring.Classify(title, snippet),
		})

		return len(items) < maxResultsPerPage
	})

	return items, nil
}
