// ABOUTME: Feed adapter fetches entity news from configured RSS feeds
// ABOUTME: Per-entity feeds plus a Google News search feed, three items per feed

package sources

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"newsiq-app-api/core/domain"
	coreerrors "newsiq-app-api/core/errors"
	"newsiq-app-api/core/interfaces"
	"newsiq-app-api/core/scoring"
	htmlutil "newsiq-app-api/pkg/utils/html"
)

const maxItemsPerFeed = 3

// FeedAdapter fetches entity news from RSS feeds
type FeedAdapter struct {
	deps    interfaces.Dependencies
	feeds   map[string][]string
	timeout time.Duration
}

// NewFeedAdapter creates a feed adapter. feeds maps a lower-cased entity
// name to its known RSS feed URLs; a generic Google News search feed is
// always queried in addition.
func NewFeedAdapter(deps interfaces.Dependencies, feeds map[string][]string, timeout time.Duration) *FeedAdapter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if feeds == nil {
		feeds = map[string][]string{}
	}
	return &FeedAdapter{deps: deps, feeds: feeds, timeout: timeout}
}

// Name returns the adapter identifier
func (a *FeedAdapter) Name() string {
	return "rss"
}

// Fetch reads every configured feed for the entity and collects up to
// three items per feed. A feed that fails to load or parse is skipped;
// the adapter only reports an error when no feed produced anything and
// at least one failed.
func (a *FeedAdapter) Fetch(ctx context.Context, entity string) ([]domain.NewsItem, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	feedURLs := append([]string{}, a.feeds[strings.ToLower(entity)]...)
	feedURLs = append(feedURLs, googleNewsFeedURL(entity))

	items := make([]domain.NewsItem, 0, len(feedURLs)*maxItemsPerFeed)
	var lastErr error

	for _, feedURL := range feedURLs {
		feedItems, err := a.fetchFeed(ctx, feedURL, entity)
		if err != nil {
			lastErr = err
			if a.deps.Logger != nil {
				a.deps.Logger.Debug("Skipping unreachable feed", map[string]interface{}{
					"feed":  feedURL,
					"error": err.Error(),
				})
			}
			continue
		}
		items = append(items, feedItems...)
	}

	if len(items) == 0 && lastErr != nil {
		return []domain.NewsItem{}, &coreerrors.SourceUnavailableError{
			Source: a.Name(),
			Reason: "all feeds failed",
			Err:    lastErr,
		}
	}

	return items, nil
}

// fetchFeed loads and parses a single feed
func (a *FeedAdapter) fetchFeed(ctx context.Context, feedURL, entity string) ([]domain.NewsItem, error) {
	resp, err := a.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	content, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	source := searchFeedSource(parsed)
	fetchTime := time.Now()

	items := make([]domain.NewsItem, 0, maxItemsPerFeed)
	for _, entry := range parsed.Items {
		if len(items) >= maxItemsPerFeed {
			break
		}
		if entry.Title == "" || entry.Link == "" {
			continue
		}

		snippet := truncateSnippet(htmlutil.StripHTML(entry.Description))

		items = append(items, domain.NewsItem{
			Title:       entry.Title,
			URL:         entry.Link,
			Source:      source,
			Snippet:     snippet,
			Timestamp:   entryTimestamp(entry, fetchTime),
			ImpactScore: scoring.Score(entry.Title, snippet, ""),
			ContentType: scoring.Classify(entry.Title, snippet),
		})
	}

	return items, nil
}

// entryTimestamp resolves the best timestamp for a feed entry, falling
// back to the fetch time when the feed provides nothing usable
func entryTimestamp(entry *gofeed.Item, fetchTime time.Time) *time.Time {
	if entry.PublishedParsed != nil {
		return entry.PublishedParsed
	}
	if entry.UpdatedParsed != nil {
		return entry.UpdatedParsed
	}
	if t, ok := parseTimestamp(entry.Published); ok {
		return &t
	}
	return &fetchTime
}

// searchFeedSource derives the human-readable source label for a feed
func searchFeedSource(feed *gofeed.Feed) string {
	title := strings.TrimSpace(feed.Title)
	if title == "" {
		title = "Unknown"
	}
	return "RSS-" + title
}

// googleNewsFeedURL builds the generic news search feed for an entity
func googleNewsFeedURL(entity string) string {
	return "https://news.google.com/rss/search?q=" + url.QueryEscape(entity) + "&hl=en-US&gl=US&ceid=US:en"
}
