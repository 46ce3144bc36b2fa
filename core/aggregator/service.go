// ABOUTME: Aggregator service orchestrates the fetch-dedupe-filter-rank pipeline
// ABOUTME: Concurrent fan-out to all source adapters, partial failures tolerated

package aggregator

import (
	"context"
	"strings"
	"time"

	"newsiq-app-api/core/dedupe"
	"newsiq-app-api/core/domain"
	coreerrors "newsiq-app-api/core/errors"
	"newsiq-app-api/core/interfaces"
)

// DefaultMaxResults is the ranked list cap for the basic pipeline.
// The enterprise query flow configures a slightly larger cap.
const DefaultMaxResults = 10

// minEntityLength is the shortest entity name accepted for aggregation
const minEntityLength = 2

// Options configures an aggregator service
type Options struct {
	// MaxResults caps the ranked result list; zero means DefaultMaxResults
	MaxResults int

	// TrustedSources is the credibility allow-list matched as a
	// case-insensitive substring of an item's source; nil means the
	// built-in list
	TrustedSources []string

	// Sessions, when non-nil, is shared with other aggregator services
	// so their snapshots land in one store
	Sessions *SessionStore
}

// Request describes one aggregation run
type Request struct {
	// Entity is the company name to aggregate news for
	Entity string

	// WindowHours is the recency window; values outside the known set
	// fall back to 24 hours
	WindowHours int

	// ImpactThreshold drops items scoring below it; zero disables the
	// threshold filter
	ImpactThreshold float64

	// SessionID, when non-empty, records the run's result as that
	// session's snapshot
	SessionID string
}

// Service orchestrates source adapters into a ranked news list.
// The service itself is stateless per call; the session store is the only
// shared mutable state.
type Service struct {
	deps     interfaces.Dependencies
	adapters []interfaces.SourceAdapter
	sessions *SessionStore
	opts     Options
}

// NewService creates an aggregator over the given adapters. Adapter order
// matters: merged candidates follow registration order, and the
// deduplicator keeps the first-seen copy of a story, so register
// higher-priority sources first.
func NewService(deps interfaces.Dependencies, adapters []interfaces.SourceAdapter, opts Options) *Service {
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.TrustedSources == nil {
		opts.TrustedSources = defaultTrustedSources
	}
	sessions := opts.Sessions
	if sessions == nil {
		sessions = NewSessionStore(deps.Cache)
	}
	return &Service{
		deps:     deps,
		adapters: adapters,
		sessions: sessions,
		opts:     opts,
	}
}

// Aggregate fans out to every registered adapter, merges and deduplicates
// their output, filters by recency and quality, boosts and ranks what
// survives, and returns the top results. Adapter failures degrade to
// empty contributions and are never surfaced; the only error this method
// returns is input validation.
func (s *Service) Aggregate(ctx context.Context, req Request) (*domain.AggregateResult, error) {
	entity := strings.TrimSpace(req.Entity)
	if len(entity) < minEntityLength {
		return nil, &coreerrors.ValidationError{
			Field:   "entity",
			Message: "entity name must be at least 2 characters",
		}
	}

	start := time.Now()

	candidates := s.fanOut(ctx, entity)
	result := &domain.AggregateResult{
		Entity:     entity,
		Candidates: len(candidates),
	}

	merged := dedupe.Dedupe(candidates)
	merged = filterByWindow(merged, cutoffFor(req.WindowHours, start))

	if len(merged) == 0 {
		result.Outcome = domain.OutcomeNoResults
		result.Items = []domain.NewsItem{}
		s.record(ctx, req.SessionID, entity, result.Items, start)
		return result, nil
	}

	survivors := qualityFilter(merged, req.ImpactThreshold)
	if len(survivors) == 0 {
		result.Outcome = domain.OutcomeBelowThreshold
		result.Items = []domain.NewsItem{}
		s.record(ctx, req.SessionID, entity, result.Items, start)
		return result, nil
	}

	applyBoosts(survivors, s.opts.TrustedSources, start)
	sortRanked(survivors)

	if len(survivors) > s.opts.MaxResults {
		survivors = survivors[:s.opts.MaxResults]
	}

	result.Outcome = domain.OutcomeOK
	result.Items = survivors

	s.record(ctx, req.SessionID, entity, survivors, start)

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Aggregation completed", map[string]interface{}{
			"entity":     entity,
			"candidates": result.Candidates,
			"returned":   len(survivors),
			"duration":   time.Since(start).String(),
		})
	}

	return result, nil
}

// Snapshot returns the most recent aggregation recorded for a session,
// or nil when the session has none
func (s *Service) Snapshot(sessionID string) *domain.SessionSnapshot {
	return s.sessions.Get(sessionID)
}

// fanOut calls every adapter concurrently and merges their output in
// registration order. One adapter's failure or timeout never cancels or
// delays its siblings; all results are collected before proceeding.
func (s *Service) fanOut(ctx context.Context, entity string) []domain.NewsItem {
	type fetchResult struct {
		items []domain.NewsItem
		err   error
	}

	results := make([]fetchResult, len(s.adapters))
	done := make(chan int, len(s.adapters))

	for i, adapter := range s.adapters {
		go func(idx int, a interfaces.SourceAdapter) {
			items, err := a.Fetch(ctx, entity)
			results[idx] = fetchResult{items: items, err: err}
			done <- idx
		}(i, adapter)
	}

	for range s.adapters {
		<-done
	}

	var merged []domain.NewsItem
	for i, r := range results {
		if r.err != nil && s.deps.Logger != nil {
			s.deps.Logger.Warn("Source adapter failed", map[string]interface{}{
				"source": s.adapters[i].Name(),
				"error":  r.err.Error(),
			})
		}
		merged = append(merged, r.items...)
	}

	return merged
}

// record stores the session snapshot unless the caller already gave up:
// cancelled work is discarded, not cached
func (s *Service) record(ctx context.Context, sessionID, entity string, items []domain.NewsItem, start time.Time) {
	if sessionID == "" || ctx.Err() != nil {
		return
	}
	s.sessions.Put(ctx, sessionID, domain.SessionSnapshot{
		Entity:         entity,
		Items:          items,
		QueryTime:      start,
		ProcessingTime: time.Since(start),
	})
}
