// ABOUTME: SessionSnapshot domain model captures the most recent aggregation per session
// ABOUTME: A session holds exactly one snapshot, overwritten on the next query

package domain

import "time"

// SessionSnapshot is the ephemeral record of a session's last aggregation.
// It is overwritten on every query for the same session and never merged.
type SessionSnapshot struct {
	// Entity is the company name the query was about
	Entity string

	// Items is the ranked result list exactly as returned to the caller
	Items []NewsItem

	// QueryTime is when the aggregation ran
	QueryTime time.Time

	// ProcessingTime is how long the aggregation took
	ProcessingTime time.Duration
}
