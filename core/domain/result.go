// ABOUTME: AggregateResult domain model carries the outcome of one aggregation run
// ABOUTME: Distinguishes empty-but-expected outcomes from actual item lists

package domain

// Outcome classifies how an aggregation run ended. Empty results are
// expected, common outcomes rather than faults, so they are modeled as
// data instead of errors.
type Outcome string

const (
	// OutcomeOK means at least one item survived filtering and ranking
	OutcomeOK Outcome = "ok"

	// OutcomeNoResults means all adapters returned empty or everything
	// was filtered out before the threshold was applied
	OutcomeNoResults Outcome = "no_results"

	// OutcomeBelowThreshold means items existed but none passed the
	// caller's impact threshold
	OutcomeBelowThreshold Outcome = "below_threshold"
)

// AggregateResult is what one aggregation run produces
type AggregateResult struct {
	// Entity is the company name that was queried
	Entity string

	// Items is the ranked top-N list, empty unless Outcome is OutcomeOK
	Items []NewsItem

	// Outcome classifies the run
	Outcome Outcome

	// Candidates is how many raw items the adapters produced before
	// dedup and filtering, kept for caller-facing analytics
	Candidates int
}
