// ABOUTME: Request DTOs for news query API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// NewsQueryRequest represents the request body for a news aggregation query
type NewsQueryRequest struct {
	// Message is the free-form user input; the entity is extracted from it
	// when Entity is empty
	Message string `json:"message,omitempty" maxLength:"500" doc:"Free-form user question about a company"`

	// Entity is the company or topic to aggregate news for
	Entity string `json:"entity,omitempty" maxLength:"100" doc:"Company or topic name"`

	// Style selects the summary rendering
	Style string `json:"style,omitempty" enum:"professional,casual,executive,bullet,technical" default:"professional" doc:"Summary style"`

	// TimeRange limits results to a recency window
	TimeRange string `json:"time_range,omitempty" enum:"1 hour,6 hours,24 hours,1 week" default:"24 hours" doc:"Recency window"`

	// ImpactThreshold drops items scoring below it
	ImpactThreshold *float64 `json:"impact_threshold,omitempty" minimum:"0" maximum:"10" doc:"Minimum impact score"`

	// SessionID keys the stored result snapshot
	SessionID string `json:"session_id,omitempty" maxLength:"100" doc:"Session identifier for follow-up queries"`

	// Enterprise enables the extended multi-query search path
	Enterprise bool `json:"enterprise,omitempty" doc:"Use the extended multi-query search"`
}

// ApplyDefaults sets default values for optional fields
func (r *NewsQueryRequest) ApplyDefaults(defaultThreshold float64) {
	if r.Style == "" {
		r.Style = "professional"
	}
	if r.TimeRange == "" {
		r.TimeRange = "24 hours"
	}
	if r.ImpactThreshold == nil {
		r.ImpactThreshold = &defaultThreshold
	}
}
