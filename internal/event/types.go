package event

import "time"

// Extracted is the reconciled event candidate produced from the LLM passes.
// Attendees stay in their raw heterogeneous shapes (strings or objects) until
// payload formatting validates them.
type Extracted struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Location    string
	Attendees   []any
	Reminder    string

	// Enrichment from the detailed analysis pass; zero values when that pass
	// was skipped or failed.
	EventType  string
	Priority   string
	Confidence float64
}

// DetailedAnalysis is the secondary enrichment record from the second LLM
// call. Producing it is best-effort; any failure leaves the basic extraction
// standing alone.
type DetailedAnalysis struct {
	EventType    string
	Priority     string
	Confidence   float64
	Participants Participants
	Location     AnalyzedLocation
}

// Participants holds the people the detailed analysis identified.
type Participants struct {
	Names  []string
	Emails []any
}

// AnalyzedLocation refines the location from the detailed analysis. All
// fields optional.
type AnalyzedLocation struct {
	Type     string
	Address  string
	Room     string
	Platform string
}

// Resolve returns the first non-empty of address, room, platform.
func (l AnalyzedLocation) Resolve() string {
	for _, v := range []string{l.Address, l.Room, l.Platform} {
		if v != "" {
			return v
		}
	}
	return ""
}

// PublishResult is what a successful publish hands back to the caller.
type PublishResult struct {
	EventID     string `json:"eventId"`
	Summary     string `json:"summary"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	HTMLLink    string `json:"htmlLink"`
	IsDuplicate bool   `json:"isDuplicate"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
