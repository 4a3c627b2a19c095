package types

// ScheduleEntry is one row of the materialized day schedule. Output-only and
// never mutated once emitted.
type ScheduleEntry struct {
	Order       int     `json:"order"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Arrival     string  `json:"arrival"` // HH:MM
	Departure   string  `json:"depart"`  // HH:MM
	WaitMinutes int     `json:"wait"`
	StayMinutes int     `json:"stay"`
	Rating      float64 `json:"rating,omitempty"`
}
