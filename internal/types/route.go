package types

// NodeKind distinguishes the fixed endpoints of a route from visitable stops.
type NodeKind string

const (
	NodeStart NodeKind = "start"
	NodePOI   NodeKind = "poi"
	NodeEnd   NodeKind = "end"
)

// RouteNode is a positioned stop in an ordered route. WaitMinutes is the
// travel time of the leg arriving at this node and is derived during
// sequencing.
type RouteNode struct {
	Kind        NodeKind `json:"kind"`
	Name        string   `json:"name"`
	Point       GeoPoint `json:"point"`
	Category    string   `json:"category,omitempty"`
	StayMinutes int      `json:"stayMinutes"`
	Mandatory   bool     `json:"isRequired"`
	Rating      float64  `json:"rating,omitempty"`
	WaitMinutes int      `json:"waitMinutes"`
}

// Route is the time-ordered visiting sequence produced by the sequencer.
// Warnings record soft violations (forced mandatory stops, window overruns,
// dropped optional stops); they never abort planning.
type Route struct {
	Nodes    []RouteNode `json:"nodes"`
	Warnings []string    `json:"warnings,omitempty"`
}
