package types

import "github.com/google/uuid"

// CategoryType is the coarse classification used by selection and sequencing.
type CategoryType string

const (
	CategoryRestaurant CategoryType = "restaurant"
	CategoryCafe       CategoryType = "cafe"
	CategoryPOI        CategoryType = "poi"
)

// GeoPoint is a WGS84 coordinate pair. The zero value means "unknown".
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero reports whether the point carries no usable coordinates.
func (g GeoPoint) IsZero() bool {
	return g.Latitude == 0 && g.Longitude == 0
}

// PlaceDetailedInfo is a candidate point of interest as returned by the place
// search provider. Read-only to the planning core.
type PlaceDetailedInfo struct {
	ID           uuid.UUID    `json:"id,omitempty"`
	Name         string       `json:"name"`
	Latitude     float64      `json:"latitude,omitempty"`
	Longitude    float64      `json:"longitude,omitempty"`
	Category     string       `json:"category"` // raw provider category text, e.g. "Travel,Attractions>Palace"
	Description  string       `json:"description,omitempty"`
	Address      string       `json:"address,omitempty"`
	Telephone    string       `json:"telephone,omitempty"`
	Rating       float64      `json:"rating,omitempty"` // 0 means unknown
	CategoryType CategoryType `json:"categoryType,omitempty"`
	Err          error        `json:"-"`
}

// Point returns the candidate's coordinates as a GeoPoint.
func (p PlaceDetailedInfo) Point() GeoPoint {
	return GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}

// ScoreBreakdown carries the per-factor contributions of one scored POI.
// Diagnostics only; behavior never depends on it.
type ScoreBreakdown struct {
	Base       float64 `json:"base"`
	Distance   float64 `json:"distance"`
	Budget     float64 `json:"budget"`
	Theme      float64 `json:"theme"`
	Category   float64 `json:"category"`
	Diet       float64 `json:"diet"`
	Pace       float64 `json:"pace"`
	Anchor     float64 `json:"anchor,omitempty"`
	DistanceKm float64 `json:"distanceKm,omitempty"`
}

// ScoredPOI is a candidate plus its score in [0,10] and factor breakdown.
type ScoredPOI struct {
	PlaceDetailedInfo
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// MandatoryStop is a place the traveler has committed to visiting. It is
// exempt from feasibility pruning during sequencing.
type MandatoryStop struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Category    string  `json:"category,omitempty"`
	StayMinutes int     `json:"stayMinutes,omitempty"` // 0 means derive from category
	Rating      float64 `json:"rating,omitempty"`
}

// Point returns the stop's coordinates as a GeoPoint.
func (m MandatoryStop) Point() GeoPoint {
	return GeoPoint{Latitude: m.Latitude, Longitude: m.Longitude}
}

// MealFlags are the meal slots the traveler wants covered.
type MealFlags struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
	Cafe      bool `json:"cafe"`
}

// MealCount returns the number of requested restaurant meals.
func (m MealFlags) MealCount() int {
	n := 0
	for _, set := range []bool{m.Breakfast, m.Lunch, m.Dinner} {
		if set {
			n++
		}
	}
	return n
}

// BiasReport flags skew in a search result set (category concentration,
// geographic clustering around mandatory stops, weak theme coverage).
type BiasReport struct {
	Biased      bool     `json:"isBiased"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}
