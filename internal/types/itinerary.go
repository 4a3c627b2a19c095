package types

// AnalyzePreferenceRequest carries the traveler's free-text message plus the
// UI-selected options forwarded verbatim to the preference extractor.
type AnalyzePreferenceRequest struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// TravelWishResponse is the natural-language trip summary reply.
type TravelWishResponse struct {
	Reply string `json:"reply"`
}

// SearchWithPreferenceRequest asks for a preference-aware candidate search
// around a base area.
type SearchWithPreferenceRequest struct {
	BaseArea string         `json:"baseArea"`
	Message  string         `json:"message"`
	Context  map[string]any `json:"context,omitempty"`
	Start    GeoPoint       `json:"startPoint"`
}

// SearchWithPreferenceResponse returns the derived preference, the weight
// profile used for ranking, and the scored candidate pool.
type SearchWithPreferenceResponse struct {
	Preference     Preference    `json:"prefs"`
	Weights        WeightProfile `json:"weights"`
	WeightWarnings []string      `json:"weightWarnings,omitempty"`
	City           string        `json:"city"`
	POIs           []ScoredPOI   `json:"pois"`
	Bias           BiasReport    `json:"bias"`
}

// PlanItineraryRequest is the full planning input contract: the preference
// message, the day window, the geographic anchors, and the slot constraints.
type PlanItineraryRequest struct {
	BaseArea string         `json:"baseArea"`
	Message  string         `json:"message"`
	Context  map[string]any `json:"context,omitempty"`

	Start     GeoPoint `json:"start"`
	End       GeoPoint `json:"end"`
	StartName string   `json:"startName,omitempty"`
	EndName   string   `json:"endName,omitempty"`

	// Day window in minutes since midnight; StartTime/EndTime accept "HH:MM"
	// alternates and take precedence when set.
	DayStartMinutes int    `json:"dayStartMinutes,omitempty"`
	DayEndMinutes   int    `json:"dayEndMinutes,omitempty"`
	StartTime       string `json:"startTime,omitempty"`
	EndTime         string `json:"endTime,omitempty"`

	MaxLegMinutes  int             `json:"maxLegMinutes,omitempty"`
	NumPlaces      int             `json:"numPlaces,omitempty"`
	Meals          MealFlags       `json:"meals"`
	MandatoryStops []MandatoryStop `json:"requiredStops,omitempty"`
}

// PlanItineraryResponse is the complete planning output: every intermediate
// artifact plus the final schedule, so the rendering layer can show its work.
type PlanItineraryResponse struct {
	Preference     Preference          `json:"prefs"`
	Weights        WeightProfile       `json:"weights"`
	WeightWarnings []string            `json:"weightWarnings,omitempty"`
	City           string              `json:"city"`
	RankedPOIs     []ScoredPOI         `json:"rankedPois"`
	Selected       []PlaceDetailedInfo `json:"selected"`
	Route          Route               `json:"route"`
	Schedule       []ScheduleEntry     `json:"schedule"`
	Bias           BiasReport          `json:"bias"`
}
