package types

// Preference is the structured travel-preference record produced by the AI
// preference extractor. It is immutable input to weight derivation and
// scoring; absent fields fall back to neutral defaults downstream.
type Preference struct {
	Themes            []string `json:"themes"`
	POITags           []string `json:"poiTags"`
	MustAvoid         []string `json:"mustAvoid"`
	BudgetLevel       string   `json:"budgetLevel"` // low | mid | high
	Pace              string   `json:"pace"`        // relaxed | normal | tight
	SearchKeywords    []string `json:"searchKeywords"`
	POISearchQueries  []string `json:"poiSearchQueries"`
	FoodSearchQueries []string `json:"foodSearchQueries"`
	DietPreferences   []string `json:"dietPreferences"`
	City              string   `json:"city,omitempty"`
}

const (
	BudgetLow  = "low"
	BudgetMid  = "mid"
	BudgetHigh = "high"

	PaceRelaxed = "relaxed"
	PaceNormal  = "normal"
	PaceTight   = "tight"
)

// NormalizedBudgetLevel returns the preference's budget level, defaulting to
// "mid" when absent or unknown.
func (p Preference) NormalizedBudgetLevel() string {
	switch p.BudgetLevel {
	case BudgetLow, BudgetMid, BudgetHigh:
		return p.BudgetLevel
	}
	return BudgetMid
}

// NormalizedPace returns the preference's pace, defaulting to "normal" when
// absent or unknown.
func (p Preference) NormalizedPace() string {
	switch p.Pace {
	case PaceRelaxed, PaceNormal, PaceTight:
		return p.Pace
	}
	return PaceNormal
}
