package types

import "time"

// ContributionWeights are the top-level weights that combine the individual
// scoring factors into a single POI score. They always sum to 1.0.
type ContributionWeights struct {
	Base     float64 `json:"base"`
	Distance float64 `json:"distance"`
	Budget   float64 `json:"budget"`
	Theme    float64 `json:"theme"`
	Category float64 `json:"category"`
	Diet     float64 `json:"diet"`
	Pace     float64 `json:"pace"`
}

// BudgetWeights are signed sub-weights derived from the budget level. The
// absolute values sum to 1.
type BudgetWeights struct {
	PriceWeight float64 `json:"priceWeight"`
	LuxuryBonus float64 `json:"luxuryBonus"`
	ValueBonus  float64 `json:"valueBonus"`
}

// PaceWeights are sub-weights derived from the travel pace. StayTimeMultiplier
// scales per-category stay durations and is excluded from normalization.
type PaceWeights struct {
	DistanceWeight     float64 `json:"distanceWeight"`
	TimeWeight         float64 `json:"timeWeight"`
	RelaxationBonus    float64 `json:"relaxationBonus"`
	StayTimeMultiplier float64 `json:"stayTimeMultiplier"`
}

// ThemeWeights are signed sub-weights for theme/tag matching and must-avoid
// penalties.
type ThemeWeights struct {
	ThemeMatchBonus float64 `json:"themeMatchBonus"`
	TagMatchBonus   float64 `json:"tagMatchBonus"`
	AvoidPenalty    float64 `json:"avoidPenalty"`
}

// CategoryWeights weight the POI classification. Non-negative, sum to 1.
type CategoryWeights struct {
	POIWeight        float64 `json:"poiWeight"`
	RestaurantWeight float64 `json:"restaurantWeight"`
	CafeWeight       float64 `json:"cafeWeight"`
}

// DietWeights gate the diet-matching factor.
type DietWeights struct {
	DietMatchBonus float64 `json:"dietMatchBonus"`
}

// WeightMeta records how a profile was derived, for diagnostics only.
type WeightMeta struct {
	GeneratedAt   time.Time `json:"generatedAt"`
	BudgetLevel   string    `json:"budgetLevel"`
	Pace          string    `json:"pace"`
	ThemesCount   int       `json:"themesCount"`
	TagsCount     int       `json:"tagsCount"`
	AvoidCount    int       `json:"avoidCount"`
	DietPrefCount int       `json:"dietPrefsCount"`
	Normalized    bool      `json:"normalized"`
}

// WeightProfile is the full set of normalized weights used to score POIs for
// one planning request. It is created once per request and never mutated.
type WeightProfile struct {
	Contribution ContributionWeights `json:"scoreWeights"`
	Budget       BudgetWeights       `json:"budget"`
	Pace         PaceWeights         `json:"pace"`
	Theme        ThemeWeights        `json:"theme"`
	Category     CategoryWeights     `json:"category"`
	Diet         DietWeights         `json:"diet"`
	Meta         WeightMeta          `json:"_meta"`
}
