// Package weights derives a normalized weight profile from a traveler's
// structured preferences. Derivation is total: absent or unknown preference
// fields fall back to neutral defaults and never produce an error.
package weights

import (
	"math"
	"time"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// Top-level contribution of each scoring factor. Theme matching is weighted
// highest, pace lowest. The sum is 1.0.
var contribution = types.ContributionWeights{
	Base:     0.15,
	Distance: 0.20,
	Budget:   0.15,
	Theme:    0.25,
	Category: 0.10,
	Diet:     0.10,
	Pace:     0.05,
}

// normalizeSigned divides every value by the sum of absolute values so the
// group's absolute values sum to 1, preserving signs. A zero group returns
// the fallback.
func normalizeSigned(vals []float64, fallback []float64) []float64 {
	sum := 0.0
	for _, v := range vals {
		sum += math.Abs(v)
	}
	if sum == 0 {
		return fallback
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v / sum
	}
	return out
}

func budgetWeights(level string) types.BudgetWeights {
	var raw types.BudgetWeights
	switch level {
	case types.BudgetLow:
		raw = types.BudgetWeights{PriceWeight: -0.4, LuxuryBonus: -0.2, ValueBonus: 0.4}
	case types.BudgetHigh:
		raw = types.BudgetWeights{PriceWeight: 0.1, LuxuryBonus: 0.5, ValueBonus: 0.0}
	default: // mid
		raw = types.BudgetWeights{PriceWeight: -0.1, LuxuryBonus: 0.1, ValueBonus: 0.2}
	}

	n := normalizeSigned(
		[]float64{raw.PriceWeight, raw.LuxuryBonus, raw.ValueBonus},
		[]float64{-0.33, 0.33, 0.34},
	)
	return types.BudgetWeights{PriceWeight: n[0], LuxuryBonus: n[1], ValueBonus: n[2]}
}

func paceWeights(pace string) types.PaceWeights {
	var raw types.PaceWeights
	multiplier := 1.0
	switch pace {
	case types.PaceRelaxed:
		raw = types.PaceWeights{DistanceWeight: -0.3, TimeWeight: -0.2, RelaxationBonus: 0.5}
		multiplier = 1.3
	case types.PaceTight:
		raw = types.PaceWeights{DistanceWeight: -0.4, TimeWeight: -0.3, RelaxationBonus: 0.0}
		multiplier = 0.7
	default: // normal
		raw = types.PaceWeights{DistanceWeight: -0.15, TimeWeight: -0.1, RelaxationBonus: 0.2}
	}

	n := normalizeSigned(
		[]float64{raw.DistanceWeight, raw.TimeWeight, raw.RelaxationBonus},
		[]float64{-0.4, -0.3, 0.3},
	)
	return types.PaceWeights{
		DistanceWeight:     n[0],
		TimeWeight:         n[1],
		RelaxationBonus:    n[2],
		StayTimeMultiplier: multiplier,
	}
}

func themeWeights(pref types.Preference) types.ThemeWeights {
	raw := types.ThemeWeights{ThemeMatchBonus: 0.2, TagMatchBonus: 0.15, AvoidPenalty: -0.1}
	if len(pref.Themes) > 0 {
		raw.ThemeMatchBonus = 0.5
	}
	if len(pref.POITags) > 0 {
		raw.TagMatchBonus = 0.4
	}
	if len(pref.MustAvoid) > 0 {
		raw.AvoidPenalty = -0.3
	}

	n := normalizeSigned(
		[]float64{raw.ThemeMatchBonus, raw.TagMatchBonus, raw.AvoidPenalty},
		[]float64{0.45, 0.35, -0.2},
	)
	return types.ThemeWeights{ThemeMatchBonus: n[0], TagMatchBonus: n[1], AvoidPenalty: n[2]}
}

// categoryWeights biases the classification weights toward food or
// sightseeing depending on the relative counts of search-intent signals,
// then renormalizes to sum to 1.
func categoryWeights(pref types.Preference) types.CategoryWeights {
	foodCount := len(pref.FoodSearchQueries)
	poiCount := len(pref.POISearchQueries) + len(pref.SearchKeywords)
	total := foodCount + poiCount

	raw := types.CategoryWeights{POIWeight: 0.4, RestaurantWeight: 0.3, CafeWeight: 0.3}
	if total > 0 {
		foodRatio := float64(foodCount) / float64(total)
		poiRatio := float64(poiCount) / float64(total)
		raw = types.CategoryWeights{
			POIWeight:        0.4 + poiRatio*0.3,
			RestaurantWeight: 0.3 + foodRatio*0.2,
			CafeWeight:       0.3 + foodRatio*0.15,
		}
	}

	sum := raw.POIWeight + raw.RestaurantWeight + raw.CafeWeight
	return types.CategoryWeights{
		POIWeight:        raw.POIWeight / sum,
		RestaurantWeight: raw.RestaurantWeight / sum,
		CafeWeight:       raw.CafeWeight / sum,
	}
}

// DeriveWeights maps a preference record to a normalized weight profile.
func DeriveWeights(pref types.Preference) types.WeightProfile {
	budgetLevel := pref.NormalizedBudgetLevel()
	pace := pref.NormalizedPace()

	diet := types.DietWeights{}
	if len(pref.DietPreferences) > 0 {
		diet.DietMatchBonus = 1.0
	}

	return types.WeightProfile{
		Contribution: contribution,
		Budget:       budgetWeights(budgetLevel),
		Pace:         paceWeights(pace),
		Theme:        themeWeights(pref),
		Category:     categoryWeights(pref),
		Diet:         diet,
		Meta: types.WeightMeta{
			GeneratedAt:   time.Now().UTC(),
			BudgetLevel:   budgetLevel,
			Pace:          pace,
			ThemesCount:   len(pref.Themes),
			TagsCount:     len(pref.POITags),
			AvoidCount:    len(pref.MustAvoid),
			DietPrefCount: len(pref.DietPreferences),
			Normalized:    true,
		},
	}
}
