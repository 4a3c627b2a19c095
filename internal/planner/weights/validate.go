package weights

import (
	"fmt"
	"math"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

const (
	sumTolerance = 0.01

	// DefaultBound is the per-weight range enforced on derived profiles.
	DefaultBound = 1.5
	// LegacyBound is the looser range accepted for hand-edited profiles.
	LegacyBound = 2.0
)

// ValidateWeights checks a profile for structural soundness: required groups
// present, top-level and category sums within tolerance of 1.0, and every
// weight within ±DefaultBound. Violations are warnings, not failures; callers
// proceed with best-effort weights regardless.
func ValidateWeights(w types.WeightProfile) (bool, []string) {
	return ValidateWeightsWithin(w, DefaultBound)
}

// ValidateWeightsWithin is ValidateWeights with a caller-chosen range bound.
func ValidateWeightsWithin(w types.WeightProfile, bound float64) (bool, []string) {
	var errs []string

	groups := map[string][]float64{
		"scoreWeights": {w.Contribution.Base, w.Contribution.Distance, w.Contribution.Budget,
			w.Contribution.Theme, w.Contribution.Category, w.Contribution.Diet, w.Contribution.Pace},
		"budget":   {w.Budget.PriceWeight, w.Budget.LuxuryBonus, w.Budget.ValueBonus},
		"pace":     {w.Pace.DistanceWeight, w.Pace.TimeWeight, w.Pace.RelaxationBonus, w.Pace.StayTimeMultiplier},
		"theme":    {w.Theme.ThemeMatchBonus, w.Theme.TagMatchBonus, w.Theme.AvoidPenalty},
		"category": {w.Category.POIWeight, w.Category.RestaurantWeight, w.Category.CafeWeight},
		"diet":     {w.Diet.DietMatchBonus},
	}

	for _, name := range []string{"scoreWeights", "budget", "pace", "theme", "category"} {
		if allZero(groups[name]) {
			errs = append(errs, fmt.Sprintf("missing or empty weight group: %s", name))
		}
	}
	// A zero diet bonus is the derived no-preference state; it only counts
	// as missing when the profile claims diet preferences.
	if w.Meta.DietPrefCount > 0 && allZero(groups["diet"]) {
		errs = append(errs, "missing or empty weight group: diet")
	}

	if sum := sumOf(groups["scoreWeights"]); math.Abs(sum-1.0) > sumTolerance {
		errs = append(errs, fmt.Sprintf("scoreWeights sum is %.3f, expected 1.0", sum))
	}
	if sum := sumOf(groups["category"]); math.Abs(sum-1.0) > sumTolerance {
		errs = append(errs, fmt.Sprintf("category weights sum is %.3f, expected 1.0", sum))
	}

	for _, name := range []string{"budget", "pace", "theme", "category", "diet"} {
		for i, v := range groups[name] {
			if v < -bound || v > bound {
				errs = append(errs, fmt.Sprintf("%s[%d] = %g is outside range [%g, %g]", name, i, v, -bound, bound))
			}
		}
	}

	return len(errs) == 0, errs
}

func sumOf(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum
}

func allZero(vals []float64) bool {
	for _, v := range vals {
		if v != 0 {
			return false
		}
	}
	return true
}
