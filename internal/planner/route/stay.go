package route

import (
	"math"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// Base stay minutes per category before pace adjustment.
var baseStayMinutes = map[string]int{
	"palace":     90,
	"museum":     90,
	"attraction": 90,
	"poi":        90,
	"restaurant": 60,
	"cafe":       45,
	"required":   60,
	"spot":       60,
}

const (
	defaultStayMinutes = 60
	minStayMinutes     = 10
)

// paceMultiplier falls back from the profile's stay-time multiplier to the
// named pace when a profile was not derived.
func paceMultiplier(pace string, w types.WeightProfile) float64 {
	if w.Pace.StayTimeMultiplier > 0 {
		return w.Pace.StayTimeMultiplier
	}
	switch pace {
	case types.PaceRelaxed:
		return 1.3
	case types.PaceTight:
		return 0.7
	}
	return 1.0
}

// StayMinutes returns the pace-adjusted stay duration for a category,
// rounded to the nearest 10 minutes with a 10-minute floor.
func StayMinutes(category, pace string, w types.WeightProfile) int {
	base, ok := baseStayMinutes[category]
	if !ok {
		base = defaultStayMinutes
	}
	adjusted := float64(base) * paceMultiplier(pace, w)
	rounded := int(math.Round(adjusted/10)) * 10
	if rounded < minStayMinutes {
		return minStayMinutes
	}
	return rounded
}
