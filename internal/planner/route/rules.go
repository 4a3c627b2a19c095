package route

import "github.com/youra031220/Seoulmatebeta/internal/types"

// OrderingRule scores how pleasant it would be to visit candidate next,
// given the stops visited so far. Rules are independent and their scores are
// summed at each greedy decision point, on the same scale as travel minutes.
type OrderingRule func(visited []types.RouteNode, candidate types.RouteNode) float64

const (
	consecutiveMealPenalty   = 20
	cafeTooEarlyPenalty      = 15
	cafeAfterMealPenalty     = 10
	mealThenSightseeingBonus = 8
	sightseeingThenCafeBonus = 8
)

func isRestaurant(n types.RouteNode) bool {
	return n.Category == string(types.CategoryRestaurant)
}

func isCafe(n types.RouteNode) bool {
	return n.Category == string(types.CategoryCafe)
}

func isSightseeing(n types.RouteNode) bool {
	return n.Kind == types.NodePOI && !isRestaurant(n) && !isCafe(n)
}

func lastStop(visited []types.RouteNode) (types.RouteNode, bool) {
	for i := len(visited) - 1; i >= 0; i-- {
		if visited[i].Kind == types.NodePOI {
			return visited[i], true
		}
	}
	return types.RouteNode{}, false
}

// NoConsecutiveRestaurants discourages two restaurant visits back to back.
func NoConsecutiveRestaurants(visited []types.RouteNode, candidate types.RouteNode) float64 {
	if !isRestaurant(candidate) {
		return 0
	}
	if prev, ok := lastStop(visited); ok && isRestaurant(prev) {
		return -consecutiveMealPenalty
	}
	return 0
}

// CafeAfterMeal discourages a cafe before any restaurant has been visited,
// or immediately after one with no sightseeing in between.
func CafeAfterMeal(visited []types.RouteNode, candidate types.RouteNode) float64 {
	if !isCafe(candidate) {
		return 0
	}
	anyRestaurant := false
	for _, n := range visited {
		if isRestaurant(n) {
			anyRestaurant = true
			break
		}
	}
	if !anyRestaurant {
		return -cafeTooEarlyPenalty
	}
	if prev, ok := lastStop(visited); ok && isRestaurant(prev) {
		return -cafeAfterMealPenalty
	}
	return 0
}

// MealSightseeingRhythm rewards the restaurant → sightseeing and
// sightseeing → cafe patterns.
func MealSightseeingRhythm(visited []types.RouteNode, candidate types.RouteNode) float64 {
	prev, ok := lastStop(visited)
	if !ok {
		return 0
	}
	if isRestaurant(prev) && isSightseeing(candidate) {
		return mealThenSightseeingBonus
	}
	if isSightseeing(prev) && isCafe(candidate) {
		return sightseeingThenCafeBonus
	}
	return 0
}

// DefaultOrderingRules is the rule set the sequencer applies unless the
// caller supplies its own.
func DefaultOrderingRules() []OrderingRule {
	return []OrderingRule{
		NoConsecutiveRestaurants,
		CafeAfterMeal,
		MealSightseeingRhythm,
	}
}
