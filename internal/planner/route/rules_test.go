package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

func node(kind types.NodeKind, category string) types.RouteNode {
	return types.RouteNode{Kind: kind, Category: category}
}

var (
	startNode      = node(types.NodeStart, "")
	restaurantNode = node(types.NodePOI, "restaurant")
	cafeNode       = node(types.NodePOI, "cafe")
	sightNode      = node(types.NodePOI, "poi")
)

func TestNoConsecutiveRestaurants(t *testing.T) {
	visited := []types.RouteNode{startNode, restaurantNode}
	assert.Negative(t, NoConsecutiveRestaurants(visited, restaurantNode))
	assert.Zero(t, NoConsecutiveRestaurants(visited, sightNode))

	// A sightseeing stop in between clears the penalty.
	visited = append(visited, sightNode)
	assert.Zero(t, NoConsecutiveRestaurants(visited, restaurantNode))
}

func TestCafeAfterMeal(t *testing.T) {
	// Cafe before any restaurant is penalized.
	assert.Negative(t, CafeAfterMeal([]types.RouteNode{startNode}, cafeNode))

	// Cafe immediately after a restaurant is penalized.
	assert.Negative(t, CafeAfterMeal([]types.RouteNode{startNode, restaurantNode}, cafeNode))

	// Restaurant, then sightseeing, then cafe is fine.
	assert.Zero(t, CafeAfterMeal([]types.RouteNode{startNode, restaurantNode, sightNode}, cafeNode))

	// Non-cafe candidates are never affected.
	assert.Zero(t, CafeAfterMeal([]types.RouteNode{startNode}, restaurantNode))
}

func TestMealSightseeingRhythm(t *testing.T) {
	assert.Positive(t, MealSightseeingRhythm([]types.RouteNode{startNode, restaurantNode}, sightNode))
	assert.Positive(t, MealSightseeingRhythm([]types.RouteNode{startNode, sightNode}, cafeNode))
	assert.Zero(t, MealSightseeingRhythm([]types.RouteNode{startNode, sightNode}, restaurantNode))
	assert.Zero(t, MealSightseeingRhythm([]types.RouteNode{startNode}, sightNode))
}

func TestStayMinutes(t *testing.T) {
	var w types.WeightProfile

	assert.Equal(t, 60, StayMinutes("restaurant", "normal", w))
	assert.Equal(t, 50, StayMinutes("cafe", "normal", w)) // 45 rounds up to 50
	assert.Equal(t, 90, StayMinutes("poi", "normal", w))
	assert.Equal(t, 60, StayMinutes("unknown-category", "normal", w))

	// Pace scaling: attraction 90 × 1.3 = 117 → 120; × 0.7 = 63 → 60.
	assert.Equal(t, 120, StayMinutes("attraction", "relaxed", w))
	assert.Equal(t, 60, StayMinutes("attraction", "tight", w))

	// A derived profile's multiplier wins over the named pace.
	w.Pace.StayTimeMultiplier = 0.7
	assert.Equal(t, 60, StayMinutes("attraction", "relaxed", w))
}

func TestStayMinutes_Floor(t *testing.T) {
	var w types.WeightProfile
	w.Pace.StayTimeMultiplier = 0.1
	assert.Equal(t, 10, StayMinutes("cafe", "normal", w))
}
