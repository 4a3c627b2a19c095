package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youra031220/Seoulmatebeta/internal/planner/weights"
	"github.com/youra031220/Seoulmatebeta/internal/types"
)

var seoulCityHall = types.GeoPoint{Latitude: 37.5665, Longitude: 126.9780}

func candidate(name, category, description string, lat, lon, rating float64, ct types.CategoryType) types.PlaceDetailedInfo {
	return types.PlaceDetailedInfo{
		Name:         name,
		Category:     category,
		Description:  description,
		Latitude:     lat,
		Longitude:    lon,
		Rating:       rating,
		CategoryType: ct,
	}
}

func TestScorePOI_ScoreWithinBounds(t *testing.T) {
	s := NewScorer(nil)
	pref := types.Preference{BudgetLevel: "mid", Pace: "normal", Themes: []string{"nature"}}
	w := weights.DeriveWeights(pref)

	pois := []types.PlaceDetailedInfo{
		candidate("Gyeongbok Palace", "Travel,Attractions>Palace", "historic palace", 37.5796, 126.9770, 4.9, types.CategoryPOI),
		candidate("No Data Place", "", "", 0, 0, 0, ""),
		candidate("Han River Park", "park", "riverside stroll", 37.5283, 126.9326, 4.5, types.CategoryPOI),
	}

	for _, poi := range pois {
		scored := s.ScorePOI(poi, pref, w, seoulCityHall, nil)
		assert.GreaterOrEqual(t, scored.Score, 0.0)
		assert.LessOrEqual(t, scored.Score, 10.0)
	}
}

func TestScorePOI_Deterministic(t *testing.T) {
	s := NewScorer(nil)
	pref := types.Preference{BudgetLevel: "low", Pace: "relaxed", Themes: []string{"nature"}, POITags: []string{"night view"}}
	w := weights.DeriveWeights(pref)
	poi := candidate("Namsan Park", "park", "night view and quiet trail", 37.5512, 126.9882, 4.6, types.CategoryPOI)

	first := s.ScorePOI(poi, pref, w, seoulCityHall, nil)
	second := s.ScorePOI(poi, pref, w, seoulCityHall, nil)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Breakdown, second.Breakdown)
}

func TestScorePOI_OriginAtPOIMaximizesDistanceFactor(t *testing.T) {
	s := NewScorer(nil)
	pref := types.Preference{}
	w := weights.DeriveWeights(pref)
	poi := candidate("Right Here", "cafe", "", seoulCityHall.Latitude, seoulCityHall.Longitude, 4.0, types.CategoryCafe)

	scored := s.ScorePOI(poi, pref, w, seoulCityHall, nil)
	assert.Equal(t, 1.0, scored.Breakdown.Distance)
	assert.Zero(t, scored.Breakdown.DistanceKm)
}

func TestScorePOI_MissingCoordinatesAreNeutral(t *testing.T) {
	s := NewScorer(nil)
	w := weights.DeriveWeights(types.Preference{})
	poi := candidate("Nowhere", "cafe", "", 0, 0, 4.0, types.CategoryCafe)

	scored := s.ScorePOI(poi, types.Preference{}, w, seoulCityHall, nil)
	assert.Equal(t, 0.5, scored.Breakdown.Distance)
}

func TestScorePOI_ThemeMatchSoftensDistancePenalty(t *testing.T) {
	s := NewScorer(nil)
	pref := types.Preference{Themes: []string{"night view"}}
	w := weights.DeriveWeights(pref)

	// ~18 km north of the origin: heavily penalized unless theme-matched.
	far := candidate("Far Lookout", "observatory", "night view point", 37.73, 126.98, 4.0, types.CategoryPOI)
	farPlain := candidate("Far Warehouse", "warehouse", "", 37.73, 126.98, 4.0, types.CategoryPOI)

	matched := s.ScorePOI(far, pref, w, seoulCityHall, nil)
	plain := s.ScorePOI(farPlain, pref, w, seoulCityHall, nil)

	assert.Greater(t, matched.Breakdown.Distance, plain.Breakdown.Distance)
	assert.GreaterOrEqual(t, matched.Breakdown.Distance, 0.5)
}

func TestScorePOI_LowBudgetPrefersCheapRestaurant(t *testing.T) {
	s := NewScorer(nil)
	pref := types.Preference{BudgetLevel: "low", Pace: "relaxed"}
	w := weights.DeriveWeights(pref)

	cheap := candidate("Gwangjang Stall", "street food stall at the market", "", 37.5700, 126.9996, 4.3, types.CategoryRestaurant)
	pricey := candidate("Signature Omakase", "fine dining, luxury hotel restaurant", "", 37.5700, 126.9996, 4.3, types.CategoryRestaurant)

	cheapScored := s.ScorePOI(cheap, pref, w, seoulCityHall, nil)
	priceyScored := s.ScorePOI(pricey, pref, w, seoulCityHall, nil)

	assert.Greater(t, cheapScored.Breakdown.Budget, priceyScored.Breakdown.Budget)
	assert.Greater(t, cheapScored.Score, priceyScored.Score)
}

func TestScorePOI_DietFactor(t *testing.T) {
	s := NewScorer(nil)
	pref := types.Preference{DietPreferences: []string{"vegan"}}
	w := weights.DeriveWeights(pref)

	veganPlace := candidate("Green Table", "vegan restaurant", "", 37.56, 126.97, 4.0, types.CategoryRestaurant)
	bbqPlace := candidate("Charcoal BBQ", "korean bbq", "", 37.56, 126.97, 4.0, types.CategoryRestaurant)

	assert.Equal(t, 1.0, s.ScorePOI(veganPlace, pref, w, seoulCityHall, nil).Breakdown.Diet)
	assert.Equal(t, 0.2, s.ScorePOI(bbqPlace, pref, w, seoulCityHall, nil).Breakdown.Diet)

	// No declared diet preferences: neutral.
	noDiet := types.Preference{}
	assert.Equal(t, 0.5, s.ScorePOI(bbqPlace, noDiet, weights.DeriveWeights(noDiet), seoulCityHall, nil).Breakdown.Diet)
}

func TestScorePOI_RelaxedPaceBonus(t *testing.T) {
	s := NewScorer(nil)
	relaxed := types.Preference{Pace: "relaxed"}
	w := weights.DeriveWeights(relaxed)

	park := candidate("Seoul Forest", "park", "quiet riverside stroll", 37.5444, 127.0374, 4.5, types.CategoryPOI)
	club := candidate("Club District", "nightlife", "", 37.5444, 127.0374, 4.5, types.CategoryPOI)

	assert.Equal(t, 1.0, s.ScorePOI(park, relaxed, w, seoulCityHall, nil).Breakdown.Pace)
	assert.Equal(t, 0.5, s.ScorePOI(club, relaxed, w, seoulCityHall, nil).Breakdown.Pace)

	tight := types.Preference{Pace: "tight"}
	assert.Equal(t, 0.5, s.ScorePOI(park, tight, weights.DeriveWeights(tight), seoulCityHall, nil).Breakdown.Pace)
}

func TestScorePOI_MustAvoidPenalty(t *testing.T) {
	s := NewScorer(nil)
	pref := types.Preference{Themes: []string{"food"}, MustAvoid: []string{"crowded places"}}
	w := weights.DeriveWeights(pref)

	hotspot := candidate("Viral Hotspot", "famous hotspot food alley, long queue", "", 37.56, 126.97, 4.8, types.CategoryPOI)
	calm := candidate("Quiet Food Alley", "food alley", "", 37.56, 126.97, 4.8, types.CategoryPOI)

	assert.Less(t,
		s.ScorePOI(hotspot, pref, w, seoulCityHall, nil).Breakdown.Theme,
		s.ScorePOI(calm, pref, w, seoulCityHall, nil).Breakdown.Theme)

	// The penalty floors at zero, never negative.
	assert.GreaterOrEqual(t, s.ScorePOI(hotspot, pref, w, seoulCityHall, nil).Breakdown.Theme, 0.0)
}

func TestScorePOI_AnchorSimilarity(t *testing.T) {
	s := NewScorer(nil)
	pref := types.Preference{}
	w := weights.DeriveWeights(pref)

	anchor := candidate("Anchor Cafe", "cafe", "", 37.5665, 126.9780, 4.2, types.CategoryCafe)
	nearSame := candidate("Nearby Cafe", "cafe", "", 37.5670, 126.9790, 4.2, types.CategoryCafe)
	farOther := candidate("Distant Museum", "museum", "", 37.40, 127.10, 4.2, types.CategoryPOI)

	withAnchor := s.ScorePOI(nearSame, pref, w, seoulCityHall, &anchor)
	require.Greater(t, withAnchor.Breakdown.Anchor, 0.1) // proximity plus category match
	assert.LessOrEqual(t, withAnchor.Breakdown.Anchor, 0.15)

	assert.Zero(t, s.ScorePOI(farOther, pref, w, seoulCityHall, &anchor).Breakdown.Anchor)
	assert.Zero(t, s.ScorePOI(nearSame, pref, w, seoulCityHall, nil).Breakdown.Anchor)
}

func TestScorePOIs_SortedDescending(t *testing.T) {
	s := NewScorer(nil)
	pref := types.Preference{BudgetLevel: "low"}
	w := weights.DeriveWeights(pref)

	pois := []types.PlaceDetailedInfo{
		candidate("Luxury Spot", "luxury fine dining", "", 37.60, 127.05, 3.0, types.CategoryRestaurant),
		candidate("Local Market", "street food market", "", 37.5665, 126.9780, 4.8, types.CategoryRestaurant),
		candidate("Mid Cafe", "cafe", "", 37.57, 126.98, 4.0, types.CategoryCafe),
	}

	scored := s.ScorePOIs(pois, pref, w, seoulCityHall, nil)
	require.Len(t, scored, 3)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}
