// Package scoring ranks candidate POIs against a weight profile and a
// geographic origin. Scoring is a pure function of its inputs: the same
// candidate, preference, weights, and anchors always produce the same score
// and breakdown. Malformed numeric fields degrade to neutral defaults, never
// to errors.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/youra031220/Seoulmatebeta/internal/planner/geo"
	"github.com/youra031220/Seoulmatebeta/internal/types"
)

const (
	defaultRating  = 3.5
	neutralFactor  = 0.5
	maxDistanceKm  = 20.0 // distance factor decays to 0 here
	anchorRadiusKm = 5.0

	anchorProximityBonus = 0.1
	anchorCategoryBonus  = 0.05

	// Budget factor: match quality by |priceLevel - budgetLevel|.
	budgetExactMatch = 1.0
	budgetOffByOne   = 0.6
	budgetMismatch   = 0.2

	dietMismatch = 0.2

	avoidFloor = 0.0
)

// Scorer scores POIs using an injectable keyword classifier.
type Scorer struct {
	classifier Classifier
}

// NewScorer returns a Scorer. A nil classifier falls back to the default
// bilingual keyword tables.
func NewScorer(classifier Classifier) *Scorer {
	if classifier == nil {
		classifier = NewKeywordClassifier()
	}
	return &Scorer{classifier: classifier}
}

// combinedText is the searchable text of a candidate: title, category and
// description concatenated, lowercased by the classifier at match time.
func combinedText(poi types.PlaceDetailedInfo) string {
	return strings.TrimSpace(poi.Name + " " + poi.Category + " " + poi.Description)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// baseFactor maps the rating to [0,1], assuming 3.5 when absent.
func baseFactor(poi types.PlaceDetailedInfo) float64 {
	rating := poi.Rating
	if rating <= 0 || math.IsNaN(rating) {
		rating = defaultRating
	}
	if rating > 5 {
		rating = 5
	}
	return rating / 5
}

// distanceFactor decays linearly from 1.0 at the origin to 0.0 at 20 km.
// Thematically matched POIs get the penalty halved so a strong but distant
// match is not drowned out; that raises the floor to 0.5.
func distanceFactor(poi types.PlaceDetailedInfo, origin types.GeoPoint, themeMatched bool) (float64, float64) {
	if origin.IsZero() || poi.Point().IsZero() {
		return neutralFactor, 0
	}
	km := geo.HaversineKm(origin, poi.Point())
	score := clamp01(1 - km/maxDistanceKm)
	if themeMatched {
		score = 1 - (1-score)/2
	}
	return score, km
}

// budgetFactor compares the keyword-inferred price level (1-3) against the
// traveler's budget level. The value and luxury sub-weights nudge the score
// for under- and over-budget matches that the traveler actually wants.
func (s *Scorer) budgetFactor(text string, pref types.Preference, w types.WeightProfile) float64 {
	budgetMap := map[string]int{types.BudgetLow: 1, types.BudgetMid: 2, types.BudgetHigh: 3}
	userBudget := budgetMap[pref.NormalizedBudgetLevel()]
	priceLevel := s.classifier.PriceLevel(text)

	var score float64
	diff := priceLevel - userBudget
	switch {
	case diff == 0:
		score = budgetExactMatch
	case diff == 1 || diff == -1:
		score = budgetOffByOne
	default:
		score = budgetMismatch
	}

	if diff > 0 {
		// Over budget: the (usually negative) price weight pulls it down.
		score -= math.Abs(w.Budget.PriceWeight) * 0.2 * float64(diff)
	} else if diff < 0 {
		score += math.Abs(w.Budget.ValueBonus) * 0.2 * float64(-diff)
	}
	if userBudget == 3 && priceLevel == 3 {
		score += math.Abs(w.Budget.LuxuryBonus) * 0.2
	}
	if userBudget == 1 && priceLevel == 1 {
		score += math.Abs(w.Budget.ValueBonus) * 0.2
	}

	return clamp01(score)
}

// themeFactor is the weighted ratio of matched themes+tags over all declared
// ones, minus a flat penalty when any must-avoid phrase matches. Neutral when
// nothing is declared.
func (s *Scorer) themeFactor(text string, pref types.Preference, w types.WeightProfile) float64 {
	themeBonus := math.Abs(w.Theme.ThemeMatchBonus)
	tagBonus := math.Abs(w.Theme.TagMatchBonus)

	total := float64(len(pref.Themes))*themeBonus + float64(len(pref.POITags))*tagBonus
	score := neutralFactor
	if total > 0 {
		matched := 0.0
		for _, theme := range pref.Themes {
			if s.classifier.MatchesTag(text, theme) {
				matched += themeBonus
			}
		}
		for _, tag := range pref.POITags {
			if s.classifier.MatchesTag(text, tag) {
				matched += tagBonus
			}
		}
		score = matched / total
	}

	for _, avoid := range pref.MustAvoid {
		if s.classifier.MatchesAvoid(text, avoid) {
			score -= math.Abs(w.Theme.AvoidPenalty)
			break
		}
	}
	return math.Max(avoidFloor, score)
}

// matchesAnyTheme reports whether the candidate matches any declared theme or
// tag; used to soften the distance penalty.
func (s *Scorer) matchesAnyTheme(text string, pref types.Preference) bool {
	for _, theme := range pref.Themes {
		if s.classifier.MatchesTag(text, theme) {
			return true
		}
	}
	for _, tag := range pref.POITags {
		if s.classifier.MatchesTag(text, tag) {
			return true
		}
	}
	return false
}

func categoryFactor(poi types.PlaceDetailedInfo, w types.WeightProfile) float64 {
	switch poi.CategoryType {
	case types.CategoryRestaurant:
		return w.Category.RestaurantWeight
	case types.CategoryCafe:
		return w.Category.CafeWeight
	}
	return w.Category.POIWeight
}

// dietFactor: 1.0 on any diet match (times the diet gate), 0.2 on a declared
// miss, neutral 0.5 when no diet preferences were declared.
func (s *Scorer) dietFactor(text string, pref types.Preference, w types.WeightProfile) float64 {
	if len(pref.DietPreferences) == 0 {
		return neutralFactor
	}
	for _, diet := range pref.DietPreferences {
		if s.classifier.MatchesDiet(text, diet) {
			return clamp01(w.Diet.DietMatchBonus)
		}
	}
	return dietMismatch
}

func (s *Scorer) paceFactor(text string, pref types.Preference) float64 {
	if pref.NormalizedPace() == types.PaceRelaxed && s.classifier.IsRelaxing(text) {
		return 1.0
	}
	return neutralFactor
}

// anchorBonus rewards proximity (within 5 km, linearly decaying) and exact
// classification match with the supplied "more like this" anchor.
func anchorBonus(poi types.PlaceDetailedInfo, anchor *types.PlaceDetailedInfo) float64 {
	if anchor == nil {
		return 0
	}
	bonus := 0.0
	if !poi.Point().IsZero() && !anchor.Point().IsZero() {
		km := geo.HaversineKm(poi.Point(), anchor.Point())
		if km <= anchorRadiusKm {
			bonus += anchorProximityBonus * (1 - km/anchorRadiusKm)
		}
	}
	if poi.CategoryType != "" && poi.CategoryType == anchor.CategoryType {
		bonus += anchorCategoryBonus
	}
	return bonus
}

// ScorePOI scores one candidate against the preference and weight profile
// relative to the geographic origin. The optional anchor biases the score
// toward similar nearby places for "more like this" refinement.
func (s *Scorer) ScorePOI(poi types.PlaceDetailedInfo, pref types.Preference, w types.WeightProfile,
	origin types.GeoPoint, anchor *types.PlaceDetailedInfo) types.ScoredPOI {

	text := combinedText(poi)
	themeMatched := s.matchesAnyTheme(text, pref)

	base := baseFactor(poi)
	distance, km := distanceFactor(poi, origin, themeMatched)
	budget := s.budgetFactor(text, pref, w)
	theme := s.themeFactor(text, pref, w)
	category := categoryFactor(poi, w)
	diet := s.dietFactor(text, pref, w)
	pace := s.paceFactor(text, pref)
	anchorB := anchorBonus(poi, anchor)

	combined := w.Contribution.Base*base +
		w.Contribution.Distance*distance +
		w.Contribution.Budget*budget +
		w.Contribution.Theme*theme +
		w.Contribution.Category*category +
		w.Contribution.Diet*diet +
		w.Contribution.Pace*pace +
		anchorB

	score := math.Max(0, math.Min(10, combined*10))

	return types.ScoredPOI{
		PlaceDetailedInfo: poi,
		Score:             score,
		Breakdown: types.ScoreBreakdown{
			Base:       base,
			Distance:   distance,
			Budget:     budget,
			Theme:      theme,
			Category:   category,
			Diet:       diet,
			Pace:       pace,
			Anchor:     anchorB,
			DistanceKm: km,
		},
	}
}

// ScorePOIs scores a candidate slice and returns it sorted by descending
// score. The sort is stable so equal scores keep provider order.
func (s *Scorer) ScorePOIs(pois []types.PlaceDetailedInfo, pref types.Preference, w types.WeightProfile,
	origin types.GeoPoint, anchor *types.PlaceDetailedInfo) []types.ScoredPOI {

	scored := make([]types.ScoredPOI, 0, len(pois))
	for _, poi := range pois {
		scored = append(scored, s.ScorePOI(poi, pref, w, origin, anchor))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
