package places

import (
	"regexp"
	"strings"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// Query caps keep a single plan under the provider rate limit.
const (
	maxPOIQueries  = 6
	maxFoodQueries = 6
)

// Bare generic terms produce noise results and are dropped unless the
// extractor made them specific ("night view restaurant" passes, "restaurant"
// does not).
var genericKeywords = map[string]bool{
	"맛집":           true,
	"카페":           true,
	"명소":           true,
	"관광지":          true,
	"데이트":          true,
	"핫플레이스":        true,
	"restaurant":   true,
	"cafe":         true,
	"attraction":   true,
	"tourist spot": true,
	"hot place":    true,
}

var foodKeywordPattern = regexp.MustCompile(
	`(?i)(맛집|식당|카페|브런치|디저트|베이커리|레스토랑|분식|포차|고기|고깃집|비건|채식|` +
		`restaurant|cafe|brunch|dessert|bakery|bbq|vegan|vegetarian|eats|food)`)

// SearchQueries is the final provider query set for one plan.
type SearchQueries struct {
	City        string
	POIQueries  []string
	FoodQueries []string
}

func isTooGeneric(keyword string) bool {
	trimmed := strings.TrimSpace(keyword)
	if len([]rune(trimmed)) <= 1 {
		return true
	}
	if genericKeywords[strings.ToLower(trimmed)] {
		return true
	}

	// "Seoul restaurant" style two-word queries built around a generic term
	// are still generic.
	parts := strings.Fields(trimmed)
	if len(parts) <= 2 {
		for _, p := range parts {
			if genericKeywords[strings.ToLower(p)] {
				return true
			}
		}
	}
	return false
}

func filterGenericKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if !isTooGeneric(kw) {
			out = append(out, kw)
		}
	}
	return out
}

func isFoodKeyword(keyword string) bool {
	return keyword != "" && foodKeywordPattern.MatchString(keyword)
}

var multiSpace = regexp.MustCompile(`\s+`)

// buildCityQuery prefixes the city exactly once, removing any occurrence the
// keyword already carries.
func buildCityQuery(city, keyword string) string {
	city = strings.TrimSpace(city)
	kw := strings.TrimSpace(keyword)

	if city == "" && kw == "" {
		return ""
	}
	if city != "" && kw != "" {
		kw = strings.TrimSpace(strings.ReplaceAll(kw, city, ""))
	}
	if kw == "" {
		return city
	}
	return strings.TrimSpace(multiSpace.ReplaceAllString(city+" "+kw, " "))
}

func dedupeAndCap(keywords []string, city string, limit int) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, limit)
	for _, kw := range keywords {
		q := buildCityQuery(city, kw)
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out
}

// BuildSearchQueries turns extracted preference keywords into the provider
// query set: generic terms dropped, food keywords routed to the food side,
// the city prefixed once, duplicates removed, counts capped. A low budget
// adds value-focused food queries; empty sides get specific fallbacks so a
// plan can always search something.
func BuildSearchQueries(pref types.Preference, baseArea string) SearchQueries {
	city := strings.TrimSpace(pref.City)
	if city == "" {
		city = strings.TrimSpace(baseArea)
	}
	if city == "" {
		city = "서울"
	}

	poiRaw := append(append([]string{}, pref.POISearchQueries...), pref.SearchKeywords...)
	foodRaw := append([]string{}, pref.FoodSearchQueries...)

	var poiKeywords []string
	for _, kw := range filterGenericKeywords(poiRaw) {
		if !isFoodKeyword(kw) {
			poiKeywords = append(poiKeywords, kw)
		}
	}

	// Food keywords that leaked into the sightseeing side still count.
	foodMixed := append([]string{}, foodRaw...)
	for _, kw := range poiRaw {
		if isFoodKeyword(kw) {
			foodMixed = append(foodMixed, kw)
		}
	}
	foodKeywords := filterGenericKeywords(foodMixed)

	if pref.BudgetLevel == "low" {
		foodKeywords = append(foodKeywords, "가성비 맛집", "저렴한 맛집", "현지인 가는 맛집")
	}

	if len(poiKeywords) == 0 {
		poiKeywords = []string{"야경 명소", "전망대"}
	}
	if len(foodKeywords) == 0 {
		foodKeywords = []string{"가성비 맛집"}
	}

	return SearchQueries{
		City:        city,
		POIQueries:  dedupeAndCap(poiKeywords, city, maxPOIQueries),
		FoodQueries: dedupeAndCap(foodKeywords, city, maxFoodQueries),
	}
}
