// Package selection partitions a scored candidate pool into the bounded
// subset of places one day can hold, honoring meal slots, diet constraints,
// theme coverage, and category diversity.
package selection

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// At most this many selections per restaurant/cafe/other group, so one strong
// category never fills the whole day.
const categoryDiversityCap = 2

// Keyword tables keyed by the diet labels the preference extractor emits.
var dietKeywords = map[string][]string{
	"halal":       {"halal", "할랄"},
	"vegan":       {"vegan", "비건"},
	"vegetarian":  {"vegetarian", "채식", "베지테리언"},
	"kosher":      {"kosher", "코셔"},
	"gluten_free": {"gluten free", "gluten-free", "글루텐프리", "글루텐 프리"},
	"non_alcohol": {"non-alcohol", "non alcohol", "논알콜", "무알콜"},
}

// Keyword tables keyed by the theme labels the preference extractor emits.
var themeKeywords = map[string][]string{
	"shopping":    {"shopping", "mall", "market", "outlet", "department store", "쇼핑", "백화점", "몰", "아울렛", "편집샵"},
	"culture":     {"museum", "gallery", "exhibition", "history", "culture", "박물관", "미술관", "전시", "뮤지엄", "역사", "문화"},
	"nature":      {"park", "nature", "stroll", "forest", "river", "공원", "자연", "산책", "한강", "숲"},
	"cafe_tour":   {"cafe", "brunch", "dessert", "카페", "브런치", "디저트"},
	"night_photo": {"night view", "observatory", "rooftop", "야경", "전망대", "루프탑", "야간"},
	"healing":     {"spa", "hot spring", "healing", "온천", "스파", "힐링", "휴식"},
	"kpop":        {"k-pop", "kpop", "idol", "entertainment", "K팝", "아이돌", "엔터테인먼트", "굿즈"},
	"sns_hot":     {"hot place", "instagram", "photo spot", "핫플", "인스타", "포토스팟", "포토 스팟"},
}

// NormalizeName collapses a display name for duplicate detection: markup
// stripped, diacritics removed, lowercased, whitespace dropped.
func NormalizeName(s string) string {
	// Strip provider markup such as <b>...</b> around matched terms.
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	decomposed := norm.NFD.String(b.String())
	var out strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) || unicode.IsSpace(r) {
			continue
		}
		out.WriteRune(unicode.ToLower(r))
	}
	// Recompose so scripts with canonical decompositions (e.g. Hangul)
	// compare equal to their composed form.
	return norm.NFC.String(out.String())
}

// collidesWithMandatory reports whether a candidate's normalized name
// overlaps a mandatory stop's, to avoid scheduling the same visit twice.
func collidesWithMandatory(name string, mandatory []string) bool {
	n := NormalizeName(name)
	if n == "" {
		return false
	}
	for _, m := range mandatory {
		if m == "" {
			continue
		}
		if strings.Contains(n, m) || strings.Contains(m, n) {
			return true
		}
	}
	return false
}

func textOf(p types.PlaceDetailedInfo) string {
	return strings.ToLower(p.Name + " " + p.Address + " " + p.Category + " " + p.Description)
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// classify falls back to keyword heuristics when the provider tag is absent.
func classify(p types.PlaceDetailedInfo) types.CategoryType {
	if p.CategoryType != "" {
		return p.CategoryType
	}
	text := textOf(p)
	if matchesAny(text, []string{"cafe", "coffee", "dessert", "카페", "커피", "디저트"}) {
		return types.CategoryCafe
	}
	if matchesAny(text, []string{"restaurant", "식당", "음식점", "한식", "양식", "중식", "일식", "뷔페", "레스토랑", "고기", "치킨", "피자", "분식", "브런치", "포차"}) {
		return types.CategoryRestaurant
	}
	return types.CategoryPOI
}

type picker struct {
	used map[string]bool // normalized-name dedup across selections
}

func (pk *picker) take(p types.PlaceDetailedInfo) bool {
	key := NormalizeName(p.Name)
	if key == "" || pk.used[key] {
		return false
	}
	pk.used[key] = true
	return true
}

// SelectPOIs filters the candidate pool down to at most count places:
// mandatory-stop duplicates removed, diet constraints reserved first,
// restaurant slots matched to the requested meals, one optional cafe slot,
// then theme-matched and generic sightseeing, each category capped for
// diversity. Candidates are assumed pre-ranked; order is preserved.
func SelectPOIs(count int, meals types.MealFlags, diets, themes []string,
	candidates []types.PlaceDetailedInfo, mandatory []types.MandatoryStop) []types.PlaceDetailedInfo {

	if count <= 0 || len(candidates) == 0 {
		return nil
	}

	mandatoryNames := make([]string, 0, len(mandatory))
	for _, m := range mandatory {
		mandatoryNames = append(mandatoryNames, NormalizeName(m.Name))
	}

	var restaurants, cafes, others []types.PlaceDetailedInfo
	for _, c := range candidates {
		if collidesWithMandatory(c.Name, mandatoryNames) {
			continue
		}
		switch classify(c) {
		case types.CategoryCafe:
			cafes = append(cafes, c)
		case types.CategoryRestaurant:
			restaurants = append(restaurants, c)
		default:
			others = append(others, c)
		}
	}

	maxRestaurants := meals.MealCount()
	if maxRestaurants > categoryDiversityCap {
		maxRestaurants = categoryDiversityCap
	}
	maxCafes := 0
	if meals.Cafe {
		maxCafes = 1
	}

	pk := &picker{used: make(map[string]bool)}
	var pickedRestaurants, pickedCafes []types.PlaceDetailedInfo

	// Diet constraints reserve a matching slot first. Gluten-free applies to
	// cafes only; everything else prefers restaurants and falls back to cafes.
	for _, diet := range diets {
		keywords := dietKeywords[strings.ToLower(diet)]
		if keywords == nil {
			keywords = []string{strings.ToLower(diet)}
		}

		if strings.EqualFold(diet, "gluten_free") {
			if len(pickedCafes) >= maxCafes {
				continue
			}
			for _, c := range cafes {
				if matchesAny(textOf(c), keywords) && pk.take(c) {
					pickedCafes = append(pickedCafes, c)
					break
				}
			}
			continue
		}

		found := false
		if len(pickedRestaurants) < maxRestaurants {
			for _, c := range restaurants {
				if matchesAny(textOf(c), keywords) && pk.take(c) {
					pickedRestaurants = append(pickedRestaurants, c)
					found = true
					break
				}
			}
		}
		if !found && len(pickedCafes) < maxCafes {
			for _, c := range cafes {
				if matchesAny(textOf(c), keywords) && pk.take(c) {
					pickedCafes = append(pickedCafes, c)
					break
				}
			}
		}
	}

	// Fill remaining restaurant and cafe slots in ranked order.
	for _, c := range restaurants {
		if len(pickedRestaurants) >= maxRestaurants {
			break
		}
		if pk.take(c) {
			pickedRestaurants = append(pickedRestaurants, c)
		}
	}
	for _, c := range cafes {
		if len(pickedCafes) >= maxCafes {
			break
		}
		if pk.take(c) {
			pickedCafes = append(pickedCafes, c)
		}
	}

	food := append(append([]types.PlaceDetailedInfo{}, pickedRestaurants...), pickedCafes...)
	if len(food) > count {
		food = food[:count]
	}

	// Sightseeing fills what is left: one candidate per requested theme
	// first, then any remaining candidate, capped for diversity.
	remaining := count - len(food)
	maxOthers := categoryDiversityCap
	if remaining < maxOthers {
		maxOthers = remaining
	}

	var pickedOthers []types.PlaceDetailedInfo
	for _, theme := range themes {
		if len(pickedOthers) >= maxOthers {
			break
		}
		keywords := themeKeywords[strings.ToLower(theme)]
		for _, c := range others {
			if len(keywords) > 0 && !matchesAny(textOf(c), keywords) {
				continue
			}
			if pk.take(c) {
				pickedOthers = append(pickedOthers, c)
				break
			}
		}
	}
	for _, c := range others {
		if len(pickedOthers) >= maxOthers {
			break
		}
		if pk.take(c) {
			pickedOthers = append(pickedOthers, c)
		}
	}

	selected := append(food, pickedOthers...)
	if len(selected) > count {
		selected = selected[:count]
	}
	return selected
}
