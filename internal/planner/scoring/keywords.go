package scoring

import "strings"

// Classifier answers the text-matching questions scoring needs: coarse price
// level, tag/avoid/diet matching, and relaxation hints. Keeping it behind an
// interface lets keyword sets be swapped per locale and tested in isolation.
type Classifier interface {
	// PriceLevel infers a coarse price level (1 cheap .. 3 expensive) from a
	// place's combined text. Unknown text maps to 2.
	PriceLevel(text string) int
	// MatchesTag reports whether the text matches a theme or preference tag.
	MatchesTag(text, tag string) bool
	// MatchesAvoid reports whether the text matches a must-avoid phrase,
	// including the synonym groups for "expensive" and "crowded" avoidance.
	MatchesAvoid(text, avoid string) bool
	// MatchesDiet reports whether the text satisfies a diet preference.
	MatchesDiet(text, diet string) bool
	// IsRelaxing reports whether the text suggests a slow, quiet place.
	IsRelaxing(text string) bool
}

// KeywordClassifier is the default Classifier: ordered keyword lists over
// lowercased substrings. The tables are bilingual (English and Korean) since
// the service plans Seoul trips for international travelers.
type KeywordClassifier struct {
	luxury    []string
	midTier   []string
	budget    []string
	expensive []string // target keywords for "avoid expensive" phrases
	crowded   []string // target keywords for "avoid crowded" phrases
	relaxing  []string
	diets     map[string][]string
}

// NewKeywordClassifier returns the default bilingual keyword tables.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		luxury: []string{
			"luxury", "premium", "fine dining", "hotel", "steak", "omakase", "tasting course",
			"고급", "프리미엄", "파인 다이닝", "호텔", "스테이크", "오마카세", "코스요리",
		},
		midTier: []string{
			"buffet", "restaurant", "brunch", "dessert", "cafe", "bar", "pub",
			"뷔페", "레스토랑", "브런치", "디저트", "카페", "바", "펍",
		},
		budget: []string{
			"snack bar", "street food", "food stall", "market", "diner", "takeout",
			"분식", "포장마차", "포차", "노포", "시장", "포장",
		},
		expensive: []string{
			"luxury", "premium", "fine dining", "hotel", "omakase", "steak",
			"고급", "프리미엄", "파인 다이닝", "호텔", "오마카세", "스테이크",
		},
		crowded: []string{
			"hot place", "hotspot", "popular", "waiting line", "queue",
			"핫플", "핫 플레이스", "인기", "대기", "줄 서는",
		},
		relaxing: []string{
			"park", "stroll", "walk", "quiet", "calm", "trail", "lakeside", "riverside", "waterfront", "garden",
			"공원", "산책", "한적", "조용", "산책로", "호숫가", "강변", "정원",
		},
		diets: map[string][]string{
			"vegan":      {"vegan", "비건"},
			"vegetarian": {"vegetarian", "veggie", "채식", "베지"},
			"halal":      {"halal", "할랄"},
		},
	}
}

var _ Classifier = (*KeywordClassifier)(nil)

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// PriceLevel applies the ordered rule list: luxury keywords win over mid-tier,
// mid-tier over budget, and everything else defaults to 2.
func (c *KeywordClassifier) PriceLevel(text string) int {
	t := strings.ToLower(text)
	switch {
	case containsAny(t, c.luxury):
		return 3
	case containsAny(t, c.midTier):
		return 2
	case containsAny(t, c.budget):
		return 1
	}
	return 2
}

func (c *KeywordClassifier) MatchesTag(text, tag string) bool {
	if tag == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(tag))
}

func (c *KeywordClassifier) MatchesAvoid(text, avoid string) bool {
	if avoid == "" {
		return false
	}
	t := strings.ToLower(text)
	a := strings.ToLower(avoid)

	// "expensive"-flavored avoidance matches luxury-signaling places.
	if containsAny(a, []string{"expensive", "pricey", "luxury", "premium", "비싼", "비싸", "고급", "프리미엄"}) {
		if containsAny(t, c.expensive) {
			return true
		}
	}

	// "crowded"-flavored avoidance matches hotspot-signaling places.
	if containsAny(a, []string{"crowded", "busy", "packed", "사람 많은", "복잡한", "붐비는"}) {
		if containsAny(t, c.crowded) {
			return true
		}
	}

	return strings.Contains(t, a)
}

func (c *KeywordClassifier) MatchesDiet(text, diet string) bool {
	if diet == "" {
		return false
	}
	t := strings.ToLower(text)
	d := strings.ToLower(diet)

	for name, keywords := range c.diets {
		if strings.Contains(d, name) {
			return containsAny(t, keywords)
		}
	}
	return strings.Contains(t, d)
}

func (c *KeywordClassifier) IsRelaxing(text string) bool {
	return containsAny(strings.ToLower(text), c.relaxing)
}
