package places

import (
	"fmt"
	"strings"

	"github.com/youra031220/Seoulmatebeta/internal/planner/geo"
	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// Skew thresholds for a candidate pool.
const (
	categoryConcentrationRatio  = 0.4
	proximityRadiusKm           = 3.0
	proximityConcentrationRatio = 0.6
	themeMatchFloor             = 0.3
)

var biasThemeKeywords = map[string][]string{
	"shopping":    {"쇼핑", "백화점", "몰", "아울렛", "market", "시장"},
	"culture":     {"박물관", "미술관", "전시", "뮤지엄", "역사", "문화", "museum", "gallery", "history"},
	"nature":      {"공원", "자연", "산책", "한강", "숲", "호수", "park", "nature", "forest", "lake"},
	"cafe_tour":   {"카페", "브런치", "디저트", "coffee", "cafe"},
	"night_photo": {"야경", "전망대", "루프탑", "야간", "night view", "rooftop", "observatory"},
	"healing":     {"온천", "스파", "힐링", "마사지", "휴식", "spa", "healing"},
	"kpop":        {"k팝", "아이돌", "엔터테인먼트", "굿즈", "팬", "k-pop", "idol"},
	"sns_hot":     {"핫플", "인스타", "포토스팟", "포토 스팟", "sns", "instagram", "photo spot"},
}

// coarseCategory extracts the last segment of a provider category string
// like "여행,명소>궁궐".
func coarseCategory(p types.PlaceDetailedInfo) string {
	raw := p.Category
	if raw == "" {
		raw = string(p.CategoryType)
	}
	if raw == "" {
		return "기타"
	}
	parts := strings.Split(raw, ">")
	last := strings.TrimSpace(parts[len(parts)-1])
	if last == "" {
		return "기타"
	}
	return last
}

// DetectSearchBias inspects a candidate pool for three kinds of skew: one
// category dominating the pool, geographic clustering around the mandatory
// stops, and weak coverage of the traveler's themes. It never fails a plan;
// the report is advisory.
func DetectSearchBias(pois []types.PlaceDetailedInfo, mandatory []types.MandatoryStop, themes []string) types.BiasReport {
	var report types.BiasReport

	if len(pois) == 0 {
		report.Biased = true
		report.Issues = append(report.Issues, "the search returned almost no places")
		report.Suggestions = append(report.Suggestions, "try again with a different area or theme")
		return report
	}

	total := len(pois)

	// 1) Category concentration.
	categoryCount := map[string]int{}
	for _, p := range pois {
		categoryCount[coarseCategory(p)]++
	}
	for cat, count := range categoryCount {
		ratio := float64(count) / float64(total)
		if ratio >= categoryConcentrationRatio {
			report.Issues = append(report.Issues,
				fmt.Sprintf("the %q category makes up %.0f%% of the recommendations", cat, ratio*100))
		}
	}

	// 2) Geographic clustering around mandatory stops.
	var anchors []types.GeoPoint
	for _, m := range mandatory {
		if pt := m.Point(); !pt.IsZero() {
			anchors = append(anchors, pt)
		}
	}
	if len(anchors) > 0 {
		near := 0
		for _, p := range pois {
			pt := p.Point()
			if pt.IsZero() {
				continue
			}
			for _, a := range anchors {
				if geo.HaversineKm(a, pt) <= proximityRadiusKm {
					near++
					break
				}
			}
		}
		ratio := float64(near) / float64(total)
		if ratio >= proximityConcentrationRatio {
			report.Issues = append(report.Issues,
				fmt.Sprintf("%.0f%% of the recommendations cluster within %.0f km of the required stops", ratio*100, proximityRadiusKm))
		}
	}

	// 3) Theme coverage.
	if len(themes) > 0 {
		matched := 0
		for _, p := range pois {
			text := strings.ToLower(p.Name + " " + p.Category + " " + p.Description)
			for _, th := range themes {
				if matchesThemeKeywords(text, th) {
					matched++
					break
				}
			}
		}
		ratio := float64(matched) / float64(total)
		if ratio < themeMatchFloor {
			report.Issues = append(report.Issues,
				fmt.Sprintf("only %.0f%% of the recommendations match the selected themes", ratio*100))
		}
	}

	if len(report.Issues) > 0 {
		report.Biased = true
		report.Suggestions = append(report.Suggestions,
			"mention a different area or theme and the search can widen out",
			"more specific likes help too, such as quiet places, indoor spots, or nature")
	}

	return report
}

func matchesThemeKeywords(text, theme string) bool {
	for _, kw := range biasThemeKeywords[theme] {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
