package places

import (
	"strings"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

// Provider category strings mix Korean and English, so both alphabets are
// matched. Cafe wins over restaurant when both appear ("dessert cafe").
var (
	cafeMarkers = []string{
		"카페", "커피", "디저트", "베이커리",
		"cafe", "coffee", "dessert", "bakery",
	}
	restaurantMarkers = []string{
		"음식점", "식당", "한식", "양식", "중식", "일식", "뷔페", "레스토랑",
		"고기", "고깃집", "치킨", "피자", "분식", "패스트푸드", "브런치", "포차", "포장마차",
		"restaurant", "buffet", "chicken", "pizza", "brunch", "bbq", "grill", "diner",
	}
)

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// ClassifyPlace buckets a candidate into cafe, restaurant, or general POI
// from its category, description, and name text.
func ClassifyPlace(p types.PlaceDetailedInfo) types.CategoryType {
	text := strings.ToLower(p.Category + " " + p.Description + " " + p.Name)

	if containsAny(text, cafeMarkers) {
		return types.CategoryCafe
	}
	if containsAny(text, restaurantMarkers) {
		return types.CategoryRestaurant
	}
	return types.CategoryPOI
}
