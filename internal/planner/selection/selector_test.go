package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

func place(name string, ct types.CategoryType, text string) types.PlaceDetailedInfo {
	return types.PlaceDetailedInfo{Name: name, CategoryType: ct, Description: text}
}

func pool() []types.PlaceDetailedInfo {
	return []types.PlaceDetailedInfo{
		place("Halal Kitchen", types.CategoryRestaurant, "halal certified restaurant"),
		place("Korean BBQ", types.CategoryRestaurant, "charcoal bbq"),
		place("Noodle House", types.CategoryRestaurant, "hand-pulled noodles"),
		place("Gluten Free Bakery Cafe", types.CategoryCafe, "gluten free dessert cafe"),
		place("Hongdae Coffee", types.CategoryCafe, "espresso bar"),
		place("Gyeongbok Palace", types.CategoryPOI, "historic palace"),
		place("National Museum", types.CategoryPOI, "museum exhibition history"),
		place("Han River Park", types.CategoryPOI, "park stroll river"),
		place("Namsan Observatory", types.CategoryPOI, "night view observatory"),
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "gyeongbokpalace", NormalizeName("<b>Gyeongbok</b> Palace"))
	assert.Equal(t, "cafeole", NormalizeName("Café Olé"))
	assert.Equal(t, "경복궁", NormalizeName(" 경복궁 "))
	assert.Equal(t, "", NormalizeName("  "))
}

func TestSelectPOIs_NeverExceedsCount(t *testing.T) {
	for _, count := range []int{0, 1, 3, 5, 20} {
		got := SelectPOIs(count, types.MealFlags{Lunch: true, Dinner: true, Cafe: true}, nil, nil, pool(), nil)
		assert.LessOrEqual(t, len(got), count, "count=%d", count)
	}
}

func TestSelectPOIs_EmptyPool(t *testing.T) {
	assert.Empty(t, SelectPOIs(5, types.MealFlags{Lunch: true}, nil, nil, nil, nil))
}

func TestSelectPOIs_MandatoryNameCollisionRemoved(t *testing.T) {
	mandatory := []types.MandatoryStop{{Name: "Gyeongbok Palace", Latitude: 37.5796, Longitude: 126.977}}
	got := SelectPOIs(9, types.MealFlags{Lunch: true, Cafe: true}, nil, nil, pool(), mandatory)

	for _, p := range got {
		assert.NotEqual(t, "Gyeongbok Palace", p.Name)
	}
}

func TestSelectPOIs_MandatoryCollisionIsMarkupAndCaseInsensitive(t *testing.T) {
	candidates := []types.PlaceDetailedInfo{
		place("<b>Gyeongbok</b> palace", types.CategoryPOI, ""),
		place("Han River Park", types.CategoryPOI, "park"),
	}
	mandatory := []types.MandatoryStop{{Name: "Gyeongbok Palace"}}

	got := SelectPOIs(2, types.MealFlags{}, nil, nil, candidates, mandatory)
	require.Len(t, got, 1)
	assert.Equal(t, "Han River Park", got[0].Name)
}

func TestSelectPOIs_CategoryDiversityCap(t *testing.T) {
	got := SelectPOIs(9, types.MealFlags{Breakfast: true, Lunch: true, Dinner: true, Cafe: true}, nil, nil, pool(), nil)

	counts := map[types.CategoryType]int{}
	for _, p := range got {
		counts[p.CategoryType]++
	}
	// Three meals requested, but the diversity cap holds restaurants at 2.
	assert.LessOrEqual(t, counts[types.CategoryRestaurant], 2)
	assert.LessOrEqual(t, counts[types.CategoryCafe], 2)
	assert.LessOrEqual(t, counts[types.CategoryPOI], 2)
}

func TestSelectPOIs_DietReservesMatchingRestaurant(t *testing.T) {
	got := SelectPOIs(4, types.MealFlags{Lunch: true, Dinner: true}, []string{"halal"}, nil, pool(), nil)

	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Halal Kitchen")
}

func TestSelectPOIs_GlutenFreeConstrainedToCafes(t *testing.T) {
	got := SelectPOIs(4, types.MealFlags{Lunch: true, Cafe: true}, []string{"gluten_free"}, nil, pool(), nil)

	var cafeNames []string
	for _, p := range got {
		if p.CategoryType == types.CategoryCafe {
			cafeNames = append(cafeNames, p.Name)
		}
	}
	require.Len(t, cafeNames, 1)
	assert.Equal(t, "Gluten Free Bakery Cafe", cafeNames[0])
}

func TestSelectPOIs_ThemesPickMatchingSightseeingFirst(t *testing.T) {
	got := SelectPOIs(3, types.MealFlags{Lunch: true}, nil, []string{"night_photo", "culture"}, pool(), nil)

	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Namsan Observatory")
	assert.Contains(t, names, "National Museum")
}

func TestSelectPOIs_NoMealsMeansNoFoodSlots(t *testing.T) {
	got := SelectPOIs(2, types.MealFlags{}, nil, nil, pool(), nil)

	for _, p := range got {
		assert.Equal(t, types.CategoryPOI, p.CategoryType)
	}
}

func TestSelectPOIs_ClassifiesUntaggedCandidates(t *testing.T) {
	candidates := []types.PlaceDetailedInfo{
		{Name: "Mystery Eats", Category: "한식 식당"},
		{Name: "Mystery Beans", Category: "coffee roastery cafe"},
		{Name: "Mystery Hall", Category: "exhibition hall"},
	}
	got := SelectPOIs(3, types.MealFlags{Lunch: true, Cafe: true}, nil, nil, candidates, nil)

	require.Len(t, got, 3)
	// Food selections come first: restaurant, then cafe, then the rest.
	assert.Equal(t, "Mystery Eats", got[0].Name)
	assert.Equal(t, "Mystery Beans", got[1].Name)
	assert.Equal(t, "Mystery Hall", got[2].Name)
}
