package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordClassifier_PriceLevel(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		text string
		want int
	}{
		{"Fine Dining at a luxury hotel", 3},
		{"오마카세 코스요리 전문점", 3},
		{"Cozy brunch cafe with dessert", 2},
		{"Street food stall at the market", 1},
		{"분식 노포", 1},
		{"Some place with no price signals", 2},
		{"", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.PriceLevel(tt.text), "text=%q", tt.text)
	}
}

func TestKeywordClassifier_PriceLevel_LuxuryWinsOverMidTier(t *testing.T) {
	c := NewKeywordClassifier()
	// "hotel buffet" carries both a luxury and a mid-tier keyword; the
	// ordered rule list resolves it as luxury.
	assert.Equal(t, 3, c.PriceLevel("hotel buffet"))
}

func TestKeywordClassifier_MatchesTag(t *testing.T) {
	c := NewKeywordClassifier()

	assert.True(t, c.MatchesTag("Namsan Tower night view deck", "night view"))
	assert.True(t, c.MatchesTag("NIGHT VIEW SPOT", "night view"))
	assert.False(t, c.MatchesTag("Quiet morning market", "night view"))
	assert.False(t, c.MatchesTag("anything", ""))
}

func TestKeywordClassifier_MatchesAvoid_SynonymGroups(t *testing.T) {
	c := NewKeywordClassifier()

	// "expensive" phrasing matches luxury-signaling text without a literal hit.
	assert.True(t, c.MatchesAvoid("Premium omakase counter", "expensive restaurants"))
	assert.True(t, c.MatchesAvoid("파인 다이닝 레스토랑", "비싼 레스토랑"))

	// "crowded" phrasing matches hotspot-signaling text.
	assert.True(t, c.MatchesAvoid("Famous hotspot with a long queue", "crowded places"))

	// Plain substring fallback.
	assert.True(t, c.MatchesAvoid("karaoke bar", "karaoke"))
	assert.False(t, c.MatchesAvoid("quiet tea house", "crowded places"))
}

func TestKeywordClassifier_MatchesDiet(t *testing.T) {
	c := NewKeywordClassifier()

	assert.True(t, c.MatchesDiet("Plant-based vegan restaurant", "vegan"))
	assert.True(t, c.MatchesDiet("비건 베이커리", "vegan"))
	assert.True(t, c.MatchesDiet("채식 전문 식당", "vegetarian"))
	assert.True(t, c.MatchesDiet("Halal certified kitchen", "halal_friendly"))
	assert.False(t, c.MatchesDiet("Korean BBQ house", "vegan"))

	// Unknown diet labels fall back to substring matching.
	assert.True(t, c.MatchesDiet("kosher deli", "kosher"))
}

func TestKeywordClassifier_IsRelaxing(t *testing.T) {
	c := NewKeywordClassifier()

	assert.True(t, c.IsRelaxing("Riverside park with walking trail"))
	assert.True(t, c.IsRelaxing("한적한 산책로"))
	assert.False(t, c.IsRelaxing("Nightclub district"))
}
