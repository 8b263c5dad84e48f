package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ppcsim/internal/core/domain"
)

func TestDynamicCTR_Clamped(t *testing.T) {
	assert.InDelta(t, 0.006, DynamicCTR(0.006, 1, 1, 1), 1e-12)
	assert.Equal(t, maxCTR, DynamicCTR(0.5, 1.5, 1.2, 1.2))
	assert.Equal(t, minCTR, DynamicCTR(0.00001, 0.5, 0.1, 0.8))
}

func TestPotentialDemand_ClicksFollowCTR(t *testing.T) {
	src := NewSource(17)
	p := chair()
	kw := Target{Kind: domain.EntityKeyword, Label: "ergonomic office chair", MatchType: domain.MatchExact, Bid: d("1.00")}
	for i := 0; i < 200; i++ {
		dm := PotentialDemand(src, DefaultConfig(), kw, p, d("1.00"))
		assert.GreaterOrEqual(t, dm.Impressions, int64(0))
		assert.Equal(t, int64(float64(dm.Impressions)*dm.CTR), dm.Clicks)
		assert.GreaterOrEqual(t, dm.CTR, minCTR)
		assert.LessOrEqual(t, dm.CTR, maxCTR)
	}
}

func TestPotentialDemand_KeywordVolumeRange(t *testing.T) {
	// neutral product, exact match, bid at benchmark: only the noise moves volume
	p := domain.Product{StarRating: 3.8, ReviewCount: 50, BaselineCVR: 0.03}
	kw := Target{Kind: domain.EntityKeyword, Label: "x", MatchType: domain.MatchExact, Bid: d("1.00")}
	src := NewSource(2)
	for i := 0; i < 200; i++ {
		dm := PotentialDemand(src, DefaultConfig(), kw, p, d("1.00"))
		assert.GreaterOrEqual(t, dm.Impressions, int64(80))
		assert.LessOrEqual(t, dm.Impressions, int64(120))
	}
}

func TestPotentialDemand_HigherBidMoreImpressions(t *testing.T) {
	p := chair()
	low := Target{Kind: domain.EntityKeyword, Label: "office chair", MatchType: domain.MatchBroad, Bid: d("0.30")}
	high := low
	high.Bid = d("3.00")

	a, b := NewSource(4), NewSource(4)
	var sumLow, sumHigh int64
	for i := 0; i < 300; i++ {
		sumLow += PotentialDemand(a, DefaultConfig(), low, p, d("1.00")).Impressions
		sumHigh += PotentialDemand(b, DefaultConfig(), high, p, d("1.00")).Impressions
	}
	assert.Greater(t, sumHigh, sumLow*3)
}

func TestPotentialDemand_CategoryOutreachesASIN(t *testing.T) {
	p := chair()
	asin := Target{Kind: domain.EntityProductTarget, TargetingType: domain.TargetASINSameAs, Bid: d("1.00")}
	cat := Target{Kind: domain.EntityProductTarget, TargetingType: domain.TargetCategorySameAs, Bid: d("1.00")}

	a, b := NewSource(6), NewSource(6)
	var sumASIN, sumCat int64
	for i := 0; i < 300; i++ {
		sumASIN += PotentialDemand(a, DefaultConfig(), asin, p, d("1.00")).Impressions
		sumCat += PotentialDemand(b, DefaultConfig(), cat, p, d("1.00")).Impressions
	}
	assert.Greater(t, sumCat, sumASIN)
}
