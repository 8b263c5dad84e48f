package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ppcsim/internal/core/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBenchmarkBid(t *testing.T) {
	cases := map[domain.CompetitiveIntensity]string{
		domain.IntensityHigh:   "1.50",
		domain.IntensityLow:    "0.50",
		domain.IntensityMedium: "1.00",
		"":                     "1.00",
		"extreme":              "1.00",
	}
	for in, want := range cases {
		assert.True(t, BenchmarkBid(in).Equal(d(want)), "intensity %q", in)
	}
}

func TestBidStrength(t *testing.T) {
	assert.InDelta(t, 1.0, BidStrength(d("1.00"), d("1.00")), 1e-9)
	assert.InDelta(t, 1.6245, BidStrength(d("2.00"), d("1.00")), 1e-4)
	assert.InDelta(t, 0.05, BidStrength(d("0"), d("1.00")), 1e-9)
	assert.InDelta(t, 0.05, BidStrength(d("0.01"), d("1.50")), 1e-9, "floored")

	// no benchmark to compare against
	assert.InDelta(t, 1.0, BidStrength(d("0"), d("0")), 1e-9)
	assert.InDelta(t, 0.05, BidStrength(d("1.00"), d("0")), 1e-9)
}

func TestBidStrength_Monotonic(t *testing.T) {
	prev := 0.0
	for _, b := range []string{"0.10", "0.50", "1.00", "2.00", "5.00", "10.00"} {
		s := BidStrength(d(b), d("1.00"))
		assert.GreaterOrEqual(t, s, prev)
		prev = s
	}
}

func TestProductAppeal(t *testing.T) {
	strong := domain.Product{StarRating: 4.8, ReviewCount: 2000, BaselineCVR: 0.08}
	assert.InDelta(t, 1.4, ProductAppeal(strong), 1e-9)

	weak := domain.Product{StarRating: 3.0, ReviewCount: 5, BaselineCVR: 0.005}
	assert.InDelta(t, 0.75, ProductAppeal(weak), 1e-9)

	neutral := domain.Product{StarRating: 3.8, ReviewCount: 50, BaselineCVR: 0.03}
	assert.InDelta(t, 1.0, ProductAppeal(neutral), 1e-9)

	unrated := domain.Product{ReviewCount: 500, BaselineCVR: 0.03}
	assert.InDelta(t, 1.05, ProductAppeal(unrated), 1e-9)
}

func TestProductQualityForConversion(t *testing.T) {
	assert.InDelta(t, 1.5, ProductQualityForConversion(domain.Product{StarRating: 4.8, ReviewCount: 2000}), 1e-9)
	assert.InDelta(t, 1.24, ProductQualityForConversion(domain.Product{StarRating: 4.3, ReviewCount: 300}), 1e-9)
	assert.InDelta(t, 0.3, ProductQualityForConversion(domain.Product{StarRating: 2.5, ReviewCount: 5}), 1e-9)
	assert.InDelta(t, 0.65, ProductQualityForConversion(domain.Product{StarRating: 3.5, ReviewCount: 30}), 1e-9)

	for _, p := range []domain.Product{
		{StarRating: 1, ReviewCount: 0},
		{StarRating: 5, ReviewCount: 100000},
	} {
		q := ProductQualityForConversion(p)
		assert.GreaterOrEqual(t, q, minConversionQuality)
		assert.LessOrEqual(t, q, maxConversionQuality)
	}
}

func TestMatchTypeEfficiency(t *testing.T) {
	assert.Equal(t, 1.0, MatchTypeEfficiency(domain.MatchExact))
	assert.Equal(t, 0.85, MatchTypeEfficiency(domain.MatchPhrase))
	assert.Equal(t, 0.65, MatchTypeEfficiency(domain.MatchBroad))
	assert.Equal(t, 0.7, MatchTypeEfficiency(""))
}

func TestAdRankFactor_Bounded(t *testing.T) {
	assert.Equal(t, 1.0, AdRankFactor(1.0, 0.2))
	assert.Equal(t, maxAdRank, AdRankFactor(50, 0.2))
	assert.Equal(t, minAdRank, AdRankFactor(0.05, 0.5))
	assert.InDelta(t, 1.1, AdRankFactor(1.5, 0.2), 1e-9)
}

func chair() domain.Product {
	return domain.Product{
		ID:   1,
		ASIN: "B0BQZ0Y4R5",
		Name: "Ergonomic Office Chair",
		Keywords: domain.KeywordProfile{
			Primary:  []string{"[ergonomic office chair]", "[adjustable desk chair]"},
			General:  []string{"office chair", "gaming chair"},
			Negative: []string{"[cheap office chair]", "\"office chair parts\""},
		},
	}
}

func TestTargetRelevanceForConversion(t *testing.T) {
	p := chair()
	assert.Equal(t, 0.1, TargetRelevanceForConversion("cheap office chair", p, IsNegativeLike("cheap office chair", p)))
	assert.Equal(t, 1.25, TargetRelevanceForConversion("ergonomic office chair", p, false))
	assert.Equal(t, 1.25, TargetRelevanceForConversion("Adjustable Desk Chair", p, false))
	assert.Equal(t, 1.0, TargetRelevanceForConversion("gaming chair", p, false))
	assert.Equal(t, 0.95, TargetRelevanceForConversion("ergonomic", p, false))
	assert.Equal(t, 0.8, TargetRelevanceForConversion("standing desk", p, false))
	assert.Equal(t, 0.8, TargetRelevanceForConversion("anything", domain.Product{Name: "x"}, false))
}

func TestTargetRelevanceForCTR(t *testing.T) {
	p := chair()
	assert.Equal(t, 1.2, TargetRelevanceForCTR("ergonomic office chair", p))
	assert.Equal(t, 1.0, TargetRelevanceForCTR("office chair", p))
	assert.Equal(t, 0.9, TargetRelevanceForCTR("office", p))
	assert.Equal(t, 0.7, TargetRelevanceForCTR("lamp", p))
	assert.Equal(t, 0.8, TargetRelevanceForCTR("lamp", domain.Product{}))
}

func TestIsNegativeLike(t *testing.T) {
	p := chair()
	assert.True(t, IsNegativeLike("buy cheap office chair now", p))
	assert.True(t, IsNegativeLike("Office Chair Parts", p))
	assert.False(t, IsNegativeLike("ergonomic office chair", p))
}
