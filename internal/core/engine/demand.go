package engine

import (
	"math"

	"github.com/shopspring/decimal"

	"ppcsim/internal/core/domain"
)

const (
	minCTR = 0.0001
	maxCTR = 0.15

	keywordAdRankSlope       = 0.2
	productTargetAdRankSlope = 0.15
)

// Demand is the budget-unconstrained traffic of one entity on one day.
type Demand struct {
	Impressions int64
	CTR         float64
	Clicks      int64
}

// DynamicCTR multiplies the factors and clamps to [0.01%, 15%].
func DynamicCTR(baseCTR, appeal, specificity, adRank float64) float64 {
	return clamp(baseCTR*appeal*specificity*adRank, minCTR, maxCTR)
}

// PotentialDemand draws the impressions an entity could win for a product
// and the clicks those impressions would produce at the modeled CTR.
func PotentialDemand(src Source, cfg Config, t Target, p domain.Product, benchmark decimal.Decimal) Demand {
	strength := BidStrength(t.Bid, benchmark)
	appeal := ProductAppeal(p)

	var base, efficiency, noise, baseCTR, specificity, adRank float64
	switch t.Kind {
	case domain.EntityKeyword:
		base = cfg.KeywordBaseImpressions
		efficiency = MatchTypeEfficiency(t.MatchType)
		noise = uniform(src, 0.8, 1.2)
		baseCTR = cfg.KeywordBaseCTR
		specificity = TargetRelevanceForCTR(t.Label, p) * efficiency
		adRank = AdRankFactor(strength, keywordAdRankSlope)
	default:
		base = cfg.CategoryBaseImpressions
		if t.TargetingType == domain.TargetASINSameAs {
			base = cfg.ASINBaseImpressions
		}
		efficiency = TargetingTypeEfficiency(t.TargetingType)
		noise = uniform(src, 0.7, 1.3)
		baseCTR = cfg.ProductTargetBaseCTR
		specificity = efficiency
		adRank = AdRankFactor(strength, productTargetAdRankSlope)
	}

	impressions := int64(math.Max(0, math.Floor(base*strength*appeal*efficiency*noise)))
	ctr := DynamicCTR(baseCTR, appeal, specificity, adRank)
	return Demand{
		Impressions: impressions,
		CTR:         ctr,
		Clicks:      int64(math.Floor(float64(impressions) * ctr)),
	}
}
