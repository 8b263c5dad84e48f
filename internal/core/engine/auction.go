package engine

import (
	"github.com/shopspring/decimal"

	"ppcsim/internal/core/domain"
)

// MinCPC is the lowest price a click can clear at.
var MinCPC = decimal.RequireFromString("0.02")

// competitorFactor scales the benchmark into the synthesized runner-up bid.
func competitorFactor(intensity domain.CompetitiveIntensity) decimal.Decimal {
	switch intensity {
	case domain.IntensityHigh:
		return decimal.RequireFromString("1.1")
	case domain.IntensityLow:
		return decimal.RequireFromString("0.8")
	default:
		return decimal.NewFromInt(1)
	}
}

// SimulateCPC prices one click with a two-party second-price auction: a
// competitor bid is drawn around the benchmark and the bidder pays that bid
// plus a small increment, never more than its own bid. The result is
// rounded down to cents so a sub-cent bid is never exceeded, then floored
// at MinCPC.
func SimulateCPC(src Source, bid, benchmark decimal.Decimal, intensity domain.CompetitiveIntensity) decimal.Decimal {
	competitor := benchmark.
		Mul(competitorFactor(intensity)).
		Mul(decimal.NewFromFloat(uniform(src, 0.7, 1.1)))
	price := decimal.Min(bid, competitor.Add(decimal.NewFromFloat(uniform(src, 0.01, 0.05))))
	return decimal.Max(MinCPC, price.RoundFloor(2))
}
