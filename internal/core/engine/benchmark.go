package engine

import (
	"github.com/shopspring/decimal"

	"ppcsim/internal/core/domain"
)

var (
	benchmarkHigh    = decimal.RequireFromString("1.50")
	benchmarkLow     = decimal.RequireFromString("0.50")
	benchmarkDefault = decimal.RequireFromString("1.00")
)

// BenchmarkBid returns the category average bid for a competitive-intensity
// tier. Unknown or empty tiers are treated as medium.
func BenchmarkBid(intensity domain.CompetitiveIntensity) decimal.Decimal {
	switch intensity {
	case domain.IntensityHigh:
		return benchmarkHigh
	case domain.IntensityLow:
		return benchmarkLow
	default:
		return benchmarkDefault
	}
}
