package engine

import (
	"github.com/shopspring/decimal"

	"ppcsim/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// Derive computes CPC, CTR, CVR, ACOS and ROAS from raw counters. Every
// ratio with a zero denominator is 0, never Inf or NaN.
func Derive(impressions, clicks int64, spend decimal.Decimal, orders int64, sales decimal.Decimal) domain.Metrics {
	m := domain.Metrics{CPC: decimal.Zero}
	if clicks > 0 {
		m.CPC = spend.Div(decimal.NewFromInt(clicks)).Round(2)
		m.CVR = float64(orders) / float64(clicks) * 100
	}
	if impressions > 0 {
		m.CTR = float64(clicks) / float64(impressions) * 100
	}
	if sales.IsPositive() {
		m.ACOS, _ = spend.Div(sales).Mul(hundred).Float64()
	}
	if spend.IsPositive() {
		m.ROAS, _ = sales.Div(spend).Float64()
	}
	return m
}
