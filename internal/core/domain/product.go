package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompetitiveIntensity describes how crowded a product's category is.
type CompetitiveIntensity string

const (
	IntensityLow    CompetitiveIntensity = "low"
	IntensityMedium CompetitiveIntensity = "medium"
	IntensityHigh   CompetitiveIntensity = "high"
)

// KeywordProfile holds the known search vocabulary for a product. Primary
// terms are high-intent, General terms are broad category searches and
// Negative terms are searches the product should not convert on.
// Entries may carry match-type decoration such as "[term]" or "\"term\"".
type KeywordProfile struct {
	Primary  []string `json:"primary_keywords"`
	General  []string `json:"general_search_terms"`
	Negative []string `json:"negative_keywords"`
}

// Empty reports whether the profile has no terms at all.
func (k KeywordProfile) Empty() bool {
	return len(k.Primary) == 0 && len(k.General) == 0 && len(k.Negative) == 0
}

// Product is a catalog item that campaigns advertise.
// Prices are decimal currency amounts. StarRating of zero means the product
// has not been rated yet.
type Product struct {
	ID                   int64
	ASIN                 string
	Name                 string
	Category             string
	AvgSellingPrice      decimal.Decimal
	CostOfGoodsSold      decimal.Decimal
	BaselineCVR          float64 // fraction, e.g. 0.05 for 5%
	ReviewCount          int
	StarRating           float64
	CompetitiveIntensity CompetitiveIntensity
	Seasonality          string // evergreen, seasonal_toy, seasonal_clothing, other
	Keywords             KeywordProfile
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// BreakEvenACOS returns the ACOS, in percent, at which ad spend consumes the
// whole margin of a sale. It is zero when the selling price is not positive.
func (p Product) BreakEvenACOS() float64 {
	if !p.AvgSellingPrice.IsPositive() {
		return 0
	}
	v, _ := p.CostOfGoodsSold.Div(p.AvgSellingPrice).Mul(decimal.NewFromInt(100)).Float64()
	return v
}
