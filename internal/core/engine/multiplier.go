package engine

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"ppcsim/internal/core/domain"
)

// Multipliers are dimensionless and clamped so that chained products of
// several of them stay within a plausible band.
const (
	minBidStrength = 0.05
	bidExponent    = 0.7

	minAppeal = 0.5
	maxAppeal = 1.5

	minConversionQuality = 0.2
	maxConversionQuality = 1.8

	minAdRank = 0.8
	maxAdRank = 1.2
)

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// BidStrength compares a bid with the benchmark: (bid/benchmark)^0.7,
// floored at 0.05. With a non-positive benchmark there is nothing to compare
// against, so it returns 1.0 for a non-positive bid and 0.05 otherwise.
func BidStrength(bid, benchmark decimal.Decimal) float64 {
	if !benchmark.IsPositive() {
		if !bid.IsPositive() {
			return 1.0
		}
		return minBidStrength
	}
	ratio, _ := bid.Div(benchmark).Float64()
	if ratio <= 0 {
		return minBidStrength
	}
	return math.Max(minBidStrength, math.Pow(ratio, bidExponent))
}

// ProductAppeal scores how attractive a listing is to shoppers scanning
// results. It drives impression volume and CTR. Range [0.5, 1.5].
func ProductAppeal(p domain.Product) float64 {
	m := 1.0
	if p.StarRating > 0 {
		switch {
		case p.StarRating >= 4.5:
			m += 0.15
		case p.StarRating >= 4.0:
			m += 0.05
		case p.StarRating < 3.5:
			m -= 0.10
		}
	}
	switch {
	case p.ReviewCount > 1000:
		m += 0.15
	case p.ReviewCount > 100:
		m += 0.05
	case p.ReviewCount < 20:
		m -= 0.10
	}
	switch {
	case p.BaselineCVR > 0.05:
		m += 0.10
	case p.BaselineCVR < 0.01:
		m -= 0.05
	}
	return clamp(m, minAppeal, maxAppeal)
}

// ProductQualityForConversion uses the same listing signals as
// ProductAppeal with steeper weights. Range [0.2, 1.8].
func ProductQualityForConversion(p domain.Product) float64 {
	m := 1.0
	if p.StarRating > 0 {
		switch {
		case p.StarRating >= 4.7:
			m += 0.25
		case p.StarRating >= 4.2:
			m += 0.12
		case p.StarRating < 3.0:
			m -= 0.40
		case p.StarRating < 3.8:
			m -= 0.20
		}
	}
	switch {
	case p.ReviewCount > 1500:
		m += 0.25
	case p.ReviewCount > 200:
		m += 0.12
	case p.ReviewCount < 10:
		m -= 0.30
	case p.ReviewCount < 50:
		m -= 0.15
	}
	return clamp(m, minConversionQuality, maxConversionQuality)
}

// MatchTypeEfficiency: exact 1.0, phrase 0.85, broad 0.65, anything else 0.7.
func MatchTypeEfficiency(mt domain.MatchType) float64 {
	switch mt {
	case domain.MatchExact:
		return 1.0
	case domain.MatchPhrase:
		return 0.85
	case domain.MatchBroad:
		return 0.65
	default:
		return 0.7
	}
}

// TargetingTypeEfficiency is the product-target analogue of
// MatchTypeEfficiency. ASIN targets are narrower than category targets.
func TargetingTypeEfficiency(tt domain.TargetingType) float64 {
	switch tt {
	case domain.TargetASINSameAs:
		return 0.9
	case domain.TargetCategorySameAs:
		return 0.7
	default:
		return 0.7
	}
}

// AdRankFactor maps bid strength to a placement-quality factor that moves
// CTR by at most 20% in either direction.
func AdRankFactor(bidStrength, slope float64) float64 {
	return clamp(1.0+(bidStrength-1.0)*slope, minAdRank, maxAdRank)
}

// IsNegativeLike reports whether the label contains any of the product's
// known negative terms.
func IsNegativeLike(label string, p domain.Product) bool {
	l := strings.ToLower(label)
	for _, neg := range p.Keywords.Negative {
		n := normalizeTerm(neg)
		if n != "" && strings.Contains(l, n) {
			return true
		}
	}
	return false
}

// TargetRelevanceForCTR estimates how well a keyword describes the product
// from a shopper's point of view.
func TargetRelevanceForCTR(label string, p domain.Product) float64 {
	if p.Keywords.Empty() {
		return 0.8
	}
	switch termClass(label, p) {
	case termPrimary:
		return 1.2
	case termGeneral:
		return 1.0
	case termInName:
		return 0.9
	default:
		return 0.7
	}
}

// TargetRelevanceForConversion estimates how likely a click from this
// keyword ends in a purchase of the product.
func TargetRelevanceForConversion(label string, p domain.Product, negativeLike bool) float64 {
	if negativeLike {
		return 0.1
	}
	if p.Keywords.Empty() {
		return 0.8
	}
	switch termClass(label, p) {
	case termPrimary:
		return 1.25
	case termGeneral:
		return 1.0
	case termInName:
		return 0.95
	default:
		return 0.8
	}
}

// ProductTargetRelevanceForConversion: ASIN targets convert better than
// category targets.
func ProductTargetRelevanceForConversion(tt domain.TargetingType) float64 {
	if tt == domain.TargetASINSameAs {
		return 1.1
	}
	return 0.9
}

type termKind int

const (
	termUnknown termKind = iota
	termPrimary
	termGeneral
	termInName
)

func termClass(label string, p domain.Product) termKind {
	l := normalizeTerm(label)
	if l == "" {
		return termUnknown
	}
	for _, t := range p.Keywords.Primary {
		if normalizeTerm(t) == l {
			return termPrimary
		}
	}
	for _, t := range p.Keywords.General {
		if normalizeTerm(t) == l {
			return termGeneral
		}
	}
	if strings.Contains(strings.ToLower(p.Name), l) {
		return termInName
	}
	return termUnknown
}

// normalizeTerm strips match-type decoration ("[...]", "\"...\"") and case.
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "[]\"")))
}
