package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ConversionStrategy selects how orders are drawn from clicks.
type ConversionStrategy string

const (
	// ConversionBernoulli runs one trial per click.
	ConversionBernoulli ConversionStrategy = "bernoulli"
	// ConversionBinomial draws the order count from a single binomial
	// sample. Same distribution, constant cost in the number of clicks.
	ConversionBinomial ConversionStrategy = "binomial"
)

// ParseConversionStrategy accepts either strategy name in any case. An
// empty name selects ConversionBernoulli.
func ParseConversionStrategy(name string) (ConversionStrategy, error) {
	switch s := ConversionStrategy(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return ConversionBernoulli, nil
	case ConversionBernoulli, ConversionBinomial:
		return s, nil
	default:
		return "", fmt.Errorf("unknown conversion strategy %q; valid: bernoulli, binomial", name)
	}
}

// Config tunes the simulator. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	// Days is the number of consecutive days one run covers.
	Days int

	// FloorBid is the last-resort bid for product targets with neither an
	// own bid nor an ad group default. Zero disables the fallback.
	FloorBid decimal.Decimal

	// Base daily impression volume per entity type before multipliers.
	KeywordBaseImpressions  float64
	ASINBaseImpressions     float64
	CategoryBaseImpressions float64

	// Baseline click-through rates (fractions).
	KeywordBaseCTR       float64
	ProductTargetBaseCTR float64

	Conversion ConversionStrategy
}

// DefaultConfig returns the tuning used by the classroom deployment.
func DefaultConfig() Config {
	return Config{
		Days:                    7,
		FloorBid:                decimal.RequireFromString("0.50"),
		KeywordBaseImpressions:  700.0 / 7.0,
		ASINBaseImpressions:     400.0 / 7.0,
		CategoryBaseImpressions: 1200.0 / 7.0,
		KeywordBaseCTR:          0.006,
		ProductTargetBaseCTR:    0.004,
		Conversion:              ConversionBernoulli,
	}
}
