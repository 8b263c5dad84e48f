package engine

import (
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	minCVR = 0.00001
	maxCVR = 0.60
)

// DynamicCVR multiplies the product baseline by the quality and relevance
// multipliers and clamps to [0.001%, 60%].
func DynamicCVR(baseCVR, quality, relevance float64) float64 {
	return clamp(baseCVR*quality*relevance, minCVR, maxCVR)
}

// SimulateConversions returns how many of clicks turned into orders when
// each converts independently with probability cvr. Small samples keep their
// natural variance: five clicks at 10% often produce no order at all.
func SimulateConversions(src Source, strategy ConversionStrategy, clicks int64, cvr float64) int64 {
	if clicks <= 0 {
		return 0
	}
	if strategy == ConversionBinomial {
		b := distuv.Binomial{N: float64(clicks), P: cvr, Src: src}
		return int64(b.Rand())
	}
	var orders int64
	for i := int64(0); i < clicks; i++ {
		if src.Float64() < cvr {
			orders++
		}
	}
	return orders
}
