package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicCVR_Clamped(t *testing.T) {
	assert.InDelta(t, 0.06, DynamicCVR(0.05, 1.2, 1.0), 1e-12)
	assert.Equal(t, maxCVR, DynamicCVR(0.5, 1.8, 1.25))
	assert.Equal(t, minCVR, DynamicCVR(0, 1, 1))
}

func TestSimulateConversions_NoClicks(t *testing.T) {
	for _, s := range []ConversionStrategy{ConversionBernoulli, ConversionBinomial} {
		assert.Zero(t, SimulateConversions(NewSource(1), s, 0, 0.5))
	}
}

func TestSimulateConversions_Bounds(t *testing.T) {
	for _, s := range []ConversionStrategy{ConversionBernoulli, ConversionBinomial} {
		src := NewSource(5)
		for i := 0; i < 200; i++ {
			n := int64(src.IntN(60))
			o := SimulateConversions(src, s, n, 0.3)
			assert.GreaterOrEqual(t, o, int64(0))
			assert.LessOrEqual(t, o, n)
		}
	}
}

func TestSimulateConversions_MatchesRate(t *testing.T) {
	for _, s := range []ConversionStrategy{ConversionBernoulli, ConversionBinomial} {
		src := NewSource(21)
		var orders int64
		const clicks = 20000
		orders = SimulateConversions(src, s, clicks, 0.1)
		assert.InDelta(t, 0.1, float64(orders)/clicks, 0.01, "strategy %s", s)
	}
}

func TestSimulateConversions_SmallSamplesVary(t *testing.T) {
	src := NewSource(8)
	seen := map[int64]bool{}
	for i := 0; i < 300; i++ {
		seen[SimulateConversions(src, ConversionBernoulli, 5, 0.1)] = true
	}
	assert.True(t, seen[0], "a five-click day should sometimes convert nothing")
	assert.True(t, seen[1])
}

func TestParseConversionStrategy(t *testing.T) {
	for in, want := range map[string]ConversionStrategy{
		"":           ConversionBernoulli,
		"bernoulli":  ConversionBernoulli,
		" Binomial ": ConversionBinomial,
	} {
		got, err := ParseConversionStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseConversionStrategy("binomal")
	assert.ErrorContains(t, err, `unknown conversion strategy "binomal"`)
}
