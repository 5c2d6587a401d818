package symbol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malaeu/pair-correlation-attention-kernel/internal/testutil"
)

const (
	densityTolerance  = 1e-12
	evennessTolerance = 1e-12

	// Euler-Mascheroni constant γ
	eulerGamma = 0.5772156649015329
)

// TestDensity_AtOrigin tests the closed-form value
// a(0) = ln(π) − ψ(¼) = ln(π) + γ + π/2 + 3·ln(2).
func TestDensity_AtOrigin(t *testing.T) {
	expected := math.Log(math.Pi) + eulerGamma + math.Pi/2 + 3*math.Ln2

	value, err := Density(0)
	require.NoError(t, err)
	assert.InDelta(t, expected, value, densityTolerance)
}

// TestDensity_Evenness verifies a(ξ) = a(−ξ).
func TestDensity_Evenness(t *testing.T) {
	probes := []float64{0.1, 0.5, 1.0, 2.5, 10.0, 100.0}

	testutil.AssertEven(t, func(xi float64) float64 {
		value, err := Density(xi)
		require.NoError(t, err, "density failed at ξ=%v", xi)
		return value
	}, probes, evennessTolerance)
}

// TestDensity_DecreasesAway tests that the density falls off from its peak
// at the origin; for large |ξ| it behaves like −ln|ξ| and goes negative.
func TestDensity_DecreasesAway(t *testing.T) {
	probes := []float64{0, 1, 10, 100}

	prev := math.Inf(1)
	for _, xi := range probes {
		value, err := Density(xi)
		require.NoError(t, err)
		assert.Less(t, value, prev, "density did not decrease at ξ=%v", xi)
		prev = value
	}

	far, err := Density(1000)
	require.NoError(t, err)
	assert.Negative(t, far, "density should be negative far from the origin")
}

// TestDensity_FiniteEverywhere scans a wide range of arguments for NaN/Inf.
func TestDensity_FiniteEverywhere(t *testing.T) {
	values := make([]float64, 0, 400)
	for xi := -50.0; xi <= 50.0; xi += 0.25 {
		value, err := Density(xi)
		require.NoError(t, err, "density failed at ξ=%v", xi)
		values = append(values, value)
	}
	testutil.AssertNoNaNOrInf(t, values)
}

// BenchmarkDensity benchmarks one density evaluation.
func BenchmarkDensity(b *testing.B) {
	for b.Loop() {
		_, _ = Density(0.37)
	}
}
