package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malaeu/pair-correlation-attention-kernel/internal/testutil"
)

const (
	// Reference expectation for the sampled minimum at default parameters.
	referenceMinLow  = 1.2
	referenceMinHigh = 1.4

	// Pinned reference values: min P ≈ 1.2823 at θ = ±½, margin ≈ +0.1823
	// over the 1.1 floor.
	referenceMinValue       = 1.2823
	referenceMarginValue    = 0.1823
	referenceValueTolerance = 1e-3

	// Floor above the true minimum, for the violation scenario.
	violatingFloor = 2.0

	boundaryTolerance   = 1e-9
	refinementTolerance = 1e-3

	// Smaller grid for tests that scan repeatedly.
	quickGridSize = 501
)

func quickConfig() *Config {
	config := DefaultConfig()
	config.GridSize = quickGridSize
	return config
}

// TestDefaultConfig tests the reference parameterization.
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 3.0, config.Bandwidth)
	assert.Equal(t, 0.06, config.SmoothingTime)
	assert.Equal(t, 1.1, config.Floor)
	assert.Equal(t, 50, config.TruncationOrder)
	assert.Equal(t, 2000, config.GridSize)
	assert.Equal(t, -0.5, config.DomainMin)
	assert.Equal(t, 0.5, config.DomainMax)
	assert.NoError(t, config.Validate())
}

// TestConfig_Validate tests parameter validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero_bandwidth", func(c *Config) { c.Bandwidth = 0 }, true},
		{"negative_bandwidth", func(c *Config) { c.Bandwidth = -3 }, true},
		{"zero_smoothing", func(c *Config) { c.SmoothingTime = 0 }, true},
		{"negative_smoothing", func(c *Config) { c.SmoothingTime = -0.06 }, true},
		{"zero_order", func(c *Config) { c.TruncationOrder = 0 }, true},
		{"negative_order", func(c *Config) { c.TruncationOrder = -50 }, true},
		{"tiny_grid", func(c *Config) { c.GridSize = 1 }, true},
		{"inverted_domain", func(c *Config) { c.DomainMin, c.DomainMax = 0.5, -0.5 }, true},
		{"empty_domain", func(c *Config) { c.DomainMax = c.DomainMin }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestNew_NilConfig verifies that nil selects the reference parameterization.
func TestNew_NilConfig(t *testing.T) {
	v, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, *DefaultConfig(), v.Config())
}

// TestNew_TruncationBelowSupport verifies that an order too small to cover
// the window support is rejected before any computation.
func TestNew_TruncationBelowSupport(t *testing.T) {
	config := DefaultConfig()
	config.TruncationOrder = 3 // support of B=3 needs at least 4

	_, err := New(config)
	assert.Error(t, err)
}

// TestScan_ReferenceScenario runs the full reference verification:
// B=3, t=0.06, M=50, N=2000, c*=1.1 must produce a minimum in [1.2, 1.4]
// and a positive margin.
func TestScan_ReferenceScenario(t *testing.T) {
	result, err := Verify(nil)
	require.NoError(t, err)

	assert.Len(t, result.Samples, defaultGridSize)
	testutil.AssertNoNaNOrInf(t, result.Values())
	testutil.AssertInRange(t, result.MinValue, referenceMinLow, referenceMinHigh)
	testutil.AssertInRange(t, result.ArgMin, -0.5, 0.5)

	assert.Equal(t, defaultFloor, result.Floor)
	assert.InDelta(t, result.MinValue-result.Floor, result.Margin, testutil.DefaultTolerance)
	assert.Positive(t, result.Margin)
	assert.True(t, result.FloorHolds())

	// Pin the actual reference numbers, not just the admissible range; a
	// wrong periodization prefactor rescales the whole scan and misses
	// these by an order of magnitude.
	assert.InDelta(t, referenceMinValue, result.MinValue, referenceValueTolerance)
	assert.InDelta(t, referenceMarginValue, result.Margin, referenceValueTolerance)
	assert.InDelta(t, defaultDomainHalfWidth, math.Abs(result.ArgMin), testutil.DefaultTolerance,
		"minimum should sit at the fundamental-domain edge")

	// Samples come back in ascending θ order with the grid endpoints.
	assert.Equal(t, -0.5, result.Samples[0].Theta)
	assert.Equal(t, 0.5, result.Samples[len(result.Samples)-1].Theta)
	for i := 1; i < len(result.Samples); i++ {
		assert.Greater(t, result.Samples[i].Theta, result.Samples[i-1].Theta)
	}
}

// TestScan_FloorViolation verifies that a floor above the true minimum is
// reported as a plain negative margin, not an error.
func TestScan_FloorViolation(t *testing.T) {
	config := quickConfig()
	config.Floor = violatingFloor

	result, err := Verify(config)
	require.NoError(t, err)

	assert.Negative(t, result.Margin)
	assert.False(t, result.FloorHolds())
	assert.InDelta(t, result.MinValue-violatingFloor, result.Margin, testutil.DefaultTolerance)
}

// TestScan_GridRefinement verifies that doubling the grid never raises the
// sampled minimum: a finer grid can only find equal-or-lower values.
func TestScan_GridRefinement(t *testing.T) {
	coarseConfig := quickConfig()
	coarse, err := Verify(coarseConfig)
	require.NoError(t, err)

	fineConfig := quickConfig()
	fineConfig.GridSize = 2*quickGridSize - 1 // keeps every coarse point on the fine grid
	fine, err := Verify(fineConfig)
	require.NoError(t, err)

	assert.LessOrEqual(t, fine.MinValue, coarse.MinValue+testutil.DefaultTolerance,
		"refined grid raised the minimum")
	assert.InDelta(t, coarse.MinValue, fine.MinValue, refinementTolerance,
		"minimum not stable under grid refinement")
}

// TestScan_BoundarySymmetry verifies P(−½) ≈ P(½) under the periodic
// extension of the fundamental domain.
func TestScan_BoundarySymmetry(t *testing.T) {
	result, err := Verify(quickConfig())
	require.NoError(t, err)

	first := result.Samples[0].Value
	last := result.Samples[len(result.Samples)-1].Value
	assert.InDelta(t, first, last, boundaryTolerance)
}

// TestSymbolAt_Periodicity verifies the symbol has period 1 through the
// public evaluation entry point.
func TestSymbolAt_Periodicity(t *testing.T) {
	v, err := New(nil)
	require.NoError(t, err)

	for _, theta := range []float64{-0.4, 0, 0.25} {
		base, err := v.SymbolAt(theta)
		require.NoError(t, err)
		shifted, err := v.SymbolAt(theta + 1)
		require.NoError(t, err)

		assert.InDelta(t, base, shifted, boundaryTolerance,
			"P(θ) != P(θ+1) at θ=%v", theta)
	}
}

// TestScanResult_Values verifies the values copy matches the samples.
func TestScanResult_Values(t *testing.T) {
	result, err := Verify(quickConfig())
	require.NoError(t, err)

	values := result.Values()
	require.Len(t, values, len(result.Samples))
	for i, s := range result.Samples {
		assert.Equal(t, s.Value, values[i])
	}
}

// BenchmarkScan benchmarks a full reference scan.
func BenchmarkScan(b *testing.B) {
	v, err := New(nil)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_, _ = v.Scan()
	}
}
