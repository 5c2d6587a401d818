package symbol

import (
	"fmt"
	"math"
)

// WindowParams holds the smoothing window parameters.
type WindowParams struct {
	// Bandwidth is the support radius B of the Fejér taper.
	// The window is exactly zero for |ξ| ≥ B.
	Bandwidth float64

	// SmoothingTime is the heat-kernel time t controlling the width of the
	// Gaussian decay factor exp(−4π²tξ²).
	SmoothingTime float64
}

// Validate checks if window parameters are valid.
func (wp *WindowParams) Validate() error {
	if wp.Bandwidth <= 0 {
		return fmt.Errorf("invalid bandwidth: %g (must be positive)", wp.Bandwidth)
	}
	if wp.SmoothingTime <= 0 {
		return fmt.Errorf("invalid smoothing time: %g (must be positive)", wp.SmoothingTime)
	}
	return nil
}

// Window evaluates the Fejér-heat smoothing weight
//
//	w(ξ) = max(0, 1 − |ξ|/B) · exp(−4π²·t·ξ²)
//
// The triangular Fejér factor vanishes for |ξ| ≥ B and equals 1 at ξ = 0;
// the heat factor equals 1 at ξ = 0 and is strictly decreasing in |ξ|.
// The product lies in [0, 1] and reaches 1 only at the origin. Callers of
// the periodization rely on this non-negativity for sign reasoning about
// the symbol.
func Window(xi float64, p WindowParams) float64 {
	fejer := 1 - math.Abs(xi)/p.Bandwidth
	if fejer <= 0 {
		return 0
	}

	heat := math.Exp(-heatExponentScale * p.SmoothingTime * xi * xi)
	return fejer * heat
}
