// Package symbol evaluates the periodized Toeplitz symbol built from the
// Archimedean spectral density and a Fejér-heat smoothing window.
package symbol

import (
	"errors"
	"fmt"
	"math"

	"github.com/Malaeu/pair-correlation-attention-kernel/internal/mathutil"
)

// ErrNonFinite reports that a special-function evaluation produced NaN or Inf.
// The scan must abort rather than let a non-finite value reach the minimum.
var ErrNonFinite = errors.New("non-finite density value")

// Density computes the Archimedean spectral density
//
//	a(ξ) = log(π) − Re ψ(¼ + iπξ)
//
// where ψ is the digamma function. The density is even in ξ and finite for
// every finite real argument; the evaluation point ¼ + iπξ always has real
// part ¼ and therefore never hits a digamma pole.
func Density(xi float64) (float64, error) {
	z := complex(densityQuarterShift, math.Pi*xi)
	value := math.Log(math.Pi) - real(mathutil.Digamma(z))

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("digamma at ξ=%g: %w", xi, ErrNonFinite)
	}
	return value, nil
}
