// Package mathutil provides the special-function primitives used by the
// spectral gap verifier.
package mathutil

import (
	"math"
	"math/cmplx"
)

// Digamma computes the digamma function ψ(z) = Γ'(z)/Γ(z) for complex z.
//
// The implementation follows the classical three-step scheme:
//   - For Re(z) < 0: reflection formula ψ(z) = ψ(1−z) − π·cot(πz)
//   - For |z| below the asymptotic radius: recurrence ψ(z) = ψ(z+1) − 1/z,
//     applied until the argument is large enough for the series
//   - Bernoulli asymptotic expansion
//     ψ(z) ≈ ln(z) − 1/(2z) − Σₙ B₂ₙ/(2n·z²ⁿ)
//
// With the radius and term count used here the expansion is accurate to
// ~1e-15 relative error away from the poles.
//
// ψ has simple poles at the non-positive integers; at a pole the result is
// complex NaN, which callers must treat as a fatal evaluation failure.
//
// Reference: Abramowitz & Stegun, "Handbook of Mathematical Functions",
// formulas 6.3.5-6.3.18.
func Digamma(z complex128) complex128 {
	// Poles at z = 0, -1, -2, ...
	if imag(z) == 0 && real(z) <= 0 && real(z) == math.Trunc(real(z)) {
		return complex(math.NaN(), math.NaN())
	}

	// Reflection is reserved for the left half plane, where the recurrence
	// would walk toward the poles. Arguments with Re(z) ≥ 0 shift directly,
	// which keeps cot away from the large-imaginary axis where it overflows.
	if real(z) < digammaReflectThreshold {
		return Digamma(1-z) - math.Pi*cmplx.Cot(math.Pi*z)
	}

	// Shift the argument outward until the asymptotic series converges.
	// Each step uses ψ(z) = ψ(z+1) − 1/z.
	var shift complex128
	for cmplx.Abs(z) < digammaAsymptoticRadius {
		shift -= 1 / z
		z++
	}

	// Horner evaluation of the Bernoulli tail in w = 1/z².
	w := 1 / (z * z)
	series := w * (digammaBernoulliCoeff1 + w*(digammaBernoulliCoeff2+
		w*(digammaBernoulliCoeff3+w*(digammaBernoulliCoeff4+
			w*(digammaBernoulliCoeff5+w*(digammaBernoulliCoeff6+
				w*digammaBernoulliCoeff7))))))

	return shift + cmplx.Log(z) - 1/(2*z) - series
}
