package symbol

import "math"

const (
	// densityQuarterShift is the real part ¼ of the digamma evaluation
	// point ¼ + iπξ.
	densityQuarterShift = 0.25

	// heatExponentScale is the 4π² factor of the heat kernel exponent.
	heatExponentScale = 4 * math.Pi * math.Pi

	// periodizationScale is the prefactor of the symbol sum. With it the
	// reference parameterization floors at ≈1.28, a +0.18 margin over the
	// Archimedean constant 1.1.
	periodizationScale = 2.0

	// truncationSafetyMargin guards the truncation order against
	// off-by-one errors at the support boundary: M ≥ ⌈B⌉+1.
	truncationSafetyMargin = 1
)
