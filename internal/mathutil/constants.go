package mathutil

// Digamma evaluation constants.
const (
	// Arguments left of this threshold are reflected into the right half
	// plane before shifting.
	digammaReflectThreshold = 0.0

	// Minimum |z| before the Bernoulli asymptotic expansion is applied.
	// With seven series terms this radius yields ~1e-15 relative error.
	digammaAsymptoticRadius = 8.0
)

// Bernoulli coefficients B₂ₙ/(2n) of the digamma asymptotic expansion,
// from Abramowitz & Stegun 6.3.18.
const (
	digammaBernoulliCoeff1 = 1.0 / 12.0       // B₂/2
	digammaBernoulliCoeff2 = -1.0 / 120.0     // B₄/4
	digammaBernoulliCoeff3 = 1.0 / 252.0      // B₆/6
	digammaBernoulliCoeff4 = -1.0 / 240.0     // B₈/8
	digammaBernoulliCoeff5 = 1.0 / 132.0      // B₁₀/10
	digammaBernoulliCoeff6 = -691.0 / 32760.0 // B₁₂/12
	digammaBernoulliCoeff7 = 1.0 / 12.0       // B₁₄/14
)
