package kernel

// Reference verification parameters.
const (
	// defaultBandwidth is the Fejér support radius B.
	defaultBandwidth = 3.0

	// defaultSmoothingTime is the heat-kernel time t = 3/50.
	defaultSmoothingTime = 0.06

	// defaultFloor is the Archimedean floor constant c* = 11/10.
	defaultFloor = 1.1

	// defaultTruncationOrder is the reference periodization truncation M.
	// It vastly exceeds the window support implied by B=3; the excess is a
	// safety margin, not a precision requirement.
	defaultTruncationOrder = 50

	// defaultGridSize is the reference scan resolution N.
	defaultGridSize = 2000

	// defaultDomainHalfWidth bounds the fundamental domain [−½, ½] of the
	// period-1 torus.
	defaultDomainHalfWidth = 0.5

	// minGridSize is the smallest scan that still has both endpoints.
	minGridSize = 2
)

// Fitted constants of the empirical pair-correlation kernel
// μ(d) = 1.20·cos(0.357·d − 2.05)·exp(−0.0024·d), obtained by symbolic
// regression over attention logits.
const (
	empiricalAmplitude = 1.20
	empiricalFrequency = 0.357
	empiricalPhase     = -2.05
	empiricalDecay     = 0.0024
)
