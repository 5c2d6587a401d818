package kernel

import (
	"fmt"
	"math"
)

// EmpiricalKernel is the closed-form pair-correlation kernel
//
//	μ(d) = A · cos(ω·d + φ) · e^{−λ·d}
//
// fitted by symbolic regression to attention logits. It is purely
// presentational: consumers plot it beside the symbol scan for a
// learned-vs-theoretical comparison, and it feeds nothing back into the
// floor verification.
type EmpiricalKernel struct {
	// Amplitude is the leading factor A.
	Amplitude float64

	// Frequency is the angular frequency ω in radians per token distance.
	Frequency float64

	// Phase is the phase offset φ in radians.
	Phase float64

	// Decay is the exponential damping rate λ.
	Decay float64
}

// KernelSample is one evaluation of the empirical kernel at a token distance.
type KernelSample struct {
	Distance float64
	Value    float64
}

// DefaultEmpiricalKernel returns the fitted kernel
// μ(d) = 1.20·cos(0.357·d − 2.05)·exp(−0.0024·d).
func DefaultEmpiricalKernel() EmpiricalKernel {
	return EmpiricalKernel{
		Amplitude: empiricalAmplitude,
		Frequency: empiricalFrequency,
		Phase:     empiricalPhase,
		Decay:     empiricalDecay,
	}
}

// Eval computes μ(d) at a token distance d.
func (k EmpiricalKernel) Eval(d float64) float64 {
	return k.Amplitude * math.Cos(k.Frequency*d+k.Phase) * math.Exp(-k.Decay*d)
}

// Period returns the oscillation period 2π/ω of the kernel
// (≈17.6 token distances for the fitted constants).
func (k EmpiricalKernel) Period() float64 {
	return 2 * math.Pi / k.Frequency
}

// Curve samples the kernel on [0, maxDistance) with the given step, for
// downstream rendering.
func (k EmpiricalKernel) Curve(maxDistance, step float64) ([]KernelSample, error) {
	if step <= 0 {
		return nil, fmt.Errorf("invalid step: %g (must be positive)", step)
	}
	if maxDistance <= 0 {
		return nil, fmt.Errorf("invalid max distance: %g (must be positive)", maxDistance)
	}

	count := int(math.Ceil(maxDistance / step))
	samples := make([]KernelSample, count)
	for i := range count {
		d := float64(i) * step
		samples[i] = KernelSample{Distance: d, Value: k.Eval(d)}
	}
	return samples, nil
}
