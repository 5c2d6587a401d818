package symbol

import (
	"fmt"
	"math"
)

// Evaluator computes the periodized Toeplitz symbol
//
//	P(θ) = 2 · Σ_{m=−M}^{M} a(θ+m) · w(θ+m)
//
// on the period-1 torus. The infinite periodization is truncated to ±M
// translates; since the window vanishes for |ξ| ≥ B, every translate with
// |m| > B+0.5 contributes exactly zero and truncation beyond the support
// radius loses nothing.
//
// Evaluator is immutable after construction and safe for concurrent use.
type Evaluator struct {
	params WindowParams
	order  int
}

// MinTruncationOrder returns the smallest truncation order that covers the
// window support for the given bandwidth. Orders below this silently drop
// non-zero translates.
func MinTruncationOrder(bandwidth float64) int {
	return int(math.Ceil(bandwidth)) + truncationSafetyMargin
}

// NewEvaluator creates a symbol evaluator for the given window parameters
// and truncation order.
func NewEvaluator(params WindowParams, order int) (*Evaluator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if minOrder := MinTruncationOrder(params.Bandwidth); order < minOrder {
		return nil, fmt.Errorf("truncation order %d too small for bandwidth %g (minimum %d)",
			order, params.Bandwidth, minOrder)
	}
	return &Evaluator{params: params, order: order}, nil
}

// Params returns the window parameters the evaluator was built with.
func (e *Evaluator) Params() WindowParams {
	return e.params
}

// Order returns the truncation order.
func (e *Evaluator) Order() int {
	return e.order
}

// Eval computes P(θ) at a single torus coordinate.
//
// Terms are accumulated in ascending m so the floating-point rounding is
// deterministic across runs and across sequential/parallel scans. Translates
// outside the window support are skipped without evaluating the density.
// A non-finite density inside the support aborts the evaluation with the
// offending translate in the error.
func (e *Evaluator) Eval(theta float64) (float64, error) {
	var sum float64
	for m := -e.order; m <= e.order; m++ {
		xi := theta + float64(m)

		w := Window(xi, e.params)
		if w == 0 {
			continue
		}

		a, err := Density(xi)
		if err != nil {
			return 0, fmt.Errorf("translate m=%d of θ=%g: %w", m, theta, err)
		}
		sum += a * w
	}
	return periodizationScale * sum, nil
}
