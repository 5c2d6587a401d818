package kernel

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"

	"github.com/Malaeu/pair-correlation-attention-kernel/internal/symbol"
)

// Sample is one evaluation of the periodized symbol at a torus coordinate.
type Sample struct {
	// Theta is the torus coordinate in the fundamental domain.
	Theta float64

	// Value is the symbol value P(θ).
	Value float64
}

// ScanResult holds the outcome of a dense symbol scan over the fundamental
// domain.
type ScanResult struct {
	// Samples is the full ordered grid of (θ, P(θ)) pairs, ascending in θ.
	Samples []Sample

	// MinValue is the minimum symbol value found on the grid.
	MinValue float64

	// ArgMin is the grid coordinate attaining the minimum. Ties resolve to
	// the first occurrence in ascending θ order.
	ArgMin float64

	// Mean is the average symbol value over the grid.
	Mean float64

	// Floor is the constant c* the minimum was checked against.
	Floor float64

	// Margin is MinValue − Floor. A negative margin means the floor claim
	// fails for the scanned parameters; it is a result, not an error.
	Margin float64
}

// FloorHolds reports whether the sampled minimum stays at or above the floor.
func (r *ScanResult) FloorHolds() bool {
	return r.Margin >= 0
}

// Values returns a copy of the sampled symbol values in grid order.
func (r *ScanResult) Values() []float64 {
	values := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		values[i] = s.Value
	}
	return values
}

// Verifier scans the periodized Toeplitz symbol over its fundamental domain
// and reports the margin between the sampled minimum and the floor constant.
//
// The scan is empirical evidence by dense sampling, not a certified bound:
// the grid must be fine enough that the sampled minimum is a faithful proxy
// for the continuous one.
//
// A Verifier is immutable after construction and safe for concurrent use.
type Verifier struct {
	config Config
	eval   *symbol.Evaluator
}

// New creates a floor verifier. A nil config selects the reference
// parameterization from DefaultConfig.
func New(config *Config) (*Verifier, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	eval, err := symbol.NewEvaluator(config.windowParams(), config.TruncationOrder)
	if err != nil {
		return nil, err
	}

	return &Verifier{config: *config, eval: eval}, nil
}

// Config returns a copy of the verifier's configuration.
func (v *Verifier) Config() Config {
	return v.config
}

// SymbolAt evaluates the periodized symbol at a single coordinate, which may
// lie outside the fundamental domain (the symbol has period 1 by
// construction).
func (v *Verifier) SymbolAt(theta float64) (float64, error) {
	return v.eval.Eval(theta)
}

// Scan evaluates the symbol over a uniform inclusive grid, locates the
// minimum, and reports the margin against the floor constant.
//
// Grid points are independent; with EnableParallel they are evaluated
// concurrently in chunks, producing bit-identical values to a sequential
// scan. Minimum selection always runs over the assembled grid in ascending
// index order, so the argmin tie-break does not depend on evaluation order.
func (v *Verifier) Scan() (*ScanResult, error) {
	thetas := floats.Span(make([]float64, v.config.GridSize), v.config.DomainMin, v.config.DomainMax)
	values := make([]float64, len(thetas))

	var err error
	if v.config.EnableParallel && len(thetas) > 1 {
		err = v.scanParallel(thetas, values)
	} else {
		err = v.scanSequential(thetas, values)
	}
	if err != nil {
		return nil, err
	}

	minIdx := floats.MinIdx(values)
	mean := f64.Sum(values) / float64(len(values))

	samples := make([]Sample, len(thetas))
	for i := range thetas {
		samples[i] = Sample{Theta: thetas[i], Value: values[i]}
	}

	return &ScanResult{
		Samples:  samples,
		MinValue: values[minIdx],
		ArgMin:   thetas[minIdx],
		Mean:     mean,
		Floor:    v.config.Floor,
		Margin:   values[minIdx] - v.config.Floor,
	}, nil
}

// scanSequential evaluates every grid point on the calling goroutine.
func (v *Verifier) scanSequential(thetas, values []float64) error {
	for i, theta := range thetas {
		value, err := v.eval.Eval(theta)
		if err != nil {
			return fmt.Errorf("grid point %d (θ=%g): %w", i, theta, err)
		}
		values[i] = value
	}
	return nil
}

// scanParallel splits the grid into contiguous chunks, one goroutine each.
// Every value is written to its own index, so no synchronization beyond the
// final join is needed.
func (v *Verifier) scanParallel(thetas, values []float64) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(thetas) {
		workers = len(thetas)
	}
	chunk := (len(thetas) + workers - 1) / workers

	var wg sync.WaitGroup
	errChan := make(chan error, workers)

	for start := 0; start < len(thetas); start += chunk {
		end := min(start+chunk, len(thetas))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			for i := start; i < end; i++ {
				value, err := v.eval.Eval(thetas[i])
				if err != nil {
					errChan <- fmt.Errorf("grid point %d (θ=%g): %w", i, thetas[i], err)
					return
				}
				values[i] = value
			}
		}(start, end)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}
	return nil
}

// Verify is a one-shot convenience wrapper: build a verifier and run a scan.
// A nil config selects the reference parameterization.
func Verify(config *Config) (*ScanResult, error) {
	v, err := New(config)
	if err != nil {
		return nil, err
	}
	return v.Scan()
}
