package kernel

import (
	"fmt"

	"github.com/Malaeu/pair-correlation-attention-kernel/internal/symbol"
)

// Config holds the spectral floor verification parameters.
type Config struct {
	// Bandwidth is the support radius B of the Fejér taper.
	Bandwidth float64

	// SmoothingTime is the heat-kernel time t of the Gaussian factor.
	SmoothingTime float64

	// Floor is the constant c* the symbol minimum is checked against.
	// It is asserted externally, not derived; any real value is valid.
	Floor float64

	// TruncationOrder is the number of integer translates M included on
	// each side of zero in the periodization sum. Must cover the window
	// support: M ≥ ⌈B⌉+1.
	TruncationOrder int

	// GridSize is the number of scan points N over the fundamental
	// domain, endpoints included.
	GridSize int

	// DomainMin and DomainMax bound the fundamental domain of the scan.
	DomainMin float64
	DomainMax float64

	// EnableParallel evaluates grid points concurrently across goroutines.
	// Results are bit-identical to a sequential scan; only wall time changes.
	EnableParallel bool
}

// DefaultConfig returns the reference parameterization: B=3, t=0.06 (3/50),
// c*=1.1 (the Archimedean floor), M=50, N=2000 over [−½, ½].
func DefaultConfig() *Config {
	return &Config{
		Bandwidth:       defaultBandwidth,
		SmoothingTime:   defaultSmoothingTime,
		Floor:           defaultFloor,
		TruncationOrder: defaultTruncationOrder,
		GridSize:        defaultGridSize,
		DomainMin:       -defaultDomainHalfWidth,
		DomainMax:       defaultDomainHalfWidth,
	}
}

// Validate checks if verification parameters are valid.
func (c *Config) Validate() error {
	params := symbol.WindowParams{
		Bandwidth:     c.Bandwidth,
		SmoothingTime: c.SmoothingTime,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	if c.TruncationOrder <= 0 {
		return fmt.Errorf("invalid truncation order: %d (must be positive)", c.TruncationOrder)
	}

	if c.GridSize < minGridSize {
		return fmt.Errorf("invalid grid size: %d (minimum %d)", c.GridSize, minGridSize)
	}

	if c.DomainMin >= c.DomainMax {
		return fmt.Errorf("invalid domain: [%g, %g] (min must be below max)", c.DomainMin, c.DomainMax)
	}

	return nil
}

// windowParams converts the config into the symbol package's parameter type.
func (c *Config) windowParams() symbol.WindowParams {
	return symbol.WindowParams{
		Bandwidth:     c.Bandwidth,
		SmoothingTime: c.SmoothingTime,
	}
}
