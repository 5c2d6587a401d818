package kernel

import (
	"fmt"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// SymbolCoefficients extracts the leading Fourier coefficients of the scanned
// symbol,
//
//	a_k ≈ (1/n) · Σ_j P(θ_j) · e^{−2πik·θ_j}
//
// which are the entries of the Toeplitz operator the symbol defines. The
// symbol is real and even, so the coefficients are real and a_k = a_{−k};
// only k = 0..numCoeffs−1 is returned. Coefficient 0 is the mean symbol
// level.
//
// The scan grid includes both endpoints of the fundamental domain; the
// duplicated periodic endpoint is dropped before the transform.
func SymbolCoefficients(result *ScanResult, numCoeffs int) ([]float64, error) {
	if result == nil || len(result.Samples) < minGridSize {
		return nil, fmt.Errorf("scan result too small for coefficient extraction")
	}

	// θ = −½ and θ = +½ are the same torus point; keep one.
	n := len(result.Samples) - 1

	if numCoeffs <= 0 {
		return nil, fmt.Errorf("invalid coefficient count: %d (must be positive)", numCoeffs)
	}
	if maxCoeffs := n/2 + 1; numCoeffs > maxCoeffs {
		return nil, fmt.Errorf("requested %d coefficients, grid of %d points supports %d",
			numCoeffs, n, maxCoeffs)
	}

	seq := make([]float64, n)
	for i := range n {
		seq[i] = result.Samples[i].Value
	}

	fft := fourier.NewFFT(n)
	spectrum := fft.Coefficients(nil, seq)

	coeffs := make([]float64, numCoeffs)
	for k := range numCoeffs {
		// The grid starts at θ = −½, half a period into the torus; the
		// shift contributes a factor e^{iπk} = (−1)^k per coefficient.
		value := real(spectrum[k])
		if k%2 == 1 {
			value = -value
		}
		coeffs[k] = value
	}

	// gonum's FFT is unnormalized; scale by 1/n.
	f64.Scale(coeffs, coeffs, 1/float64(n))

	return coeffs, nil
}
