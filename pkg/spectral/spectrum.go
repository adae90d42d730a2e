// Package spectral estimates frequency-domain views of a signal: a
// calibrated one-sided FFT magnitude spectrum and an averaged Welch power
// spectral density.
package spectral

import (
	"math"
	"math/cmplx"

	"Powerline/pkg/signal"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrum pairs an ascending non-negative frequency axis with magnitude or
// power values of the same length.
type Spectrum struct {
	Freqs  []float64
	Values []float64
}

// Nearest returns the index of the bin closest to freq.
func (s Spectrum) Nearest(freq float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, f := range s.Freqs {
		if d := math.Abs(f - freq); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// FFTSpectrum computes the one-sided amplitude spectrum over N/2+1 bins.
// AC bins are scaled by 2/N so a unit sinusoid reads as amplitude 1; the DC
// bin, and the Nyquist bin for even N, carry no mirror and are scaled by 1/N.
func FFTSpectrum(in signal.Buffer) Spectrum {
	n := in.Len()
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, in.Samples)

	freqs := make([]float64, len(coeffs))
	values := make([]float64, len(coeffs))
	for i, c := range coeffs {
		freqs[i] = fft.Freq(i) * in.Rate
		scale := 2 / float64(n)
		if i == 0 || (n%2 == 0 && i == len(coeffs)-1) {
			scale = 1 / float64(n)
		}
		values[i] = scale * cmplx.Abs(c)
	}
	return Spectrum{Freqs: freqs, Values: values}
}
