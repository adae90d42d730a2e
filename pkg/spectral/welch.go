package spectral

import (
	"fmt"
	"math"

	"Powerline/pkg/signal"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// DefaultSegmentLength is used when WelchPSD is called with a zero segment
// length.
const DefaultSegmentLength = 1024

// DefaultOverlap is the fraction of each segment shared with the next.
const DefaultOverlap = 0.5

// InsufficientDataError reports an analysis window longer than the signal.
// The caller may retry with a shorter segment; the estimate is never
// silently truncated.
type InsufficientDataError struct {
	SegmentLength int
	SignalLength  int
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("welch: segment length %d exceeds signal length %d", e.SegmentLength, e.SignalLength)
}

// WelchPSD estimates the power spectral density by averaging Hann-windowed
// overlapping periodograms. Averaging across segments trades frequency
// resolution for variance reduction. The returned values are power per Hz
// over segmentLength/2+1 one-sided bins.
func WelchPSD(in signal.Buffer, segmentLength int, overlap float64) (Spectrum, error) {
	n := in.Len()
	if segmentLength == 0 {
		segmentLength = DefaultSegmentLength
	}
	if segmentLength < 2 {
		return Spectrum{}, signal.ConfigError{Param: "segment_length", Reason: "must be at least 2"}
	}
	if segmentLength > n {
		return Spectrum{}, InsufficientDataError{SegmentLength: segmentLength, SignalLength: n}
	}
	if overlap <= 0 || overlap >= 1 {
		overlap = DefaultOverlap
	}
	step := segmentLength - int(float64(segmentLength)*overlap)
	if step < 1 {
		step = 1
	}

	window := hann(segmentLength)
	winPower := 0.0
	for _, w := range window {
		winPower += w * w
	}

	fft := fourier.NewFFT(segmentLength)
	bins := segmentLength/2 + 1
	psd := make([]float64, bins)
	buf := make([]float64, segmentLength)
	segments := 0
	for start := 0; start+segmentLength <= n; start += step {
		seg := in.Samples[start : start+segmentLength]
		mean := floats.Sum(seg) / float64(segmentLength)
		for i, v := range seg {
			buf[i] = (v - mean) * window[i]
		}
		coeffs := fft.Coefficients(nil, buf)
		for i, c := range coeffs {
			p := (real(c)*real(c) + imag(c)*imag(c)) / (in.Rate * winPower)
			if i != 0 && !(segmentLength%2 == 0 && i == bins-1) {
				p *= 2
			}
			psd[i] += p
		}
		segments++
	}
	for i := range psd {
		psd[i] /= float64(segments)
	}

	freqs := make([]float64, bins)
	for i := range freqs {
		freqs[i] = fft.Freq(i) * in.Rate
	}
	return Spectrum{Freqs: freqs, Values: psd}, nil
}

func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}
