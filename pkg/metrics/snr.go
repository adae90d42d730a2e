// Package metrics computes the scalar quality figures of a channel run:
// signal-to-noise ratios and total harmonic distortion.
package metrics

import (
	"math"

	"Powerline/pkg/signal"
	"Powerline/pkg/spectral"
)

// SNRBroadband returns the ratio of clean-signal power to residual-noise
// power (observed minus clean, elementwise) in dB. When the residual power
// is exactly zero the ratio is undefined and +Inf is returned; callers
// detect it with math.IsInf.
func SNRBroadband(clean, observed signal.Buffer) (float64, error) {
	if observed.Len() != clean.Len() || observed.Rate != clean.Rate {
		return 0, signal.ShapeMismatchError{
			WantLen:  clean.Len(),
			GotLen:   observed.Len(),
			WantRate: clean.Rate,
			GotRate:  observed.Rate,
		}
	}
	noisePower := 0.0
	for i, v := range observed.Samples {
		d := v - clean.Samples[i]
		noisePower += d * d
	}
	noisePower /= float64(clean.Len())
	if noisePower == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(clean.Power()/noisePower), nil
}

// SNRBandLimited integrates FFT power inside [center-bw/2, center+bw/2] as
// signal and everything outside the band, up to Nyquist, as noise. +Inf is
// returned when no power falls outside the band.
func SNRBandLimited(observed signal.Buffer, centerFreq, bandwidth float64) (float64, error) {
	if centerFreq <= 0 {
		return 0, signal.ConfigError{Param: "center_freq", Reason: "must be positive"}
	}
	if bandwidth <= 0 {
		return 0, signal.ConfigError{Param: "bandwidth", Reason: "must be positive"}
	}
	spec := spectral.FFTSpectrum(observed)
	low := centerFreq - bandwidth/2
	high := centerFreq + bandwidth/2

	inBand, outBand := 0.0, 0.0
	for i, f := range spec.Freqs {
		p := spec.Values[i] * spec.Values[i]
		if f >= low && f <= high {
			inBand += p
		} else {
			outBand += p
		}
	}
	if outBand == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(inBand/outBand), nil
}
