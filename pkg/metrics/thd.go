package metrics

import (
	"fmt"
	"math"

	"Powerline/pkg/signal"
	"Powerline/pkg/spectral"

	"gonum.org/v1/gonum/floats"
)

// PeakNotFoundError reports a fundamental that does not rise above the
// spectrum's noise floor, so the distortion figure is not resolvable.
type PeakNotFoundError struct {
	Freq float64
}

func (e PeakNotFoundError) Error() string {
	return fmt.Sprintf("thd: no resolvable peak near %g Hz", e.Freq)
}

// DefaultHarmonics is used when THD is called with a non-positive count.
const DefaultHarmonics = 5

const (
	// peakSearchBins tolerates leakage from the finite observation window
	// when locating the fundamental and its multiples.
	peakSearchBins = 2

	// noiseFloorRatio is the multiple of the mean bin magnitude a
	// fundamental must clear to count as a peak.
	noiseFloorRatio = 5.0
)

// THD measures total harmonic distortion as a percentage of the fundamental:
// 100*sqrt(sum of squared harmonic amplitudes)/fundamental amplitude. Each
// peak is the strongest bin within a small window around the corresponding
// integer multiple of the fundamental; multiples at or above Nyquist are
// excluded.
func THD(in signal.Buffer, fundamental float64, harmonics int) (float64, error) {
	if fundamental <= 0 {
		return 0, signal.ConfigError{Param: "fundamental", Reason: "must be positive"}
	}
	if harmonics <= 0 {
		harmonics = DefaultHarmonics
	}

	spec := spectral.FFTSpectrum(in)
	df := in.Rate / float64(in.Len())
	floor := noiseFloorRatio * floats.Sum(spec.Values) / float64(len(spec.Values))

	fundAmp := peakNear(spec, fundamental, df)
	if fundAmp <= floor || fundAmp == 0 {
		return 0, PeakNotFoundError{Freq: fundamental}
	}

	sum := 0.0
	for h := 2; h <= harmonics+1; h++ {
		f := fundamental * float64(h)
		if f >= in.Nyquist() {
			break
		}
		a := peakNear(spec, f, df)
		sum += a * a
	}
	return 100 * math.Sqrt(sum) / fundAmp, nil
}

func peakNear(spec spectral.Spectrum, freq, df float64) float64 {
	center := int(math.Round(freq / df))
	best := 0.0
	for k := center - peakSearchBins; k <= center+peakSearchBins; k++ {
		if k < 0 || k >= len(spec.Values) {
			continue
		}
		if spec.Values[k] > best {
			best = spec.Values[k]
		}
	}
	return best
}
