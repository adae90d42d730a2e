// Package channel composes the observed power line signal from the clean
// carrier and any number of noise components.
package channel

import (
	"Powerline/pkg/signal"

	"gonum.org/v1/gonum/floats"
)

// Combine returns the elementwise sum of the clean carrier and the given
// noise buffers. Every buffer must agree on length and sample rate; a
// disagreement is a defect in the calling code and surfaces as
// ShapeMismatchError.
func Combine(clean signal.Buffer, noises ...signal.Buffer) (signal.Buffer, error) {
	out := clean.Clone()
	for _, n := range noises {
		if n.Len() != clean.Len() || n.Rate != clean.Rate {
			return signal.Buffer{}, signal.ShapeMismatchError{
				WantLen:  clean.Len(),
				GotLen:   n.Len(),
				WantRate: clean.Rate,
				GotRate:  n.Rate,
			}
		}
		floats.Add(out.Samples, n.Samples)
	}
	return out, nil
}

// Residual returns observed minus reference, the noise-only signal. Useful
// for spotting low-level components hidden beside a strong carrier.
func Residual(observed, reference signal.Buffer) (signal.Buffer, error) {
	if observed.Len() != reference.Len() || observed.Rate != reference.Rate {
		return signal.Buffer{}, signal.ShapeMismatchError{
			WantLen:  reference.Len(),
			GotLen:   observed.Len(),
			WantRate: reference.Rate,
			GotRate:  observed.Rate,
		}
	}
	out := observed.Clone()
	floats.Sub(out.Samples, reference.Samples)
	return out, nil
}
