// Package filter designs and applies the IIR notch that suppresses
// narrowband interference on the power line channel.
package filter

import (
	"math"

	"Powerline/pkg/signal"
)

// Coefficients holds one normalized second-order IIR section (A[0] == 1).
type Coefficients struct {
	B [3]float64 // numerator
	A [3]float64 // denominator
}

// DesignNotch computes a second-order IIR notch at centerFreq with bandwidth
// centerFreq/q, by bilinear transform of the analog prototype. Gain is unity
// at DC and Nyquist and zero at the center frequency.
func DesignNotch(centerFreq, rate, q float64) (Coefficients, error) {
	if rate <= 0 {
		return Coefficients{}, signal.ConfigError{Param: "sample_rate", Reason: "must be positive"}
	}
	if centerFreq <= 0 || centerFreq >= rate/2 {
		return Coefficients{}, signal.ConfigError{Param: "notch_freq", Reason: "must lie strictly between 0 and the Nyquist frequency"}
	}
	if q <= 0 {
		return Coefficients{}, signal.ConfigError{Param: "q", Reason: "must be positive"}
	}

	w0 := 2 * math.Pi * centerFreq / rate
	alpha := math.Sin(w0) / (2 * q)
	cosw := math.Cos(w0)
	a0 := 1 + alpha
	return Coefficients{
		B: [3]float64{1 / a0, -2 * cosw / a0, 1 / a0},
		A: [3]float64{1, -2 * cosw / a0, (1 - alpha) / a0},
	}, nil
}

// Response evaluates the filter's complex gain magnitude at freq.
func (c Coefficients) Response(freq, rate float64) float64 {
	z := complex(math.Cos(2*math.Pi*freq/rate), math.Sin(2*math.Pi*freq/rate))
	num := complex(c.B[0], 0) + complex(c.B[1], 0)/z + complex(c.B[2], 0)/(z*z)
	den := complex(c.A[0], 0) + complex(c.A[1], 0)/z + complex(c.A[2], 0)/(z*z)
	h := num / den
	return math.Hypot(real(h), imag(h))
}

// Apply runs the filter causally over the signal in a single pass, direct
// form II transposed, and returns a same-length output. The first samples
// carry the usual settling transient; that is expected edge behavior, not a
// defect.
func Apply(c Coefficients, in signal.Buffer) signal.Buffer {
	out := make([]float64, in.Len())
	var z1, z2 float64
	for i, x := range in.Samples {
		y := c.B[0]*x + z1
		z1 = c.B[1]*x - c.A[1]*y + z2
		z2 = c.B[2]*x - c.A[2]*y
		out[i] = y
	}
	return signal.Buffer{Samples: out, Rate: in.Rate}
}
