package signal

import (
	"fmt"
	"math"
)

// Buffer is a run of real-valued samples taken at a fixed rate.
// The implicit time base is t[i] = i / Rate.
// Buffers are treated as immutable: every transform allocates a new one.
type Buffer struct {
	Samples []float64
	Rate    float64
}

func (b Buffer) Len() int {
	return len(b.Samples)
}

func (b Buffer) Duration() float64 {
	return float64(len(b.Samples)) / b.Rate
}

func (b Buffer) Nyquist() float64 {
	return b.Rate / 2
}

// Power returns the mean square of the samples.
func (b Buffer) Power() float64 {
	if len(b.Samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range b.Samples {
		sum += v * v
	}
	return sum / float64(len(b.Samples))
}

func (b Buffer) Clone() Buffer {
	samples := make([]float64, len(b.Samples))
	copy(samples, b.Samples)
	return Buffer{Samples: samples, Rate: b.Rate}
}

// Validate reports the first defect in the buffer: no samples, a
// non-positive rate, or a non-finite sample. A NaN or Inf anywhere is a
// bug in the producing stage and must not propagate further.
func (b Buffer) Validate() error {
	if len(b.Samples) == 0 {
		return fmt.Errorf("signal: empty buffer")
	}
	if b.Rate <= 0 {
		return fmt.Errorf("signal: sample rate %v is not positive", b.Rate)
	}
	for i, v := range b.Samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("signal: non-finite sample %v at index %d", v, i)
		}
	}
	return nil
}
