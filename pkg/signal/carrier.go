package signal

import "math"

// CarrierConfig describes a plain sinusoidal tone.
type CarrierConfig struct {
	Amplitude  float64
	Freq       float64
	Phase      float64
	SampleRate float64
	Size       int
}

func (c CarrierConfig) New() Buffer {
	samples := make([]float64, c.Size)
	for i := range samples {
		t := float64(i) / c.SampleRate
		samples[i] = c.Amplitude * math.Sin(2*math.Pi*c.Freq*t+c.Phase)
	}
	return Buffer{Samples: samples, Rate: c.SampleRate}
}
