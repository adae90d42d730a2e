package signal

import (
	"math"

	"golang.org/x/exp/rand"
)

// DefaultOffRatio is the carrier amplitude for a 0 bit relative to a 1 bit.
// A small but non-zero level keeps the carrier detectable during 0 runs.
const DefaultOffRatio = 0.1

// GeneratorConfig is the full parameter set for synthesizing the clean
// carrier, optionally amplitude-shift keyed by a random bit sequence.
type GeneratorConfig struct {
	CarrierFreq float64
	Amplitude   float64 // zero selects the normalized default of 1
	Phase       float64
	SampleRate  float64
	Duration    float64

	Modulated bool
	BitRate   float64
	OffRatio  float64 // zero selects DefaultOffRatio; negative means fully off
}

// Generate synthesizes floor(Duration*SampleRate) samples of the carrier.
// When modulation is enabled, each bit of a sequence drawn from rng is
// replicated across round(SampleRate/BitRate) samples and gates the carrier
// amplitude between OffRatio and 1.
func Generate(cfg GeneratorConfig, rng *rand.Rand) (Buffer, error) {
	if cfg.SampleRate <= 0 {
		return Buffer{}, ConfigError{Param: "sample_rate", Reason: "must be positive"}
	}
	if cfg.CarrierFreq <= 0 {
		return Buffer{}, ConfigError{Param: "carrier_freq", Reason: "must be positive"}
	}
	if cfg.CarrierFreq >= cfg.SampleRate/2 {
		return Buffer{}, ConfigError{Param: "carrier_freq", Reason: "at or above the Nyquist frequency"}
	}
	n := int(cfg.Duration * cfg.SampleRate)
	if n < 2 {
		return Buffer{}, ConfigError{Param: "duration", Reason: "would produce fewer than 2 samples"}
	}

	amp := cfg.Amplitude
	if amp == 0 {
		amp = 1.0
	}
	out := CarrierConfig{
		Amplitude:  amp,
		Freq:       cfg.CarrierFreq,
		Phase:      cfg.Phase,
		SampleRate: cfg.SampleRate,
		Size:       n,
	}.New()
	if !cfg.Modulated {
		return out, nil
	}

	if cfg.BitRate <= 0 {
		return Buffer{}, ConfigError{Param: "bit_rate", Reason: "must be positive when modulation is enabled"}
	}
	off := cfg.OffRatio
	switch {
	case off == 0:
		off = DefaultOffRatio
	case off < 0:
		off = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	samplePerBit := int(math.Round(cfg.SampleRate / cfg.BitRate))
	if samplePerBit < 1 {
		samplePerBit = 1
	}
	bitCount := (n + samplePerBit - 1) / samplePerBit
	levels := make([]float64, bitCount)
	for i := range levels {
		if rng.Intn(2) == 1 {
			levels[i] = 1
		} else {
			levels[i] = off
		}
	}
	for i := range out.Samples {
		out.Samples[i] *= levels[i/samplePerBit]
	}
	return out, nil
}
