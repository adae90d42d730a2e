package experiment

import (
	"os"

	"Powerline/pkg/signal"

	"gopkg.in/yaml.v3"
)

// Config is the full parameter set for one experiment run.
type Config struct {
	SampleRate float64 `yaml:"sample_rate"`
	Duration   float64 `yaml:"duration"`
	Seed       uint64  `yaml:"seed"`

	Carrier struct {
		Freq      float64 `yaml:"freq"`
		Amplitude float64 `yaml:"amplitude"`
		Phase     float64 `yaml:"phase"`
	} `yaml:"carrier"`

	Modulation struct {
		Enable   bool    `yaml:"enable"`
		BitRate  float64 `yaml:"bit_rate"`
		OffRatio float64 `yaml:"off_ratio"`
	} `yaml:"modulation"`

	Noise struct {
		MainsFreq      float64 `yaml:"mains_freq"`
		MainsAmplitude float64 `yaml:"mains_amplitude"`
		MainsPhase     float64 `yaml:"mains_phase"`
		Sigma          float64 `yaml:"sigma"`
		ImpulseProb    float64 `yaml:"impulse_prob"`
		ImpulseSigma   float64 `yaml:"impulse_sigma"`
	} `yaml:"noise"`

	Notch struct {
		Freq float64 `yaml:"freq"`
		Q    float64 `yaml:"q"`
	} `yaml:"notch"`

	Analysis struct {
		SegmentLength int     `yaml:"segment_length"`
		Overlap       float64 `yaml:"overlap"`
		Bandwidth     float64 `yaml:"bandwidth"`
		Harmonics     int     `yaml:"harmonics"`
	} `yaml:"analysis"`
}

// DefaultConfig is the reference PLCC scenario: a 10 kHz ASK carrier sampled
// at 100 kHz riding on 50 Hz mains hum, Gaussian background noise and sparse
// impulses, mitigated by a 50 Hz notch.
func DefaultConfig() Config {
	var c Config
	c.SampleRate = 100_000
	c.Duration = 0.02
	c.Seed = 1

	c.Carrier.Freq = 10_000
	c.Carrier.Amplitude = 1.0

	c.Modulation.Enable = true
	c.Modulation.BitRate = 1000
	c.Modulation.OffRatio = 0.1

	c.Noise.MainsFreq = 50
	c.Noise.MainsAmplitude = 0.5
	c.Noise.Sigma = 0.2
	c.Noise.ImpulseProb = 0.0125
	c.Noise.ImpulseSigma = 1.6

	c.Notch.Freq = 50
	c.Notch.Q = 30

	c.Analysis.SegmentLength = 1024
	c.Analysis.Overlap = 0.5
	c.Analysis.Bandwidth = 2000
	c.Analysis.Harmonics = 5
	return c
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks physical consistency before a run starts. Violations are
// reported as ConfigError for the caller to surface and correct.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return signal.ConfigError{Param: "sample_rate", Reason: "must be positive"}
	}
	if c.Duration <= 0 {
		return signal.ConfigError{Param: "duration", Reason: "must be positive"}
	}
	if int(c.Duration*c.SampleRate) < 2 {
		return signal.ConfigError{Param: "duration", Reason: "would produce fewer than 2 samples"}
	}
	if c.Carrier.Freq <= 0 || c.Carrier.Freq >= c.SampleRate/2 {
		return signal.ConfigError{Param: "carrier.freq", Reason: "must lie strictly between 0 and the Nyquist frequency"}
	}
	if c.Modulation.Enable && c.Modulation.BitRate <= 0 {
		return signal.ConfigError{Param: "modulation.bit_rate", Reason: "must be positive when modulation is enabled"}
	}
	if c.Noise.Sigma < 0 {
		return signal.ConfigError{Param: "noise.sigma", Reason: "must not be negative"}
	}
	if c.Noise.ImpulseProb < 0 || c.Noise.ImpulseProb > 1 {
		return signal.ConfigError{Param: "noise.impulse_prob", Reason: "must lie in [0, 1]"}
	}
	if c.Notch.Freq <= 0 || c.Notch.Freq >= c.SampleRate/2 {
		return signal.ConfigError{Param: "notch.freq", Reason: "must lie strictly between 0 and the Nyquist frequency"}
	}
	if c.Notch.Q <= 0 {
		return signal.ConfigError{Param: "notch.q", Reason: "must be positive"}
	}
	if c.Analysis.Bandwidth <= 0 {
		return signal.ConfigError{Param: "analysis.bandwidth", Reason: "must be positive"}
	}
	if c.Analysis.Overlap < 0 || c.Analysis.Overlap >= 1 {
		return signal.ConfigError{Param: "analysis.overlap", Reason: "must lie in [0, 1)"}
	}
	return nil
}
