// Package noise models the interference sources of a power line channel:
// mains hum, Gaussian background noise and sparse switching impulses.
package noise

import (
	"Powerline/pkg/signal"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultMainsFreq = 50.0

	// DefaultImpulseSigmaMul widens the impulse magnitude distribution
	// relative to the Gaussian background, applied when ImpulseSigma is 0.
	DefaultImpulseSigmaMul = 8.0
)

// Config holds the per-source noise parameters. All fields are taken
// literally, so an ImpulseProb of 0 really means no impulses.
type Config struct {
	MainsFreq      float64 // zero selects DefaultMainsFreq
	MainsAmplitude float64
	MainsPhase     float64

	Sigma float64 // standard deviation of the Gaussian background

	ImpulseProb  float64 // per-sample probability of an impulse
	ImpulseSigma float64 // impulse magnitude spread; zero selects DefaultImpulseSigmaMul*Sigma
}

// Model draws all noise components from a single seeded source, so a run is
// reproducible bit for bit under a fixed seed. A Model must not be shared
// across concurrent runs.
type Model struct {
	cfg     Config
	rng     *rand.Rand
	normal  distuv.Normal
	impulse distuv.Normal
}

func New(cfg Config, src rand.Source) *Model {
	if cfg.MainsFreq == 0 {
		cfg.MainsFreq = DefaultMainsFreq
	}
	if cfg.ImpulseSigma == 0 {
		cfg.ImpulseSigma = DefaultImpulseSigmaMul * cfg.Sigma
	}
	rng := rand.New(src)
	return &Model{
		cfg:     cfg,
		rng:     rng,
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: rng},
		impulse: distuv.Normal{Mu: 0, Sigma: cfg.ImpulseSigma, Src: rng},
	}
}

// MainsHum returns the narrowband power-frequency component. The phase is
// fixed by the config, not drawn from the source.
func (m *Model) MainsHum(n int, rate float64) signal.Buffer {
	return signal.CarrierConfig{
		Amplitude:  m.cfg.MainsAmplitude,
		Freq:       m.cfg.MainsFreq,
		Phase:      m.cfg.MainsPhase,
		SampleRate: rate,
		Size:       n,
	}.New()
}

// Gaussian returns iid zero-mean samples scaled by Sigma.
func (m *Model) Gaussian(n int, rate float64) signal.Buffer {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = m.cfg.Sigma * m.normal.Rand()
	}
	return signal.Buffer{Samples: samples, Rate: rate}
}

// Impulses returns sparse spikes. Each sample independently becomes an
// impulse with probability ImpulseProb; the magnitude comes from a zero-mean
// normal with the wider ImpulseSigma spread, so the sign is random too.
func (m *Model) Impulses(n int, rate float64) signal.Buffer {
	samples := make([]float64, n)
	if m.cfg.ImpulseProb > 0 {
		for i := range samples {
			if m.rng.Float64() < m.cfg.ImpulseProb {
				samples[i] = m.impulse.Rand()
			}
		}
	}
	return signal.Buffer{Samples: samples, Rate: rate}
}
