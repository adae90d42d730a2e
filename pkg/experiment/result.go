package experiment

import (
	"Powerline/pkg/signal"
	"Powerline/pkg/spectral"
)

// Metrics bundles the scalar quality figures computed from one stage of the
// run. Stage labels the signal the figures describe.
type Metrics struct {
	Stage            string
	SNRBroadbandDB   float64
	SNRBandLimitedDB float64
	THDPercent       float64
}

// Result aggregates everything a single run produces. The caller owns it
// exclusively; the runner keeps no reference once the run is done.
type Result struct {
	Clean    signal.Buffer
	Noisy    signal.Buffer
	Filtered signal.Buffer

	CleanSpectrum    spectral.Spectrum
	NoisySpectrum    spectral.Spectrum
	FilteredSpectrum spectral.Spectrum

	// ResidualSpectrum is the spectrum of noisy minus clean. It reveals
	// low-level noise components sitting beside the strong carrier.
	ResidualSpectrum spectral.Spectrum

	NoisyPSD    spectral.Spectrum
	FilteredPSD spectral.Spectrum

	Before Metrics
	After  Metrics
}
