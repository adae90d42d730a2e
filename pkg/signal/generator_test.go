package signal

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"golang.org/x/exp/rand"
)

const (
	SAMPLE_RATE  = 100_000.0
	CARRIER_FREQ = 10_000.0
	DURATION     = 0.02
	BIT_RATE     = 1000.0
	OFF_RATIO    = 0.1
	SEED         = 42
)

func TestGenerateSampleCount(t *testing.T) {
	buf, err := Generate(GeneratorConfig{
		CarrierFreq: CARRIER_FREQ,
		SampleRate:  SAMPLE_RATE,
		Duration:    DURATION,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 2000 {
		t.Errorf("expected 2000 samples, got %d", buf.Len())
	}
	if buf.Rate != SAMPLE_RATE {
		t.Errorf("expected rate %v, got %v", SAMPLE_RATE, buf.Rate)
	}
}

func TestGenerateCarrierValues(t *testing.T) {
	buf, err := Generate(GeneratorConfig{
		CarrierFreq: CARRIER_FREQ,
		Amplitude:   0.8,
		SampleRate:  SAMPLE_RATE,
		Duration:    DURATION,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{0, 1, 17, 500, 1999} {
		want := 0.8 * math.Sin(2*math.Pi*CARRIER_FREQ*float64(i)/SAMPLE_RATE)
		if math.Abs(buf.Samples[i]-want) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, want, buf.Samples[i])
		}
	}
}

func TestGenerateNyquistRejected(t *testing.T) {
	_, err := Generate(GeneratorConfig{
		CarrierFreq: SAMPLE_RATE / 2,
		SampleRate:  SAMPLE_RATE,
		Duration:    DURATION,
	}, nil)
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestGenerateShortDurationRejected(t *testing.T) {
	_, err := Generate(GeneratorConfig{
		CarrierFreq: CARRIER_FREQ,
		SampleRate:  SAMPLE_RATE,
		Duration:    1 / SAMPLE_RATE,
	}, nil)
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestGenerateASKGating(t *testing.T) {
	rng := rand.New(rand.NewSource(SEED))
	modulated, err := Generate(GeneratorConfig{
		CarrierFreq: CARRIER_FREQ,
		SampleRate:  SAMPLE_RATE,
		Duration:    DURATION,
		Modulated:   true,
		BitRate:     BIT_RATE,
		OffRatio:    OFF_RATIO,
	}, rng)
	if err != nil {
		t.Fatal(err)
	}

	carrier := CarrierConfig{
		Amplitude:  1,
		Freq:       CARRIER_FREQ,
		SampleRate: SAMPLE_RATE,
		Size:       modulated.Len(),
	}.New()

	samplePerBit := int(SAMPLE_RATE / BIT_RATE)
	sawOn, sawOff := false, false
	for start := 0; start < modulated.Len(); start += samplePerBit {
		// pick a sample inside the bit where the carrier is far from zero
		ref := -1
		for i := start; i < start+samplePerBit && i < modulated.Len(); i++ {
			if math.Abs(carrier.Samples[i]) > 0.5 {
				ref = i
				break
			}
		}
		if ref < 0 {
			t.Fatalf("no strong carrier sample in bit starting at %d", start)
		}
		level := modulated.Samples[ref] / carrier.Samples[ref]
		switch {
		case math.Abs(level-1) < 1e-9:
			sawOn = true
		case math.Abs(level-OFF_RATIO) < 1e-9:
			sawOff = true
		default:
			t.Fatalf("bit at %d has gate level %v, expected %v or 1", start, level, OFF_RATIO)
		}
		// the gate must hold for the whole bit
		for i := start; i < start+samplePerBit && i < modulated.Len(); i++ {
			if math.Abs(modulated.Samples[i]-level*carrier.Samples[i]) > 1e-9 {
				t.Fatalf("gate level changes inside bit starting at %d", start)
			}
		}
	}
	if !sawOn || !sawOff {
		t.Error("expected both on and off bits in the sequence")
	}
}

func TestGenerateReproducible(t *testing.T) {
	cfg := GeneratorConfig{
		CarrierFreq: CARRIER_FREQ,
		SampleRate:  SAMPLE_RATE,
		Duration:    DURATION,
		Modulated:   true,
		BitRate:     BIT_RATE,
	}
	a, err := Generate(cfg, rand.New(rand.NewSource(SEED)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(cfg, rand.New(rand.NewSource(SEED)))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different signals")
	}
}
