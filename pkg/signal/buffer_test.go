package signal

import (
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	good := Buffer{Samples: []float64{0, 0.5, -0.5}, Rate: 100}
	if err := good.Validate(); err != nil {
		t.Errorf("valid buffer rejected: %v", err)
	}

	cases := []struct {
		name string
		buf  Buffer
	}{
		{"empty", Buffer{Rate: 100}},
		{"zero rate", Buffer{Samples: []float64{1}, Rate: 0}},
		{"negative rate", Buffer{Samples: []float64{1}, Rate: -8000}},
		{"nan sample", Buffer{Samples: []float64{0, math.NaN()}, Rate: 100}},
		{"inf sample", Buffer{Samples: []float64{math.Inf(1)}, Rate: 100}},
	}
	for _, c := range cases {
		if err := c.buf.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Buffer{Samples: []float64{1, 2, 3}, Rate: 100}
	clone := orig.Clone()
	clone.Samples[0] = 99
	if orig.Samples[0] != 1 {
		t.Error("mutating the clone changed the original")
	}
}

func TestPower(t *testing.T) {
	buf := Buffer{Samples: []float64{1, -1, 1, -1}, Rate: 100}
	if got := buf.Power(); got != 1 {
		t.Errorf("expected power 1, got %v", got)
	}
}
