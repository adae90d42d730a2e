package channel

import (
	"errors"
	"math"
	"testing"

	"Powerline/pkg/signal"
)

func TestCombine(t *testing.T) {
	clean := signal.Buffer{Samples: []float64{1, 2, 3}, Rate: 100}
	n1 := signal.Buffer{Samples: []float64{0.1, 0.2, 0.3}, Rate: 100}
	n2 := signal.Buffer{Samples: []float64{-1, -2, -3}, Rate: 100}

	out, err := Combine(clean, n1, n2)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.1, 0.2, 0.3}
	for i := range want {
		if math.Abs(out.Samples[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], out.Samples[i])
		}
	}
	// inputs must stay untouched
	if clean.Samples[0] != 1 {
		t.Error("combine mutated the clean input")
	}
}

func TestCombineLengthMismatch(t *testing.T) {
	clean := signal.Buffer{Samples: []float64{1, 2, 3}, Rate: 100}
	short := signal.Buffer{Samples: []float64{1, 2}, Rate: 100}

	_, err := Combine(clean, short)
	var shapeErr signal.ShapeMismatchError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
}

func TestCombineRateMismatch(t *testing.T) {
	clean := signal.Buffer{Samples: []float64{1, 2, 3}, Rate: 100}
	other := signal.Buffer{Samples: []float64{1, 2, 3}, Rate: 200}

	_, err := Combine(clean, other)
	var shapeErr signal.ShapeMismatchError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
}

func TestResidual(t *testing.T) {
	reference := signal.Buffer{Samples: []float64{1, 2, 3}, Rate: 100}
	observed := signal.Buffer{Samples: []float64{1.5, 2.5, 2.5}, Rate: 100}

	out, err := Residual(observed, reference)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.5, 0.5, -0.5}
	for i := range want {
		if math.Abs(out.Samples[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], out.Samples[i])
		}
	}
}
