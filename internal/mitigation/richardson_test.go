package mitigation

import (
	"math"
	"testing"
)

func TestRichardsonZeroExactPolynomials(t *testing.T) {
	tests := []struct {
		name   string
		f      func(x float64) float64
		scales []float64
	}{
		{"linear", func(x float64) float64 { return 2 - 0.3*x }, []float64{1, 3}},
		{"quadratic", func(x float64) float64 { return -1.8 + 0.1*x + 0.02*x*x }, []float64{1, 3, 5}},
		{"cubic", func(x float64) float64 { return 0.5 - x + 0.25*x*x - 0.01*x*x*x }, []float64{1, 3, 5, 7}},
	}

	for _, tt := range tests {
		vals := make([]float64, len(tt.scales))
		for i, x := range tt.scales {
			vals[i] = tt.f(x)
		}
		got, err := RichardsonZero(tt.scales, vals)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		want := tt.f(0)
		if math.Abs(got-want) > 1e-10 {
			t.Errorf("%s: expected %f at zero, got %f", tt.name, want, got)
		}
	}
}

func TestRichardsonZeroBadInput(t *testing.T) {
	if _, err := RichardsonZero(nil, nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := RichardsonZero([]float64{1}, []float64{0.42}); err == nil {
		t.Error("expected error for a single sample")
	}
	if _, err := RichardsonZero([]float64{1, 3}, []float64{0.5}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if _, err := RichardsonZero([]float64{1, 1}, []float64{0.5, 0.6}); err == nil {
		t.Error("expected error for repeated scales")
	}
}

func TestPolyFitZeroMatchesRichardson(t *testing.T) {
	// A full-degree least-squares fit interpolates, so it must agree with
	// the Lagrange extrapolation.
	scales := []float64{1, 3, 5}
	vals := []float64{-1.82, -1.74, -1.67}

	rich, err := RichardsonZero(scales, vals)
	if err != nil {
		t.Fatal(err)
	}
	fit, err := PolyFitZero(scales, vals, 2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rich-fit) > 1e-8 {
		t.Errorf("richardson %f vs polyfit %f", rich, fit)
	}
}

func TestPolyFitZeroLinearOverdetermined(t *testing.T) {
	// Noiseless linear data with more points than the degree needs.
	scales := []float64{1, 3, 5, 7, 9}
	vals := make([]float64, len(scales))
	for i, x := range scales {
		vals[i] = 1.5 - 0.2*x
	}
	got, err := PolyFitZero(scales, vals, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-1.5) > 1e-9 {
		t.Errorf("expected intercept 1.5, got %f", got)
	}
}
