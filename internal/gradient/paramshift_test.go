package gradient

import (
	"math"
	"testing"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
)

func ryExpval(params []float64) (float64, error) {
	s, err := qsim.NewCircuit(1).RY(params[0], 0).Run()
	if err != nil {
		return 0, err
	}
	return s.Expectation(qsim.SingleZ(1, 0))
}

func cryExpval(params []float64) (float64, error) {
	s, err := qsim.NewCircuit(2).RY(params[0], 0).CRY(params[1], 0, 1).Run()
	if err != nil {
		return 0, err
	}
	return s.Expectation(qsim.SingleZ(2, 1))
}

func TestTwoTermRule(t *testing.T) {
	// <Z> after RY(theta) is cos(theta), so the gradient is -sin(theta).
	for _, theta := range []float64{0, 0.3, -1.2, math.Pi / 2, 2.8} {
		g, err := Partial(ryExpval, []float64{theta}, 0, TwoTerm)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(g-(-math.Sin(theta))) > 1e-12 {
			t.Errorf("theta %f: expected %f, got %f", theta, -math.Sin(theta), g)
		}
	}
}

func TestFourTermRuleMatchesFiniteDifference(t *testing.T) {
	tests := [][]float64{
		{1.23, 0.6},
		{2.5, -1.2},
		{0.1, 3.0},
	}

	for _, params := range tests {
		for i := range params {
			shift, err := Partial(cryExpval, params, i, FourTerm)
			if err != nil {
				t.Fatal(err)
			}
			fd, err := CentralDiff(cryExpval, params, i, 1e-5)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(shift-fd) > 1e-6 {
				t.Errorf("params %v, index %d: shift %f vs central %f", params, i, shift, fd)
			}
		}
	}
}

func TestFourTermReducesToTwoTermOnPlainRotation(t *testing.T) {
	// On an uncontrolled rotation both rules give the exact derivative.
	for _, theta := range []float64{0.4, 1.9} {
		two, err := Partial(ryExpval, []float64{theta}, 0, TwoTerm)
		if err != nil {
			t.Fatal(err)
		}
		four, err := Partial(ryExpval, []float64{theta}, 0, FourTerm)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(two-four) > 1e-12 {
			t.Errorf("theta %f: two-term %f vs four-term %f", theta, two, four)
		}
	}
}

func TestGradient(t *testing.T) {
	params := []float64{1.23, 0.6}
	g, err := Gradient(cryExpval, params, []Rule{FourTerm, FourTerm})
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 2 {
		t.Fatalf("expected 2 partials, got %d", len(g))
	}

	// Closed form: <Z_1> = (1 + cos(p0) + (1 - cos(p0)) cos(p1)) / 2.
	p0, p1 := params[0], params[1]
	want0 := (-math.Sin(p0) + math.Sin(p0)*math.Cos(p1)) / 2
	want1 := -(1 - math.Cos(p0)) * math.Sin(p1) / 2
	if math.Abs(g[0]-want0) > 1e-10 {
		t.Errorf("partial 0: expected %f, got %f", want0, g[0])
	}
	if math.Abs(g[1]-want1) > 1e-10 {
		t.Errorf("partial 1: expected %f, got %f", want1, g[1])
	}
}

func TestGradientRuleMismatch(t *testing.T) {
	_, err := Gradient(cryExpval, []float64{1, 2}, []Rule{TwoTerm})
	if err == nil {
		t.Error("expected error when rules and params disagree in length")
	}
}

func TestUnknownRule(t *testing.T) {
	_, err := Partial(ryExpval, []float64{0.5}, 0, Rule(99))
	if err == nil {
		t.Error("expected error for unknown rule")
	}
}
