// Package gradient computes analytic derivatives of circuit expectation
// values with parameter-shift rules.
package gradient

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownRule indicates a shift rule the package does not implement.
var ErrUnknownRule = errors.New("gradient: unknown shift rule")

// EvalFunc maps a parameter vector to an expectation value.
type EvalFunc func(params []float64) (float64, error)

// Rule selects the shift rule for one parameter.
type Rule int

const (
	// TwoTerm is the standard rule for gates generated by a Pauli
	// (RX, RY, RZ): f'(θ) = [f(θ+π/2) − f(θ−π/2)] / 2.
	TwoTerm Rule = iota

	// FourTerm handles controlled rotations, whose generator has eigenvalue
	// gaps of both 1/2 and 1:
	//
	//	f'(θ) = c₊[f(θ+π/2) − f(θ−π/2)] − c₋[f(θ+3π/2) − f(θ−3π/2)]
	//
	// with c± = (√2 ± 1) / (4√2).
	FourTerm
)

func shifted(f EvalFunc, params []float64, i int, delta float64) (float64, error) {
	p := make([]float64, len(params))
	copy(p, params)
	p[i] += delta
	return f(p)
}

// Partial computes the derivative of f with respect to parameter i.
func Partial(f EvalFunc, params []float64, i int, rule Rule) (float64, error) {
	switch rule {
	case TwoTerm:
		plus, err := shifted(f, params, i, math.Pi/2)
		if err != nil {
			return 0, err
		}
		minus, err := shifted(f, params, i, -math.Pi/2)
		if err != nil {
			return 0, err
		}
		return (plus - minus) / 2, nil

	case FourTerm:
		cPlus := (math.Sqrt2 + 1) / (4 * math.Sqrt2)
		cMinus := (math.Sqrt2 - 1) / (4 * math.Sqrt2)
		var vals [4]float64
		for k, delta := range []float64{math.Pi / 2, -math.Pi / 2, 3 * math.Pi / 2, -3 * math.Pi / 2} {
			v, err := shifted(f, params, i, delta)
			if err != nil {
				return 0, err
			}
			vals[k] = v
		}
		return cPlus*(vals[0]-vals[1]) - cMinus*(vals[2]-vals[3]), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownRule, rule)
}

// Gradient computes all partials, selecting a rule per parameter.
// rules must have one entry per parameter.
func Gradient(f EvalFunc, params []float64, rules []Rule) ([]float64, error) {
	if len(rules) != len(params) {
		return nil, fmt.Errorf("gradient: %d rules for %d params", len(rules), len(params))
	}
	grad := make([]float64, len(params))
	for i := range params {
		g, err := Partial(f, params, i, rules[i])
		if err != nil {
			return nil, err
		}
		grad[i] = g
	}
	return grad, nil
}
