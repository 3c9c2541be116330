// Package vqe is a variational eigensolver for a toy two-qubit molecular
// Hamiltonian, with optional zero-noise-extrapolated energy estimates.
package vqe

import (
	"errors"
	"math"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/gradient"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/mitigation"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
)

// ErrNoScales indicates a mitigated run without scale factors.
var ErrNoScales = errors.New("vqe: no scale factors")

// Hydrogen-style Pauli-sum coefficients for the two-qubit problem.
const (
	coeffII = -1.05
	coeffZI = 0.39
	coeffIZ = 0.39
	coeffZZ = -0.01
	coeffXX = 0.18
)

// Hamiltonian returns the two-qubit problem Hamiltonian.
func Hamiltonian() qsim.Observable {
	return qsim.Observable{
		{Coeff: coeffII, Word: "II"},
		{Coeff: coeffZI, Word: "ZI"},
		{Coeff: coeffIZ, Word: "IZ"},
		{Coeff: coeffZZ, Word: "ZZ"},
		{Coeff: coeffXX, Word: "XX"},
	}
}

// ExactGroundEnergy diagonalizes the even-parity block analytically.
// The ansatz below spans exactly that block, so this is the target the
// optimizer should reach.
func ExactGroundEnergy() float64 {
	a := coeffII + coeffZI + coeffIZ + coeffZZ // ⟨00|H|00⟩
	b := coeffII - coeffZI - coeffIZ + coeffZZ // ⟨11|H|11⟩
	return (a+b)/2 - math.Hypot((a-b)/2, coeffXX)
}

// Ansatz prepares cos(θ/2)|00⟩ + sin(θ/2)|11⟩.
func Ansatz(theta float64) *qsim.Circuit {
	return qsim.NewCircuit(2).RY(theta, 0).CNOT(0, 1)
}

// Energy evaluates ⟨H⟩ of the ansatz under depolarizing noise p, with the
// circuit folded at the given scale (1 = no folding, 0 treated as 1).
func Energy(theta, p float64, scale int) (float64, error) {
	if scale < 1 {
		scale = 1
	}
	c, err := mitigation.FoldGlobal(Ansatz(theta), scale)
	if err != nil {
		return 0, err
	}
	d, err := qsim.EvolveNoisy(c, p)
	if err != nil {
		return 0, err
	}
	return d.Expectation(Hamiltonian())
}

// Optimizer is plain gradient descent driven by the two-term
// parameter-shift rule.
type Optimizer struct {
	LearningRate float64
	Steps        int
	Theta0       float64
}

// DefaultOptimizer matches the settings the challenges are graded with.
func DefaultOptimizer() Optimizer {
	return Optimizer{LearningRate: 0.4, Steps: 100, Theta0: 0}
}

// Trace records one optimization step for plotting.
type Trace struct {
	Step   int
	Theta  float64
	Energy float64
}

// Minimize runs gradient descent on the (possibly noisy) energy surface
// and returns the final angle. If observe is non-nil it is called after
// every step.
func (o Optimizer) Minimize(p float64, observe func(Trace)) (float64, error) {
	energyAt := func(params []float64) (float64, error) {
		return Energy(params[0], p, 1)
	}
	theta := o.Theta0
	for step := 0; step < o.Steps; step++ {
		g, err := gradient.Partial(energyAt, []float64{theta}, 0, gradient.TwoTerm)
		if err != nil {
			return 0, err
		}
		theta -= o.LearningRate * g
		if observe != nil {
			e, err := Energy(theta, p, 1)
			if err != nil {
				return 0, err
			}
			observe(Trace{Step: step + 1, Theta: theta, Energy: e})
		}
	}
	return theta, nil
}

// MitigatedResult is the outcome of an error-mitigated VQE run.
type MitigatedResult struct {
	Theta     float64
	Scales    []int
	Energies  []float64
	Mitigated float64
}

// RunMitigated optimizes on the noisy simulator, evaluates the folded
// energies at each scale factor, and Richardson-extrapolates them to the
// zero-noise limit.
func RunMitigated(p float64, scales []int, opt Optimizer) (*MitigatedResult, error) {
	if len(scales) == 0 {
		return nil, ErrNoScales
	}
	theta, err := opt.Minimize(p, nil)
	if err != nil {
		return nil, err
	}
	energies := make([]float64, len(scales))
	xs := make([]float64, len(scales))
	for i, k := range scales {
		e, err := Energy(theta, p, k)
		if err != nil {
			return nil, err
		}
		energies[i] = e
		xs[i] = float64(k)
	}
	mitigated, err := mitigation.RichardsonZero(xs, energies)
	if err != nil {
		return nil, err
	}
	return &MitigatedResult{Theta: theta, Scales: scales, Energies: energies, Mitigated: mitigated}, nil
}
