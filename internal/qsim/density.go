package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Density is a density-matrix register supporting noise channels.
type Density struct {
	Qubits int
	Rho    Matrix
}

// NewDensity returns |0...0⟩⟨0...0| on n qubits.
func NewDensity(n int) *Density {
	rho := NewMatrix(1<<n, 1<<n)
	rho[0][0] = 1
	return &Density{Qubits: n, Rho: rho}
}

// DensityFromState returns the pure density |ψ⟩⟨ψ|.
func DensityFromState(s *State) *Density {
	return &Density{Qubits: s.Qubits, Rho: Outer(s.Amps, s.Amps)}
}

// Apply evolves ρ → UρU† for one gate.
func (d *Density) Apply(op Op) error {
	u, err := op.Matrix(d.Qubits)
	if err != nil {
		return err
	}
	d.Rho = u.Mul(d.Rho).Mul(u.Dagger())
	return nil
}

// applyKraus replaces ρ with Σ KᵢρKᵢ† for single-qubit Kraus operators
// acting on wire q.
func (d *Density) applyKraus(q int, ks []Matrix) error {
	if q < 0 || q >= d.Qubits {
		return fmt.Errorf("%w: qubit %d on %d-qubit register", ErrQubitRange, q, d.Qubits)
	}
	out := NewMatrix(len(d.Rho), len(d.Rho))
	for _, k := range ks {
		km := embedSingle(k, q, d.Qubits)
		out = out.Add(km.Mul(d.Rho).Mul(km.Dagger()))
	}
	d.Rho = out
	return nil
}

// Depolarize applies the depolarizing channel of strength p to wire q:
// with probability p the qubit is replaced by X, Y or Z noise in equal
// parts (Kraus form √(1-p)·I, √(p/3)·X, √(p/3)·Y, √(p/3)·Z).
func (d *Density) Depolarize(q int, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: p=%v", ErrBadProbability, p)
	}
	if p == 0 {
		return nil
	}
	k0 := complex(math.Sqrt(1-p), 0)
	k1 := complex(math.Sqrt(p/3), 0)
	return d.applyKraus(q, []Matrix{
		Identity(2).Scale(k0),
		XGate().Scale(k1),
		YGate().Scale(k1),
		ZGate().Scale(k1),
	})
}

// BitFlip applies X with probability p on wire q.
func (d *Density) BitFlip(q int, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: p=%v", ErrBadProbability, p)
	}
	return d.applyKraus(q, []Matrix{
		Identity(2).Scale(complex(math.Sqrt(1-p), 0)),
		XGate().Scale(complex(math.Sqrt(p), 0)),
	})
}

// PhaseFlip applies Z with probability p on wire q.
func (d *Density) PhaseFlip(q int, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: p=%v", ErrBadProbability, p)
	}
	return d.applyKraus(q, []Matrix{
		Identity(2).Scale(complex(math.Sqrt(1-p), 0)),
		ZGate().Scale(complex(math.Sqrt(p), 0)),
	})
}

// AmplitudeDamp applies amplitude damping with decay gamma on wire q.
func (d *Density) AmplitudeDamp(q int, gamma float64) error {
	if gamma < 0 || gamma > 1 {
		return fmt.Errorf("%w: gamma=%v", ErrBadProbability, gamma)
	}
	k0 := Matrix{{1, 0}, {0, complex(math.Sqrt(1-gamma), 0)}}
	k1 := Matrix{{0, complex(math.Sqrt(gamma), 0)}, {0, 0}}
	return d.applyKraus(q, []Matrix{k0, k1})
}

// Expectation returns Tr(Oρ).
func (d *Density) Expectation(obs Observable) (float64, error) {
	m, err := obs.Matrix(d.Qubits)
	if err != nil {
		return 0, err
	}
	return real(m.Mul(d.Rho).Trace()), nil
}

// FidelityPure returns ⟨ψ|ρ|ψ⟩, the fidelity against a pure state.
func (d *Density) FidelityPure(psi *State) float64 {
	var f complex128
	for i, a := range psi.Amps {
		for j, b := range psi.Amps {
			f += cmplx.Conj(a) * d.Rho[i][j] * b
		}
	}
	return real(f)
}

// Purity returns Tr(ρ²).
func (d *Density) Purity() float64 {
	return real(d.Rho.Mul(d.Rho).Trace())
}

// Trace returns Tr(ρ), which stays 1 for trace-preserving evolution.
func (d *Density) Trace() float64 {
	return real(d.Rho.Trace())
}

// EvolveNoisy runs the circuit on the density engine, inserting a
// depolarizing channel of strength p on every wire each gate touches.
// p = 0 reproduces the ideal evolution.
func EvolveNoisy(c *Circuit, p float64) (*Density, error) {
	d := NewDensity(c.Qubits)
	for _, op := range c.Ops {
		if err := d.Apply(op); err != nil {
			return nil, err
		}
		for _, q := range op.Qubits {
			if err := d.Depolarize(q, p); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}
