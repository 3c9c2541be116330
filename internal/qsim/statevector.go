package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
)

// State is a pure statevector on a fixed register.
type State struct {
	Qubits int
	Amps   []complex128
}

// ZeroState returns |0...0⟩ on n qubits.
func ZeroState(n int) *State {
	s := &State{Qubits: n, Amps: make([]complex128, 1<<n)}
	s.Amps[0] = 1
	return s
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	amps := make([]complex128, len(s.Amps))
	copy(amps, s.Amps)
	return &State{Qubits: s.Qubits, Amps: amps}
}

// Norm returns the 2-norm of the amplitude vector.
func (s *State) Norm() float64 {
	sum := 0.0
	for _, a := range s.Amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// Apply evolves the state by one gate in place. Single-qubit gates and
// controlled single-qubit gates are applied by amplitude-pair updates;
// SWAP permutes amplitudes directly.
func (s *State) Apply(op Op) error {
	n := s.Qubits
	for _, q := range op.Qubits {
		if q < 0 || q >= n {
			return fmt.Errorf("%w: qubit %d on %d-qubit register", ErrQubitRange, q, n)
		}
	}
	switch {
	case op.Gate == GateSWAP:
		a, b := bitMask(op.Qubits[0], n), bitMask(op.Qubits[1], n)
		for i := range s.Amps {
			// visit each swapped pair once
			if i&a != 0 && i&b == 0 {
				j := i ^ a ^ b
				s.Amps[i], s.Amps[j] = s.Amps[j], s.Amps[i]
			}
		}
		return nil

	case op.IsControlled():
		u, err := controlledTarget(op)
		if err != nil {
			return err
		}
		cm, tm := bitMask(op.Qubits[0], n), bitMask(op.Qubits[1], n)
		for i := range s.Amps {
			if i&cm != 0 && i&tm == 0 {
				j := i | tm
				a0, a1 := s.Amps[i], s.Amps[j]
				s.Amps[i] = u[0][0]*a0 + u[0][1]*a1
				s.Amps[j] = u[1][0]*a0 + u[1][1]*a1
			}
		}
		return nil

	default:
		u, err := singleQubitMatrix(op)
		if err != nil {
			return err
		}
		tm := bitMask(op.Qubits[0], n)
		for i := range s.Amps {
			if i&tm == 0 {
				j := i | tm
				a0, a1 := s.Amps[i], s.Amps[j]
				s.Amps[i] = u[0][0]*a0 + u[0][1]*a1
				s.Amps[j] = u[1][0]*a0 + u[1][1]*a1
			}
		}
		return nil
	}
}

// Expectation returns ⟨ψ|O|ψ⟩ for a Pauli-sum observable.
func (s *State) Expectation(obs Observable) (float64, error) {
	m, err := obs.Matrix(s.Qubits)
	if err != nil {
		return 0, err
	}
	ov := m.MulVec(s.Amps)
	var e complex128
	for i, a := range s.Amps {
		e += cmplx.Conj(a) * ov[i]
	}
	return real(e), nil
}

// Overlap returns ⟨s|other⟩.
func (s *State) Overlap(other *State) complex128 {
	var o complex128
	for i, a := range s.Amps {
		o += cmplx.Conj(a) * other.Amps[i]
	}
	return o
}

// Fidelity returns |⟨s|other⟩|².
func (s *State) Fidelity(other *State) float64 {
	o := s.Overlap(other)
	return real(o)*real(o) + imag(o)*imag(o)
}
