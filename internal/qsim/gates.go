package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Gate names understood by the simulator.
const (
	GateI     = "i"
	GateX     = "x"
	GateY     = "y"
	GateZ     = "z"
	GateH     = "h"
	GateS     = "s"
	GateSdg   = "sdg"
	GateT     = "t"
	GateTdg   = "tdg"
	GateRX    = "rx"
	GateRY    = "ry"
	GateRZ    = "rz"
	GatePhase = "phase"
	GateU3    = "u3"
	GateCNOT  = "cnot"
	GateCZ    = "cz"
	GateSWAP  = "swap"
	GateCRX   = "crx"
	GateCRY   = "cry"
	GateCRZ   = "crz"
)

// Op is one gate application: a named gate, the wires it acts on, and any
// rotation angles. Controlled gates list the control wire first.
type Op struct {
	Gate   string
	Qubits []int
	Params []float64
}

func (op Op) String() string {
	if len(op.Params) == 0 {
		return fmt.Sprintf("%s%v", op.Gate, op.Qubits)
	}
	return fmt.Sprintf("%s%v%v", op.Gate, op.Qubits, op.Params)
}

// XGate returns the Pauli-X matrix.
func XGate() Matrix { return Matrix{{0, 1}, {1, 0}} }

// YGate returns the Pauli-Y matrix.
func YGate() Matrix { return Matrix{{0, -1i}, {1i, 0}} }

// ZGate returns the Pauli-Z matrix.
func ZGate() Matrix { return Matrix{{1, 0}, {0, -1}} }

// HGate returns the Hadamard matrix.
func HGate() Matrix {
	h := complex(1/math.Sqrt2, 0)
	return Matrix{{h, h}, {h, -h}}
}

// SGate returns the phase gate diag(1, i).
func SGate() Matrix { return Matrix{{1, 0}, {0, 1i}} }

// SdgGate returns the adjoint of S.
func SdgGate() Matrix { return Matrix{{1, 0}, {0, -1i}} }

// TGate returns diag(1, e^{iπ/4}).
func TGate() Matrix { return Matrix{{1, 0}, {0, cmplx.Exp(1i * math.Pi / 4)}} }

// TdgGate returns the adjoint of T.
func TdgGate() Matrix { return Matrix{{1, 0}, {0, cmplx.Exp(-1i * math.Pi / 4)}} }

// RXGate returns exp(-iθX/2).
func RXGate(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return Matrix{{c, s}, {s, c}}
}

// RYGate returns exp(-iθY/2).
func RYGate(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Matrix{{c, -s}, {s, c}}
}

// RZGate returns exp(-iθZ/2).
func RZGate(theta float64) Matrix {
	return Matrix{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

// PhaseGate returns diag(1, e^{iλ}).
func PhaseGate(lambda float64) Matrix {
	return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, lambda))}}
}

// U3Gate returns the generic single-qubit rotation
//
//	U3(θ,φ,λ) = [[cos(θ/2), -e^{iλ} sin(θ/2)],
//	             [e^{iφ} sin(θ/2), e^{i(φ+λ)} cos(θ/2)]]
func U3Gate(theta, phi, lambda float64) Matrix {
	c := math.Cos(theta / 2)
	s := math.Sin(theta / 2)
	return Matrix{
		{complex(c, 0), -cmplx.Exp(complex(0, lambda)) * complex(s, 0)},
		{cmplx.Exp(complex(0, phi)) * complex(s, 0), cmplx.Exp(complex(0, phi+lambda)) * complex(c, 0)},
	}
}

// singleQubitMatrix resolves a 1-qubit gate name to its 2x2 matrix.
func singleQubitMatrix(op Op) (Matrix, error) {
	switch op.Gate {
	case GateI:
		return Identity(2), nil
	case GateX:
		return XGate(), nil
	case GateY:
		return YGate(), nil
	case GateZ:
		return ZGate(), nil
	case GateH:
		return HGate(), nil
	case GateS:
		return SGate(), nil
	case GateSdg:
		return SdgGate(), nil
	case GateT:
		return TGate(), nil
	case GateTdg:
		return TdgGate(), nil
	case GateRX:
		return RXGate(op.Params[0]), nil
	case GateRY:
		return RYGate(op.Params[0]), nil
	case GateRZ:
		return RZGate(op.Params[0]), nil
	case GatePhase:
		return PhaseGate(op.Params[0]), nil
	case GateU3:
		return U3Gate(op.Params[0], op.Params[1], op.Params[2]), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGate, op.Gate)
}

// controlledTarget resolves the target-side 2x2 matrix of a controlled gate.
func controlledTarget(op Op) (Matrix, error) {
	switch op.Gate {
	case GateCNOT:
		return XGate(), nil
	case GateCZ:
		return ZGate(), nil
	case GateCRX:
		return RXGate(op.Params[0]), nil
	case GateCRY:
		return RYGate(op.Params[0]), nil
	case GateCRZ:
		return RZGate(op.Params[0]), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGate, op.Gate)
}

// IsControlled reports whether the op is a controlled two-qubit gate.
func (op Op) IsControlled() bool {
	switch op.Gate {
	case GateCNOT, GateCZ, GateCRX, GateCRY, GateCRZ:
		return true
	}
	return false
}

// Dagger returns the adjoint op.
func (op Op) Dagger() Op {
	out := Op{Gate: op.Gate, Qubits: append([]int(nil), op.Qubits...)}
	switch op.Gate {
	case GateRX, GateRY, GateRZ, GateCRX, GateCRY, GateCRZ, GatePhase:
		out.Params = []float64{-op.Params[0]}
	case GateU3:
		out.Params = []float64{-op.Params[0], -op.Params[2], -op.Params[1]}
	case GateT:
		out.Gate = GateTdg
	case GateTdg:
		out.Gate = GateT
	case GateS:
		out.Gate = GateSdg
	case GateSdg:
		out.Gate = GateS
	default:
		// self-adjoint: i, x, y, z, h, cnot, cz, swap
		out.Params = append([]float64(nil), op.Params...)
	}
	return out
}

// bit position of qubit q in an n-qubit index (qubit 0 is the MSB).
func bitMask(q, n int) int { return 1 << (n - 1 - q) }

// Matrix returns the full 2^n unitary realizing op on an n-qubit register.
func (op Op) Matrix(n int) (Matrix, error) {
	for _, q := range op.Qubits {
		if q < 0 || q >= n {
			return nil, fmt.Errorf("%w: qubit %d on %d-qubit register", ErrQubitRange, q, n)
		}
	}
	dim := 1 << n
	switch {
	case op.Gate == GateSWAP:
		a, b := bitMask(op.Qubits[0], n), bitMask(op.Qubits[1], n)
		m := NewMatrix(dim, dim)
		for in := 0; in < dim; in++ {
			out := in
			if (in&a != 0) != (in&b != 0) {
				out = in ^ a ^ b
			}
			m[out][in] = 1
		}
		return m, nil

	case op.IsControlled():
		u, err := controlledTarget(op)
		if err != nil {
			return nil, err
		}
		cm, tm := bitMask(op.Qubits[0], n), bitMask(op.Qubits[1], n)
		m := NewMatrix(dim, dim)
		for in := 0; in < dim; in++ {
			if in&cm == 0 {
				m[in][in] = 1
				continue
			}
			bi := 0
			if in&tm != 0 {
				bi = 1
			}
			for bo := 0; bo < 2; bo++ {
				out := in &^ tm
				if bo == 1 {
					out |= tm
				}
				m[out][in] = u[bo][bi]
			}
		}
		return m, nil

	default:
		u, err := singleQubitMatrix(op)
		if err != nil {
			return nil, err
		}
		return embedSingle(u, op.Qubits[0], n), nil
	}
}

// embedSingle lifts a 2x2 matrix acting on qubit q into the full register.
func embedSingle(u Matrix, q, n int) Matrix {
	dim := 1 << n
	tm := bitMask(q, n)
	m := NewMatrix(dim, dim)
	for in := 0; in < dim; in++ {
		bi := 0
		if in&tm != 0 {
			bi = 1
		}
		for bo := 0; bo < 2; bo++ {
			out := in &^ tm
			if bo == 1 {
				out |= tm
			}
			m[out][in] = u[bo][bi]
		}
	}
	return m
}
