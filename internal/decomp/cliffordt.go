// Package decomp builds named unitaries out of restricted universal gate
// sets: the Clifford+T set {H, T, CNOT} and the {U3, CNOT} set.
//
// Each constructor returns the gate sequence as a [qsim.Circuit]; composing
// the circuit reproduces the target matrix exactly (no global-phase slack).
package decomp

import (
	"errors"
	"fmt"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
)

// ErrUnknownTarget indicates a target name with no registered decomposition.
var ErrUnknownTarget = errors.New("decomp: unknown target")

// CliffordTTargets lists the targets CliffordT can build.
func CliffordTTargets() []string {
	return []string{"pauli-x", "pauli-z", "s", "cz", "swap", "controlled-s"}
}

// CliffordT returns a circuit over {H, T, CNOT} whose matrix equals the
// named target.
//
// The single-qubit targets use T powers (T² = S, T⁴ = Z) and Hadamard
// conjugation (HZH = X). controlled-S comes from the phase-kickback
// identity (T⊗T)·CNOT·(I⊗T†)·CNOT with T† spelled as T⁷.
func CliffordT(target string) (*qsim.Circuit, error) {
	switch target {
	case "pauli-x":
		// X = H T⁴ H
		c := qsim.NewCircuit(1).H(0)
		repeatT(c, 0, 4)
		return c.H(0), nil

	case "pauli-z":
		// Z = T⁴
		return repeatT(qsim.NewCircuit(1), 0, 4), nil

	case "s":
		// S = T²
		return repeatT(qsim.NewCircuit(1), 0, 2), nil

	case "cz":
		// CZ = (I⊗H) CNOT (I⊗H)
		return qsim.NewCircuit(2).H(1).CNOT(0, 1).H(1), nil

	case "swap":
		return qsim.NewCircuit(2).CNOT(0, 1).CNOT(1, 0).CNOT(0, 1), nil

	case "controlled-s":
		// CS = (T⊗T) CNOT (I⊗T⁷) CNOT
		c := qsim.NewCircuit(2).T(0).T(1).CNOT(0, 1)
		repeatT(c, 1, 7)
		return c.CNOT(0, 1), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
}

func repeatT(c *qsim.Circuit, q, k int) *qsim.Circuit {
	for i := 0; i < k; i++ {
		c.T(q)
	}
	return c
}
