package decomp

import (
	"fmt"
	"math"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
)

// U3CNOTTargets lists the targets U3CNOT can build.
func U3CNOTTargets() []string {
	return []string{"hadamard", "pauli-y", "controlled-hadamard", "controlled-y", "cz"}
}

// U3CNOT returns a circuit over {U3, CNOT} whose matrix equals the named
// target. RY(θ) is spelled U3(θ, 0, 0) and the phase gate U3(0, 0, λ).
//
// controlled-hadamard uses basis-change conjugation: RY(−π/4)·X·RY(π/4) is
// exactly (X+Z)/√2 = H, so sandwiching the CNOT between target-side Y
// rotations turns it into a controlled H with no leftover phase.
func U3CNOT(target string) (*qsim.Circuit, error) {
	switch target {
	case "hadamard":
		return qsim.NewCircuit(1).U3(math.Pi/2, 0, math.Pi, 0), nil

	case "pauli-y":
		// Y = U3(π, π/2, π/2)
		return qsim.NewCircuit(1).U3(math.Pi, math.Pi/2, math.Pi/2, 0), nil

	case "controlled-hadamard":
		return qsim.NewCircuit(2).
			U3(math.Pi/4, 0, 0, 1).
			CNOT(0, 1).
			U3(-math.Pi/4, 0, 0, 1), nil

	case "controlled-y":
		// CY = (I⊗S) CNOT (I⊗S†), with S = U3(0, 0, π/2)
		return qsim.NewCircuit(2).
			U3(0, 0, -math.Pi/2, 1).
			CNOT(0, 1).
			U3(0, 0, math.Pi/2, 1), nil

	case "cz":
		// CZ = (I⊗H) CNOT (I⊗H) with H as a U3
		return qsim.NewCircuit(2).
			U3(math.Pi/2, 0, math.Pi, 1).
			CNOT(0, 1).
			U3(math.Pi/2, 0, math.Pi, 1), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
}
