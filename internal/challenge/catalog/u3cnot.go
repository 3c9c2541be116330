package catalog

import (
	"encoding/json"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/challenge"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/decomp"
)

// U3CNOT grades universality of the {U3, CNOT} gate set, same scoring as
// CliffordT but with parametrized single-qubit rotations.
type U3CNOT struct{}

func (U3CNOT) Name() string  { return "u3-cnot" }
func (U3CNOT) Title() string { return "Universality: decompositions over {U3, CNOT}" }

func (U3CNOT) Tolerance() float64 { return 1e-5 }

func (U3CNOT) Cases() []challenge.Case {
	return []challenge.Case{
		{
			Input: `{"target": "hadamard"}`,
			Expected: `[[[0.7071067811865476,0],[0.7071067811865476,0]],
			            [[0.7071067811865476,0],[-0.7071067811865476,0]]]`,
		},
		{
			Input: `{"target": "controlled-hadamard"}`,
			Expected: `[[[1,0],[0,0],[0,0],[0,0]],
			            [[0,0],[1,0],[0,0],[0,0]],
			            [[0,0],[0,0],[0.7071067811865476,0],[0.7071067811865476,0]],
			            [[0,0],[0,0],[0.7071067811865476,0],[-0.7071067811865476,0]]]`,
		},
	}
}

func (U3CNOT) Run(input json.RawMessage) (any, error) {
	var in struct {
		Target string `json:"target"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, err
	}
	c, err := decomp.U3CNOT(in.Target)
	if err != nil {
		return nil, err
	}
	m, err := c.Matrix()
	if err != nil {
		return nil, err
	}
	return matrixJSON(m), nil
}
