package catalog

import (
	"encoding/json"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/challenge"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/decomp"
)

// CliffordT grades universality of the {H, T, CNOT} gate set: the named
// target unitary must be rebuilt from those gates alone, and the composed
// circuit matrix is compared entry-wise against the target.
type CliffordT struct{}

func (CliffordT) Name() string  { return "clifford-t" }
func (CliffordT) Title() string { return "Universality: decompositions over {H, T, CNOT}" }

func (CliffordT) Tolerance() float64 { return 1e-5 }

func (CliffordT) Cases() []challenge.Case {
	return []challenge.Case{
		{
			Input:    `{"target": "pauli-x"}`,
			Expected: `[[[0,0],[1,0]],[[1,0],[0,0]]]`,
		},
		{
			Input: `{"target": "cz"}`,
			Expected: `[[[1,0],[0,0],[0,0],[0,0]],
			            [[0,0],[1,0],[0,0],[0,0]],
			            [[0,0],[0,0],[1,0],[0,0]],
			            [[0,0],[0,0],[0,0],[-1,0]]]`,
		},
		{
			Input: `{"target": "controlled-s"}`,
			Expected: `[[[1,0],[0,0],[0,0],[0,0]],
			            [[0,0],[1,0],[0,0],[0,0]],
			            [[0,0],[0,0],[1,0],[0,0]],
			            [[0,0],[0,0],[0,0],[0,1]]]`,
		},
	}
}

func (CliffordT) Run(input json.RawMessage) (any, error) {
	var in struct {
		Target string `json:"target"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, err
	}
	c, err := decomp.CliffordT(in.Target)
	if err != nil {
		return nil, err
	}
	m, err := c.Matrix()
	if err != nil {
		return nil, err
	}
	return matrixJSON(m), nil
}
