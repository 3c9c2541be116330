package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/challenge"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/gradient"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
)

// FourTermShift grades the four-term parameter-shift rule on a circuit
// containing a controlled rotation: RY(w₀) on wire 0 followed by CRY(w₁)
// from wire 0 to wire 1, measuring ⟨Z₁⟩. The answer is the gradient with
// respect to both angles.
type FourTermShift struct{}

func (FourTermShift) Name() string  { return "four-term-shift" }
func (FourTermShift) Title() string { return "Gradients: a four-term parameter-shift rule" }

func (FourTermShift) Tolerance() float64 { return 1e-4 }

func (FourTermShift) Cases() []challenge.Case {
	return []challenge.Case{
		{
			Input:    `{"params": [1.23, 0.6]}`,
			Expected: `[-0.0823096135, -0.1879588282]`,
		},
		{
			Input:    `{"params": [2.5, -1.2]}`,
			Expected: `[-0.1908055609, 0.8393681246]`,
		},
	}
}

func (FourTermShift) Run(input json.RawMessage) (any, error) {
	var in struct {
		Params []float64 `json:"params"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, err
	}
	if len(in.Params) != 2 {
		return nil, fmt.Errorf("challenge: want 2 params, got %d", len(in.Params))
	}

	expval := func(params []float64) (float64, error) {
		c := qsim.NewCircuit(2).RY(params[0], 0).CRY(params[1], 0, 1)
		s, err := c.Run()
		if err != nil {
			return 0, err
		}
		return s.Expectation(qsim.SingleZ(2, 1))
	}

	return gradient.Gradient(expval, in.Params, []gradient.Rule{gradient.FourTerm, gradient.FourTerm})
}
