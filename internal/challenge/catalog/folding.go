package catalog

import (
	"encoding/json"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/challenge"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/mitigation"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
)

// GlobalFolding grades unitary folding: a fixed test circuit is folded at
// each requested scale factor and evaluated under depolarizing noise; the
// answer is ⟨Z⊗Z⟩ per scale. The expectation decays as folding amplifies
// the noise, which is the signal zero-noise extrapolation fits.
type GlobalFolding struct{}

func (GlobalFolding) Name() string  { return "global-folding" }
func (GlobalFolding) Title() string { return "Differentiable ZNE: global circuit folding" }

func (GlobalFolding) Tolerance() float64 { return 1e-2 }

func (GlobalFolding) Cases() []challenge.Case {
	return []challenge.Case{
		{
			Input:    `{"p": 0.02, "scale_factors": [1, 3, 5]}`,
			Expected: `[0.8493235786, 0.7419611481, 0.6481703314]`,
		},
	}
}

func (GlobalFolding) Run(input json.RawMessage) (any, error) {
	var in struct {
		P      float64 `json:"p"`
		Scales []int   `json:"scale_factors"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, err
	}

	c := qsim.NewCircuit(2).RY(0.9, 0).CNOT(0, 1).RX(0.4, 1)
	obs := qsim.Observable{{Coeff: 1, Word: "ZZ"}}

	return mitigation.FoldedExpectation(c, obs, in.P, in.Scales)
}
