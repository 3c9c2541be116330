package catalog

import (
	"encoding/json"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/challenge"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/vqe"
)

// ZNEVQE grades the error-mitigated eigensolver: optimize the ansatz on
// the noisy simulator, evaluate the folded energies at each scale factor,
// and Richardson-extrapolate to the zero-noise limit. The answer is the
// mitigated ground-state energy.
type ZNEVQE struct{}

func (ZNEVQE) Name() string  { return "zne-vqe" }
func (ZNEVQE) Title() string { return "Differentiable ZNE: error-mitigated VQE" }

func (ZNEVQE) Tolerance() float64 { return 1e-2 }

func (ZNEVQE) Cases() []challenge.Case {
	return []challenge.Case{
		{
			Input:    `{"p": 0.01, "scale_factors": [1, 3, 5]}`,
			Expected: `-1.8626684349`,
		},
		{
			Input:    `{"p": 0.04, "scale_factors": [1, 3, 5]}`,
			Expected: `-1.8666849557`,
		},
	}
}

func (ZNEVQE) Run(input json.RawMessage) (any, error) {
	var in struct {
		P      float64 `json:"p"`
		Scales []int   `json:"scale_factors"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, err
	}
	res, err := vqe.RunMitigated(in.P, in.Scales, vqe.DefaultOptimizer())
	if err != nil {
		return nil, err
	}
	return res.Mitigated, nil
}
