package catalog

import (
	"encoding/json"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/challenge"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
)

// NoisyFidelity grades density-matrix noise modelling: a Bell-pair circuit
// with a depolarizing channel of strength p after every gate, scored by the
// fidelity of the noisy state against the ideal one.
type NoisyFidelity struct{}

func (NoisyFidelity) Name() string  { return "noisy-fidelity" }
func (NoisyFidelity) Title() string { return "Noise: fidelity of a depolarized Bell pair" }

func (NoisyFidelity) Tolerance() float64 { return 1e-5 }

func (NoisyFidelity) Cases() []challenge.Case {
	return []challenge.Case{
		{Input: `{"p": 0.05}`, Expected: `0.8742962963`},
		{Input: `{"p": 0.2}`, Expected: `0.5816296296`},
	}
}

func (NoisyFidelity) Run(input json.RawMessage) (any, error) {
	var in struct {
		P float64 `json:"p"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, err
	}

	c := qsim.NewCircuit(2).H(0).CNOT(0, 1)

	ideal, err := c.Run()
	if err != nil {
		return nil, err
	}
	noisy, err := qsim.EvolveNoisy(c, in.P)
	if err != nil {
		return nil, err
	}
	return noisy.FidelityPure(ideal), nil
}
