// Package mitigation implements zero-noise extrapolation: circuits are
// folded to amplify gate noise, and the expectation values measured at
// several noise scales are extrapolated back to the zero-noise limit.
package mitigation

import (
	"errors"
	"fmt"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
)

var (
	// ErrBadScale indicates a fold scale that is not an odd positive integer.
	ErrBadScale = errors.New("mitigation: scale factor must be an odd positive integer")

	// ErrBadFit indicates extrapolation input that cannot be fit.
	ErrBadFit = errors.New("mitigation: unusable extrapolation data")
)

// FoldGlobal returns the circuit U(U†U)^((k−1)/2) for odd scale k. On ideal
// hardware the folded circuit computes the same unitary; under gate-level
// noise its error grows with k, which is what ZNE exploits.
func FoldGlobal(c *qsim.Circuit, scale int) (*qsim.Circuit, error) {
	if scale < 1 || scale%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadScale, scale)
	}
	folded := qsim.NewCircuit(c.Qubits)
	folded.Append(c.Ops...)
	inv := c.Inverse()
	for i := 0; i < (scale-1)/2; i++ {
		folded.Append(inv.Ops...)
		folded.Append(c.Ops...)
	}
	return folded, nil
}

// FoldedExpectation evaluates Tr(Oρ) of the circuit folded at each scale,
// under depolarizing noise of strength p per touched wire.
func FoldedExpectation(c *qsim.Circuit, obs qsim.Observable, p float64, scales []int) ([]float64, error) {
	out := make([]float64, len(scales))
	for i, k := range scales {
		folded, err := FoldGlobal(c, k)
		if err != nil {
			return nil, err
		}
		d, err := qsim.EvolveNoisy(folded, p)
		if err != nil {
			return nil, err
		}
		e, err := d.Expectation(obs)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
