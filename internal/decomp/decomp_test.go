package decomp

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
)

func targetMatrix(name string) qsim.Matrix {
	inv := complex(1/math.Sqrt2, 0)
	switch name {
	case "pauli-x":
		return qsim.XGate()
	case "pauli-y":
		return qsim.YGate()
	case "pauli-z":
		return qsim.ZGate()
	case "hadamard":
		return qsim.HGate()
	case "s":
		return qsim.SGate()
	case "cz":
		return qsim.Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, -1},
		}
	case "swap":
		return qsim.Matrix{
			{1, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
		}
	case "controlled-s":
		return qsim.Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1i},
		}
	case "controlled-y":
		return qsim.Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, -1i},
			{0, 0, 1i, 0},
		}
	case "controlled-hadamard":
		return qsim.Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, inv, inv},
			{0, 0, inv, -inv},
		}
	}
	return nil
}

func TestCliffordTDecompositions(t *testing.T) {
	for _, target := range CliffordTTargets() {
		c, err := CliffordT(target)
		require.NoError(t, err, target)

		got, err := c.Matrix()
		require.NoError(t, err, target)

		want := targetMatrix(target)
		require.NotNil(t, want, target)
		assert.True(t, got.EqualWithin(want, 1e-9),
			"%s: deviation %e", target, got.MaxDeviation(want))
	}
}

func TestU3CNOTDecompositions(t *testing.T) {
	for _, target := range U3CNOTTargets() {
		c, err := U3CNOT(target)
		require.NoError(t, err, target)

		got, err := c.Matrix()
		require.NoError(t, err, target)

		want := targetMatrix(target)
		require.NotNil(t, want, target)
		assert.True(t, got.EqualWithin(want, 1e-9),
			"%s: deviation %e", target, got.MaxDeviation(want))
	}
}

func TestCliffordTGateSet(t *testing.T) {
	allowed := map[string]bool{qsim.GateH: true, qsim.GateT: true, qsim.GateCNOT: true}
	for _, target := range CliffordTTargets() {
		c, err := CliffordT(target)
		require.NoError(t, err, target)
		for _, op := range c.Ops {
			assert.True(t, allowed[op.Gate], "%s uses %s outside {H, T, CNOT}", target, op.Gate)
		}
	}
}

func TestU3CNOTGateSet(t *testing.T) {
	allowed := map[string]bool{qsim.GateU3: true, qsim.GateCNOT: true}
	for _, target := range U3CNOTTargets() {
		c, err := U3CNOT(target)
		require.NoError(t, err, target)
		for _, op := range c.Ops {
			assert.True(t, allowed[op.Gate], "%s uses %s outside {U3, CNOT}", target, op.Gate)
		}
	}
}

func TestNoGlobalPhaseSlack(t *testing.T) {
	// The matrices must match exactly, not up to phase: check one
	// phase-sensitive entry of controlled-S explicitly.
	c, err := CliffordT("controlled-s")
	require.NoError(t, err)
	m, err := c.Matrix()
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(m[0][0]-1), 1e-9)
	assert.InDelta(t, 0, cmplx.Abs(m[3][3]-1i), 1e-9)
}

func TestUnknownTarget(t *testing.T) {
	_, err := CliffordT("toffoli")
	assert.ErrorIs(t, err, ErrUnknownTarget)
	_, err = U3CNOT("toffoli")
	assert.ErrorIs(t, err, ErrUnknownTarget)
}
