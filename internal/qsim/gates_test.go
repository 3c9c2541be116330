package qsim

import (
	"math"
	"testing"
)

func TestGateUnitarity(t *testing.T) {
	gates := map[string]Matrix{
		"x":     XGate(),
		"y":     YGate(),
		"z":     ZGate(),
		"h":     HGate(),
		"s":     SGate(),
		"t":     TGate(),
		"rx":    RXGate(0.7),
		"ry":    RYGate(-1.3),
		"rz":    RZGate(2.1),
		"phase": PhaseGate(0.9),
		"u3":    U3Gate(0.5, 1.1, -0.4),
	}

	for name, g := range gates {
		prod := g.Dagger().Mul(g)
		if !prod.EqualWithin(Identity(2), 1e-12) {
			t.Errorf("%s: U†U deviates from identity by %e", name, prod.MaxDeviation(Identity(2)))
		}
	}
}

func TestGateIdentities(t *testing.T) {
	h2 := HGate().Mul(HGate())
	if !h2.EqualWithin(Identity(2), 1e-12) {
		t.Error("H^2 should be identity")
	}

	t8 := Identity(2)
	for i := 0; i < 8; i++ {
		t8 = TGate().Mul(t8)
	}
	if !t8.EqualWithin(Identity(2), 1e-12) {
		t.Error("T^8 should be identity")
	}

	t2 := TGate().Mul(TGate())
	if !t2.EqualWithin(SGate(), 1e-12) {
		t.Error("T^2 should be S")
	}

	hth := HGate().Mul(U3Gate(math.Pi/2, 0, math.Pi))
	if !hth.EqualWithin(Identity(2), 1e-12) {
		t.Error("U3(pi/2, 0, pi) should be H")
	}
}

func TestOpDagger(t *testing.T) {
	ops := []Op{
		{Gate: GateT, Qubits: []int{0}},
		{Gate: GateS, Qubits: []int{0}},
		{Gate: GateRY, Qubits: []int{0}, Params: []float64{0.8}},
		{Gate: GateU3, Qubits: []int{0}, Params: []float64{0.5, 1.1, -0.4}},
		{Gate: GateCRZ, Qubits: []int{0, 1}, Params: []float64{1.7}},
	}

	for _, op := range ops {
		n := len(op.Qubits)
		u, err := op.Matrix(n)
		if err != nil {
			t.Fatalf("%s: %v", op.Gate, err)
		}
		udg, err := op.Dagger().Matrix(n)
		if err != nil {
			t.Fatalf("%s dagger: %v", op.Gate, err)
		}
		prod := udg.Mul(u)
		if !prod.EqualWithin(Identity(prod.Rows()), 1e-12) {
			t.Errorf("%s: dagger op does not invert the gate", op.Gate)
		}
	}
}

func TestCNOTMatrix(t *testing.T) {
	op := Op{Gate: GateCNOT, Qubits: []int{0, 1}}
	u, err := op.Matrix(2)
	if err != nil {
		t.Fatal(err)
	}

	want := Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
	if !u.EqualWithin(want, 1e-12) {
		t.Error("cnot with control on qubit 0 has wrong matrix")
	}

	// reversed wires: control on the least significant qubit
	rev := Op{Gate: GateCNOT, Qubits: []int{1, 0}}
	u, err = rev.Matrix(2)
	if err != nil {
		t.Fatal(err)
	}
	want = Matrix{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	}
	if !u.EqualWithin(want, 1e-12) {
		t.Error("cnot with control on qubit 1 has wrong matrix")
	}
}

func TestUnknownGate(t *testing.T) {
	op := Op{Gate: "frobnicate", Qubits: []int{0}}
	if _, err := op.Matrix(1); err == nil {
		t.Error("expected error for unknown gate")
	}
}
