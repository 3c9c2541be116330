package qsim

import (
	"math/cmplx"
	"testing"
)

func TestKronDimensions(t *testing.T) {
	a := Identity(2)
	b := Identity(4)

	k := a.Kron(b)
	if k.Rows() != 8 || k.Cols() != 8 {
		t.Errorf("expected 8x8, got %dx%d", k.Rows(), k.Cols())
	}
	if !k.EqualWithin(Identity(8), 1e-15) {
		t.Error("I ⊗ I should be identity")
	}
}

func TestKronOrdering(t *testing.T) {
	// Z ⊗ I acts on the most significant qubit: diag(1, 1, -1, -1).
	zi := ZGate().Kron(Identity(2))
	for i := 0; i < 4; i++ {
		want := complex(1, 0)
		if i >= 2 {
			want = -1
		}
		if cmplx.Abs(zi[i][i]-want) > 1e-15 {
			t.Errorf("diag[%d]: expected %v, got %v", i, want, zi[i][i])
		}
	}
}

func TestMulVec(t *testing.T) {
	v := []complex128{1, 0}
	out := XGate().MulVec(v)
	if cmplx.Abs(out[0]) > 1e-15 || cmplx.Abs(out[1]-1) > 1e-15 {
		t.Errorf("X|0> should be |1>, got %v", out)
	}
}

func TestTrace(t *testing.T) {
	if tr := Identity(4).Trace(); cmplx.Abs(tr-4) > 1e-15 {
		t.Errorf("expected trace 4, got %v", tr)
	}
	if tr := ZGate().Trace(); cmplx.Abs(tr) > 1e-15 {
		t.Errorf("expected traceless Z, got %v", tr)
	}
}

func TestOuter(t *testing.T) {
	psi := []complex128{0, 1}
	m := Outer(psi, psi)
	if cmplx.Abs(m[0][0]) > 1e-15 || cmplx.Abs(m[1][1]-1) > 1e-15 {
		t.Errorf("|1><1| wrong: %v", m)
	}
}
