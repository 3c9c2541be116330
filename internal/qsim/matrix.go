package qsim

import "math/cmplx"

// Matrix is a dense complex matrix, row-major.
type Matrix [][]complex128

// NewMatrix allocates a zero rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

// Identity returns the n x n identity.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

func (m Matrix) Rows() int { return len(m) }

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i := range m {
		c[i] = make([]complex128, len(m[i]))
		copy(c[i], m[i])
	}
	return c
}

// Mul returns m * other.
func (m Matrix) Mul(other Matrix) Matrix {
	rows, inner, cols := m.Rows(), m.Cols(), other.Cols()
	out := NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			a := m[i][k]
			if a == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out[i][j] += a * other[k][j]
			}
		}
	}
	return out
}

// MulVec returns m * v.
func (m Matrix) MulVec(v []complex128) []complex128 {
	out := make([]complex128, m.Rows())
	for i := range m {
		var s complex128
		for j, a := range m[i] {
			s += a * v[j]
		}
		out[i] = s
	}
	return out
}

// Kron returns the tensor product m ⊗ other.
func (m Matrix) Kron(other Matrix) Matrix {
	ra, ca := m.Rows(), m.Cols()
	rb, cb := other.Rows(), other.Cols()
	out := NewMatrix(ra*rb, ca*cb)
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			a := m[i][j]
			if a == 0 {
				continue
			}
			for k := 0; k < rb; k++ {
				for l := 0; l < cb; l++ {
					out[i*rb+k][j*cb+l] = a * other[k][l]
				}
			}
		}
	}
	return out
}

// Dagger returns the conjugate transpose.
func (m Matrix) Dagger() Matrix {
	out := NewMatrix(m.Cols(), m.Rows())
	for i := range m {
		for j, a := range m[i] {
			out[j][i] = cmplx.Conj(a)
		}
	}
	return out
}

// Add returns m + other.
func (m Matrix) Add(other Matrix) Matrix {
	out := m.Clone()
	for i := range other {
		for j, a := range other[i] {
			out[i][j] += a
		}
	}
	return out
}

// Scale returns c * m.
func (m Matrix) Scale(c complex128) Matrix {
	out := m.Clone()
	for i := range out {
		for j := range out[i] {
			out[i][j] *= c
		}
	}
	return out
}

// Trace returns the sum of diagonal entries.
func (m Matrix) Trace() complex128 {
	var t complex128
	for i := range m {
		t += m[i][i]
	}
	return t
}

// MaxDeviation returns the largest element-wise |m - other|.
func (m Matrix) MaxDeviation(other Matrix) float64 {
	max := 0.0
	for i := range m {
		for j := range m[i] {
			if d := cmplx.Abs(m[i][j] - other[i][j]); d > max {
				max = d
			}
		}
	}
	return max
}

// EqualWithin reports whether every entry agrees within tol.
func (m Matrix) EqualWithin(other Matrix, tol float64) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	return m.MaxDeviation(other) <= tol
}

// Outer returns |a⟩⟨b|.
func Outer(a, b []complex128) Matrix {
	out := NewMatrix(len(a), len(b))
	for i := range a {
		for j := range b {
			out[i][j] = a[i] * cmplx.Conj(b[j])
		}
	}
	return out
}
