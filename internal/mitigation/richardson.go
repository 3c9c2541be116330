package mitigation

import (
	"fmt"
	"math"
)

// RichardsonZero extrapolates the sampled values to scale 0 by Lagrange
// interpolation through every (scale, value) node. With n nodes this is
// Richardson extrapolation of order n−1.
func RichardsonZero(scales, values []float64) (float64, error) {
	if len(scales) != len(values) || len(scales) < 2 {
		return 0, fmt.Errorf("%w: %d scales, %d values", ErrBadFit, len(scales), len(values))
	}
	out := 0.0
	for i, xi := range scales {
		li := 1.0
		for j, xj := range scales {
			if i == j {
				continue
			}
			if xi == xj {
				return 0, fmt.Errorf("%w: duplicate scale %v", ErrBadFit, xi)
			}
			li *= -xj / (xi - xj)
		}
		out += li * values[i]
	}
	return out, nil
}

// PolyFitZero fits a least-squares polynomial of the given degree through
// the (scale, value) samples and evaluates it at zero. Degree len(scales)−1
// reproduces RichardsonZero.
func PolyFitZero(scales, values []float64, degree int) (float64, error) {
	if len(scales) != len(values) || len(scales) <= degree {
		return 0, fmt.Errorf("%w: degree %d with %d samples", ErrBadFit, degree, len(scales))
	}
	// Normal equations A^T A c = A^T y for the Vandermonde system.
	n := degree + 1
	ata := make([][]float64, n)
	aty := make([]float64, n)
	for i := range ata {
		ata[i] = make([]float64, n)
	}
	for k, x := range scales {
		pow := make([]float64, n)
		pow[0] = 1
		for i := 1; i < n; i++ {
			pow[i] = pow[i-1] * x
		}
		for i := 0; i < n; i++ {
			aty[i] += pow[i] * values[k]
			for j := 0; j < n; j++ {
				ata[i][j] += pow[i] * pow[j]
			}
		}
	}
	coeffs, err := solve(ata, aty)
	if err != nil {
		return 0, err
	}
	// Value at zero is the constant coefficient.
	return coeffs[0], nil
}

// solve performs Gaussian elimination with partial pivoting. Systems here
// are at most 4x4.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("%w: singular system", ErrBadFit)
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		for row := col + 1; row < n; row++ {
			f := a[row][col] / a[col][col]
			for k := col; k < n; k++ {
				a[row][k] -= f * a[col][k]
			}
			b[row] -= f * b[col]
		}
	}
	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		s := b[row]
		for k := row + 1; k < n; k++ {
			s -= a[row][k] * x[k]
		}
		x[row] = s / a[row][row]
	}
	return x, nil
}
