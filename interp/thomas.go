package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/splines/bspline"
)

// ErrNotDiagonallyDominant is returned by ThomasSolve for systems it cannot
// solve stably.
var ErrNotDiagonallyDominant = errors.New("matrix is not strictly diagonally dominant")

// ThomasSolve solves a tridiagonal system of equations
//
//	a[i]·x[i-1] + b[i]·x[i] + c[i]·x[i+1] = d[i],   i = 0 … n-1
//
// with the Thomas algorithm. a[0] and c[n-1] are ignored. Unknowns and right
// hand sides are points of dimension dim, i.e. d has n·dim components and the
// system is solved for every component.
//
// The matrix has to be strictly diagonally dominant, otherwise
// ErrNotDiagonallyDominant is returned.
func ThomasSolve(a, b, c, d []float64, dim int) ([]float64, error) {
	n := len(b)
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension is %d", bspline.ErrDimensionZero, dim)
	}
	if len(a) != n || len(c) != n || len(d) != n*dim {
		return nil, fmt.Errorf("%w: tridiagonal system of size %d with %d/%d/%d coefficients",
			bspline.ErrNumPointsMismatch, n, len(a), len(c), len(d))
	}
	for i := 0; i < n; i++ {
		off := 0.0
		if i > 0 {
			off += math.Abs(a[i])
		}
		if i < n-1 {
			off += math.Abs(c[i])
		}
		if math.Abs(b[i]) <= off {
			tracer().Errorf("tridiagonal system not solvable: row %d", i)
			return nil, fmt.Errorf("%w: row %d", ErrNotDiagonallyDominant, i)
		}
	}
	// forward sweep: eliminate the sub-diagonal
	cc := make([]float64, n)
	x := make([]float64, n*dim)
	copy(x, d)
	for i := 0; i < n; i++ {
		m := b[i]
		if i > 0 {
			m -= a[i] * cc[i-1]
		}
		if i < n-1 {
			cc[i] = c[i] / m
		}
		for k := 0; k < dim; k++ {
			v := x[i*dim+k]
			if i > 0 {
				v -= a[i] * x[(i-1)*dim+k]
			}
			x[i*dim+k] = v / m
		}
	}
	// back substitution
	for i := n - 2; i >= 0; i-- {
		for k := 0; k < dim; k++ {
			x[i*dim+k] -= cc[i] * x[(i+1)*dim+k]
		}
	}
	return x, nil
}
