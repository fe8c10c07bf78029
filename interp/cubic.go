package interp

import (
	"fmt"

	"github.com/npillmayer/splines/bspline"
	"gonum.org/v1/gonum/floats"
)

// checkPoints validates a flat point buffer and returns the number of points.
func checkPoints(points []float64, dim int) (int, error) {
	if dim <= 0 {
		tracer().Errorf("cannot interpolate points of dimension %d", dim)
		return 0, fmt.Errorf("%w: dimension is %d", bspline.ErrDimensionZero, dim)
	}
	if len(points) == 0 {
		return 0, fmt.Errorf("%w: no points", bspline.ErrNumPointsMismatch)
	}
	if len(points)%dim != 0 {
		return 0, fmt.Errorf("%w: %d components for dimension %d", bspline.ErrNumPointsMismatch,
			len(points), dim)
	}
	return len(points) / dim, nil
}

// CubicNatural interpolates points with a natural cubic spline. The result
// is a cubic spline in Bezier form with 4·(n-1) control points for n points.
// A single point results in a degenerate segment of four equal control
// points.
func CubicNatural(points []float64, dim int) (*bspline.Spline, error) {
	n, err := checkPoints(points, dim)
	if err != nil {
		return nil, err
	}
	switch n {
	case 1:
		return cubicPoint(points, dim)
	case 2:
		return RelaxedUniformCubic(points, dim)
	}
	// B-points b[0] = S[0], b[n-1] = S[n-1]; interior ones satisfy
	//   b[i-1] + 4·b[i] + b[i+1] = 6·S[i]
	m := n - 2
	a, b, c := make([]float64, m), make([]float64, m), make([]float64, m)
	d := make([]float64, m*dim)
	for i := 0; i < m; i++ {
		a[i], b[i], c[i] = 1, 4, 1
		copy(d[i*dim:(i+1)*dim], points[(i+1)*dim:(i+2)*dim])
	}
	floats.Scale(6, d)
	floats.Sub(d[:dim], points[:dim])
	floats.Sub(d[(m-1)*dim:], points[(n-1)*dim:])
	x, err := ThomasSolve(a, b, c, d, dim)
	if err != nil {
		return nil, err
	}
	bpoints := make([]float64, 0, n*dim)
	bpoints = append(bpoints, points[:dim]...)
	bpoints = append(bpoints, x...)
	bpoints = append(bpoints, points[(n-1)*dim:]...)
	tracer().Infof("natural cubic spline through %d points", n)
	return RelaxedUniformCubic(bpoints, dim)
}

// RelaxedUniformCubic converts a sequence of B-points into a C²-continuous
// cubic spline in Bezier form. The spline starts at the first and ends at
// the last B-point; segment i consists of
//
//	S[i], 2/3·b[i] + 1/3·b[i+1], 1/3·b[i] + 2/3·b[i+1], S[i+1]
//
// where S[i] = (b[i-1] + 4·b[i] + b[i+1]) / 6 for interior points.
func RelaxedUniformCubic(bpoints []float64, dim int) (*bspline.Spline, error) {
	n, err := checkPoints(bpoints, dim)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return cubicPoint(bpoints, dim)
	}
	bp := func(i int) []float64 { return bpoints[i*dim : (i+1)*dim] }
	s := make([]float64, n*dim) // S-points
	copy(s[:dim], bp(0))
	copy(s[(n-1)*dim:], bp(n-1))
	for i := 1; i < n-1; i++ {
		si := s[i*dim : (i+1)*dim]
		for k := 0; k < dim; k++ {
			si[k] = (bp(i - 1)[k] + 4*bp(i)[k] + bp(i + 1)[k]) / 6
		}
	}
	ctrlp := make([]float64, 0, 4*(n-1)*dim)
	for i := 0; i < n-1; i++ {
		b0, b1 := bp(i), bp(i+1)
		ctrlp = append(ctrlp, s[i*dim:(i+1)*dim]...)
		for k := 0; k < dim; k++ {
			ctrlp = append(ctrlp, 2.0/3.0*b0[k]+1.0/3.0*b1[k])
		}
		for k := 0; k < dim; k++ {
			ctrlp = append(ctrlp, 1.0/3.0*b0[k]+2.0/3.0*b1[k])
		}
		ctrlp = append(ctrlp, s[(i+1)*dim:(i+2)*dim]...)
	}
	return beziers(ctrlp, dim)
}

// cubicPoint creates a cubic spline consisting of a single point.
func cubicPoint(p []float64, dim int) (*bspline.Spline, error) {
	ctrlp := make([]float64, 0, 4*dim)
	for i := 0; i < 4; i++ {
		ctrlp = append(ctrlp, p[:dim]...)
	}
	return beziers(ctrlp, dim)
}

// beziers wraps control points into a cubic spline with Bezier knots.
func beziers(ctrlp []float64, dim int) (*bspline.Spline, error) {
	s, err := bspline.New(len(ctrlp)/dim, dim, 3, bspline.Beziers)
	if err != nil {
		return nil, err
	}
	if err := s.SetControlPoints(ctrlp); err != nil {
		return nil, err
	}
	return s, nil
}
