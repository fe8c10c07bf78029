package bspline

import (
	"fmt"

	"github.com/npillmayer/splines"
)

// DeBoorNet is the result of evaluating a spline at a parameter u. It holds
// the complete triangular net of points computed by de Boor's algorithm.
//
// Row 0 of the net consists of the h+1 control points affecting u, every
// following row is one point shorter. The last point of the net is the
// point on the curve. If u is an internal knot of multiplicity order, the
// curve has a discontinuity at u and the net consists of exactly two
// points, the end of the left and the start of the right segment.
type DeBoorNet struct {
	u      float64   // evaluated parameter, snapped to a knot if close to one
	k      int       // index of the knot interval containing u
	s      int       // multiplicity of u
	h      int       // number of insertions needed to reach order
	dim    int       // dimension of points
	points []float64 // the triangular net
}

// Knot returns the evaluated parameter. If u has been within
// splines.KnotEpsilon of a knot, it is that knot.
func (net *DeBoorNet) Knot() float64 {
	return net.u
}

// Index returns k with knot[k] <= u < knot[k+1].
func (net *DeBoorNet) Index() int {
	return net.k
}

// Multiplicity returns the multiplicity of u in the knot vector.
func (net *DeBoorNet) Multiplicity() int {
	return net.s
}

// NumInsertions returns max(degree-s, 0).
func (net *DeBoorNet) NumInsertions() int {
	return net.h
}

// Dimension returns the dimension of the points of the net.
func (net *DeBoorNet) Dimension() int {
	return net.dim
}

// NumPoints returns the number of points in the net.
func (net *DeBoorNet) NumPoints() int {
	return len(net.points) / net.dim
}

// Points returns a copy of all points of the net.
func (net *DeBoorNet) Points() []float64 {
	return append([]float64(nil), net.points...)
}

// NumResult returns 2 if the net describes a discontinuity, 1 otherwise.
func (net *DeBoorNet) NumResult() int {
	if net.NumPoints() == 2 {
		return 2
	}
	return 1
}

// Result returns a copy of the (first) point on the curve.
func (net *DeBoorNet) Result() []float64 {
	return append([]float64(nil), net.result()...)
}

// ResultAt returns a copy of result i, with 0 <= i < NumResult().
func (net *DeBoorNet) ResultAt(i int) ([]float64, error) {
	if i < 0 || i >= net.NumResult() {
		return nil, fmt.Errorf("%w: result %d of %d", ErrIndex, i, net.NumResult())
	}
	if net.NumResult() == 2 {
		return append([]float64(nil), net.points[i*net.dim:(i+1)*net.dim]...), nil
	}
	return net.Result(), nil
}

// Row returns a copy of row r of the triangular net.
func (net *DeBoorNet) Row(r int) ([]float64, error) {
	if r < 0 || r >= net.numRows() {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndex, r, net.numRows())
	}
	return append([]float64(nil), net.row(r)...), nil
}

func (net *DeBoorNet) numRows() int {
	return net.h + 1
}

// row returns a view onto row r. Row r has h+1-r points, except for a
// discontinuity, where the single row has two points.
func (net *DeBoorNet) row(r int) []float64 {
	if net.h == 0 {
		return net.points
	}
	n := net.h + 1
	offset := r*n - r*(r-1)/2
	return net.points[offset*net.dim : (offset+n-r)*net.dim]
}

// result returns a view onto the (first) result point.
func (net *DeBoorNet) result() []float64 {
	if net.NumPoints() == 2 {
		return net.points[:net.dim]
	}
	return net.points[len(net.points)-net.dim:]
}

// Eval evaluates a spline at parameter u with de Boor's algorithm.
// It fails with ErrUndefinedParameter if u is outside the spline's domain.
func (s *Spline) Eval(u float64) (*DeBoorNet, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot evaluate empty spline", ErrDimensionZero)
	}
	k, mult, err := s.locate(u)
	if err != nil {
		tracer().Debugf("cannot evaluate at %g: %v", u, err)
		return nil, err
	}
	deg, dim, order := s.degree, s.dim, s.Order()
	net := &DeBoorNet{u: u, k: k, s: mult, dim: dim}
	if mult > 0 {
		net.u = s.knots[k]
	}
	net.h = max(deg-mult, 0)
	if mult == order {
		if k == deg || k == len(s.knots)-1 { // domain bounds: a single result
			from := 0
			if k != deg {
				from = (k - mult) * dim
			}
			net.points = append([]float64(nil), s.ctrlp[from:from+dim]...)
		} else { // discontinuity
			from := (k - mult) * dim
			net.points = append([]float64(nil), s.ctrlp[from:from+2*dim]...)
		}
		return net, nil
	}
	fst, lst := k-deg, k-mult // first and last affected control point
	n := lst - fst + 1
	net.points = make([]float64, n*(n+1)/2*dim)
	copy(net.points, s.ctrlp[fst*dim:(lst+1)*dim])
	lidx, ridx, tidx := 0, dim, n*dim
	for r := 1; r <= net.h; r++ {
		for i := fst + r; i <= lst; i++ {
			ui := s.knots[i]
			a := (net.u - ui) / (s.knots[i+deg-r+1] - ui)
			aHat := 1 - a
			for d := 0; d < dim; d++ {
				net.points[tidx] = aHat*net.points[lidx] + a*net.points[ridx]
				tidx++
				lidx++
				ridx++
			}
		}
		lidx += dim
		ridx += dim
	}
	return net, nil
}

// locate finds the interval index k with knot[k] <= u < knot[k+1] and the
// multiplicity of u. Knots are scanned linearly, comparing with
// splines.KnotsEqual.
func (s *Spline) locate(u float64) (int, int, error) {
	deg, nKnots := s.degree, len(s.knots)
	k, mult := 0, 0
	for ; k < nKnots; k++ {
		uk := s.knots[k]
		if splines.KnotsEqual(u, uk) {
			mult++
		} else if u < uk {
			break
		}
	}
	min, max := s.Domain()
	if mult > s.Order() {
		return 0, 0, fmt.Errorf("%w: knot %g occurs %d times", ErrMultiplicity, u, mult)
	}
	if k <= deg { // u < domain min
		return 0, 0, fmt.Errorf("%w: %g < %g", ErrUndefinedParameter, u, min)
	}
	if k == nKnots && mult == 0 { // u > last knot
		return 0, 0, fmt.Errorf("%w: %g > %g", ErrUndefinedParameter, u, max)
	}
	if k > nKnots-deg+mult-1 { // u > domain max
		return 0, 0, fmt.Errorf("%w: %g > %g", ErrUndefinedParameter, u, max)
	}
	return k - 1, mult, nil
}

// EvalAll evaluates a spline at every parameter in us. It returns the
// (first) results, concatenated.
func (s *Spline) EvalAll(us []float64) ([]float64, error) {
	points := make([]float64, 0, len(us)*s.dim)
	for _, u := range us {
		net, err := s.Eval(u)
		if err != nil {
			return nil, err
		}
		points = append(points, net.result()...)
	}
	return points, nil
}

// Sample evaluates a spline at n uniformly spaced parameters over its
// domain. If n is 0, a number of samples proportional to the number of
// segments is chosen.
func (s *Spline) Sample(n int) ([]float64, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot sample empty spline", ErrDimensionZero)
	}
	if n <= 0 {
		n = (s.NumControlPoints() - s.degree) * 30
	}
	return s.EvalAll(s.UniformKnotSeq(n))
}

// UniformKnotSeq returns n parameters, uniformly spaced over the domain,
// including both domain bounds. Empty splines yield nil.
func (s *Spline) UniformKnotSeq(n int) []float64 {
	if n <= 0 || s.IsEmpty() {
		return nil
	}
	min, max := s.Domain()
	us := make([]float64, n)
	if n == 1 {
		us[0] = min
		return us
	}
	for i := range us {
		us[i] = min + (max-min)*float64(i)/float64(n-1)
	}
	us[n-1] = max
	return us
}
