package bspline

import (
	"fmt"

	"github.com/npillmayer/splines"
)

// Derive computes the n-th derivative of a spline. Every derivation lowers
// degree and number of control points by one and drops the first and last
// knot:
//
//	P'[i] = deg · (P[i+1] - P[i]) / (knot[i+deg+1] - knot[i+1])
//
// An internal knot of multiplicity order marks a point where the curve may
// be discontinuous. If the two points meeting there are within epsilon, the
// curve is continuous at that knot and one of the points is dropped before
// derivation. Otherwise Derive fails with ErrUnderivable, unless epsilon is
// negative: then discontinuities are ignored and the first of the two
// points is kept.
//
// The derivative of a spline of degree 0 is a spline of degree 0 with a
// single control point at the origin.
func (s *Spline) Derive(n int, epsilon float64) (*Spline, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: cannot derive %d times", ErrUnderivable, n)
	}
	if s.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot derive empty spline", ErrDimensionZero)
	}
	r := s.Copy()
	for m := 1; m <= n; m++ {
		if r.degree == 0 {
			min, max := r.Domain()
			z := newSpline(1, r.dim, 0)
			z.knots[0], z.knots[1] = min, max
			r = z
			continue
		}
		if err := r.mergeDiscontinuities(epsilon); err != nil {
			tracer().Errorf("derivation %d failed: %v", m, err)
			return nil, err
		}
		deg, dim := r.degree, r.dim
		nCtrlp := r.NumControlPoints()
		d := newSpline(nCtrlp-1, dim, deg-1)
		for i := 0; i < nCtrlp-1; i++ {
			span := r.knots[i+deg+1] - r.knots[i+1]
			if span == 0 {
				return nil, fmt.Errorf("%w: zero length knot span at %d", ErrUnderivable, i+1)
			}
			fac := float64(deg) / span
			p, q := r.point(i), r.point(i+1)
			for c := 0; c < dim; c++ {
				d.ctrlp[i*dim+c] = fac * (q[c] - p[c])
			}
		}
		copy(d.knots, r.knots[1:len(r.knots)-1])
		r = d
	}
	return r, nil
}

// mergeDiscontinuities removes one control point and one knot at every
// internal knot of multiplicity order, as described for Derive.
// s is modified in place.
func (s *Spline) mergeDiscontinuities(epsilon float64) error {
	for {
		idx := s.findInternalFullKnot()
		if idx < 0 {
			return nil
		}
		left, right := s.point(idx-1), s.point(idx)
		if epsilon >= 0 {
			if dist := splines.Distance(left, right); dist > epsilon {
				return fmt.Errorf("%w: discontinuity at knot %g, gap %g > %g",
					ErrUnderivable, s.knots[idx], dist, epsilon)
			}
		}
		dim := s.dim
		s.ctrlp = append(s.ctrlp[:idx*dim], s.ctrlp[(idx+1)*dim:]...)
		s.knots = append(s.knots[:idx], s.knots[idx+1:]...)
		tracer().Debugf("merged discontinuity at knot %g", s.knots[idx])
	}
}

// findInternalFullKnot returns the index of the first occurrence of an
// internal knot with multiplicity order, or -1.
func (s *Spline) findInternalFullKnot() int {
	deg, nKnots := s.degree, len(s.knots)
	for i := 1; i+deg < nKnots-1; i++ {
		if splines.KnotsEqual(s.knots[i], s.knots[i+deg]) {
			return i
		}
	}
	return -1
}
