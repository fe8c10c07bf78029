package bspline

import (
	"fmt"
)

// resize returns a copy of s with n control points and n knots more (or
// less, for negative n). With back=true, points and knots are added to or
// removed from the end, otherwise from the front. New points are at the
// origin, new knots are 0.
func (s *Spline) resize(n int, back bool) (*Spline, error) {
	nCtrlp := s.NumControlPoints() + n
	if nCtrlp <= s.degree {
		return nil, fmt.Errorf("%w: cannot resize to %d control points for degree %d",
			ErrDegreeTooLarge, nCtrlp, s.degree)
	}
	r := newSpline(nCtrlp, s.dim, s.degree)
	if back {
		copy(r.ctrlp, s.ctrlp)
		copy(r.knots, s.knots)
	} else {
		lc := min(len(r.ctrlp), len(s.ctrlp))
		copy(r.ctrlp[len(r.ctrlp)-lc:], s.ctrlp[len(s.ctrlp)-lc:])
		lk := min(len(r.knots), len(s.knots))
		copy(r.knots[len(r.knots)-lk:], s.knots[len(s.knots)-lk:])
	}
	return r, nil
}

// InsertKnot inserts knot u n times. It returns the refined spline and the
// index of the last inserted knot. The shape of the curve is preserved.
//
// InsertKnot fails with ErrMultiplicity if the multiplicity of u would
// exceed the order of the spline.
func (s *Spline) InsertKnot(u float64, n int) (*Spline, int, error) {
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: cannot insert knot %d times", ErrMultiplicity, n)
	}
	net, err := s.Eval(u)
	if err != nil {
		return nil, 0, err
	}
	return s.insertKnot(net, n)
}

// insertKnot splices the rows of a de Boor net into a resized copy of s.
// For the N = h+1 affected control points P[fst…lst] the refined spline gets
// N+n control points:
//
//	first point of rows 0 … n-1,
//	all of row n (if n < N),
//	last point of rows n-1 … 0.
func (s *Spline) insertKnot(net *DeBoorNet, n int) (*Spline, int, error) {
	if net.s+n > s.Order() {
		return nil, 0, fmt.Errorf("%w: knot %g has multiplicity %d, cannot insert %d more (order %d)",
			ErrMultiplicity, net.u, net.s, n, s.Order())
	}
	if n == 0 {
		return s.Copy(), net.k, nil
	}
	r, err := s.resize(n, true)
	if err != nil {
		return nil, 0, err
	}
	deg, dim, k := s.degree, s.dim, net.k
	N := net.h + 1
	// control points and knots right of the affected region
	copy(r.ctrlp[(k-deg+N+n)*dim:], s.ctrlp[(k-deg+N)*dim:])
	copy(r.knots[k+1+n:], s.knots[k+1:])
	// affected region from the de Boor net
	to := (k - deg) * dim
	for i := 0; i < n; i++ {
		copy(r.ctrlp[to:to+dim], net.row(i))
		to += dim
	}
	if n < N {
		to += copy(r.ctrlp[to:], net.row(n))
	}
	for i := n - 1; i >= 0; i-- {
		row := net.row(i)
		copy(r.ctrlp[to:to+dim], row[len(row)-dim:])
		to += dim
	}
	for i := 0; i < n; i++ {
		r.knots[k+1+i] = net.u
	}
	tracer().Debugf("inserted knot %g %d times at index %d", net.u, n, k+1)
	return r, k + n, nil
}

// Split inserts u as often as necessary to raise its multiplicity to
// the order of the spline. At u, the resulting spline consists of two
// independent parts. Split returns the index of the last occurrence of u.
func (s *Spline) Split(u float64) (*Spline, int, error) {
	net, err := s.Eval(u)
	if err != nil {
		return nil, 0, err
	}
	if net.s == s.Order() {
		return s.Copy(), net.k, nil
	}
	return s.insertKnot(net, net.h+1)
}
