package bspline

import (
	"fmt"

	"github.com/npillmayer/splines"
)

// SubSpline extracts the part of a spline between parameters from and to.
// If from > to, the extracted part is reversed: the resulting curve starts
// at the point of s at from and ends at the point of s at to, while its
// domain is [to,from].
//
// SubSpline fails with ErrNoResult if from and to are equal.
func (s *Spline) SubSpline(from, to float64) (*Spline, error) {
	if splines.KnotsEqual(from, to) {
		return nil, fmt.Errorf("%w: empty sub-spline [%g,%g]", ErrNoResult, from, to)
	}
	reverse := from > to
	if reverse {
		from, to = to, from
	}
	r, k0, err := s.Split(from)
	if err != nil {
		return nil, err
	}
	r, k1, err := r.Split(to)
	if err != nil {
		return nil, err
	}
	deg, dim := s.degree, s.dim
	sub := newSpline(k1-k0, dim, deg)
	copy(sub.knots, r.knots[k0-deg:k1+1])
	copy(sub.ctrlp, r.ctrlp[(k0-deg)*dim:(k1-deg)*dim])
	if reverse {
		sub.reverse()
	}
	tracer().Debugf("sub-spline [%g,%g] has %d control points, reversed=%v",
		from, to, sub.NumControlPoints(), reverse)
	return sub, nil
}

// reverse mirrors control points and knots in place. The domain is kept.
func (s *Spline) reverse() {
	n := s.NumControlPoints()
	tmp := make([]float64, s.dim)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		copy(tmp, s.point(i))
		copy(s.point(i), s.point(j))
		copy(s.point(j), tmp)
	}
	nk := len(s.knots)
	first, last := s.knots[0], s.knots[nk-1]
	mirrored := make([]float64, nk)
	for i := range mirrored {
		mirrored[i] = first + last - s.knots[nk-1-i]
	}
	mirrored[0], mirrored[nk-1] = first, last
	s.knots = mirrored
}

// ToBeziers decomposes a spline into a sequence of Bezier segments by
// splitting it at every internal knot. In the result every knot has
// multiplicity order. If the knot vector was not clamped, the first and
// last segment are clamped to the domain.
func (s *Spline) ToBeziers() (*Spline, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot decompose empty spline", ErrDimensionZero)
	}
	deg, order := s.degree, s.Order()
	min, max := s.Domain()
	r, k, err := s.Split(min)
	if err != nil {
		return nil, err
	}
	if r, err = r.resize(deg-k, false); err != nil { // drop leading points
		return nil, err
	}
	if r, k, err = r.Split(max); err != nil {
		return nil, err
	}
	if r, err = r.resize(k-(r.NumKnots()-1), true); err != nil { // drop trailing points
		return nil, err
	}
	for k = order; k < r.NumKnots()-order; k++ {
		if r, k, err = r.Split(r.knots[k]); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("decomposed spline into %d Bezier segments", r.NumControlPoints()/order)
	return r, nil
}

// ElevateDegree raises the degree of a spline by amount, preserving its
// shape. The spline is decomposed into S Bezier segments first; the result
// consists of S segments of degree+amount, i.e. it has
// S·(degree+amount+1) control points.
func (s *Spline) ElevateDegree(amount int) (*Spline, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot elevate degree of empty spline", ErrDimensionZero)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: cannot elevate degree by %d", ErrDegreeTooLarge, amount)
	}
	if amount == 0 {
		return s.Copy(), nil
	}
	r, err := s.ToBeziers()
	if err != nil {
		return nil, err
	}
	for i := 0; i < amount; i++ {
		r = r.elevateBeziers()
		if r.NumKnots() != r.NumControlPoints()+r.Order() {
			panic(fmt.Sprintf("degree elevation broke knot count: %d knots, %d control points, order %d",
				r.NumKnots(), r.NumControlPoints(), r.Order()))
		}
	}
	return r, nil
}

// elevateBeziers elevates every segment of a Bezier decomposed spline by
// one degree:
//
//	Q[i] = i/(p+1)·P[i-1] + (1 - i/(p+1))·P[i],   i = 0 … p+1
func (s *Spline) elevateBeziers() *Spline {
	p, order, dim := s.degree, s.Order(), s.dim
	segs := s.NumControlPoints() / order
	e := newSpline(segs*(order+1), dim, p+1)
	for seg := 0; seg < segs; seg++ {
		src := s.ctrlp[seg*order*dim : (seg+1)*order*dim]
		dst := e.ctrlp[seg*(order+1)*dim : (seg+1)*(order+1)*dim]
		for i := 0; i <= p+1; i++ {
			a := float64(i) / float64(p+1)
			for d := 0; d < dim; d++ {
				var v float64
				if i > 0 {
					v += a * src[(i-1)*dim+d]
				}
				if i <= p {
					v += (1 - a) * src[i*dim+d]
				}
				dst[i*dim+d] = v
			}
		}
	}
	for b := 0; b <= segs; b++ {
		u := s.knots[b*order]
		for j := 0; j <= order; j++ {
			e.knots[b*(order+1)+j] = u
		}
	}
	return e
}

// Buckle blends every control point with its projection onto the straight
// line between the first and the last control point:
//
//	P'[i] = b·P[i] + (1-b)·(P[0] + i/(n-1)·(P[n-1]-P[0]))
//
// b = 1 keeps the shape, b = 0 results in a straight line. Values outside
// of [0,1] are accepted.
func (s *Spline) Buckle(b float64) *Spline {
	r := s.Copy()
	n, dim := s.NumControlPoints(), s.dim
	if n < 2 {
		return r
	}
	first, last := s.point(0), s.point(n-1)
	bHat := 1 - b
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		for d := 0; d < dim; d++ {
			line := first[d] + t*(last[d]-first[d])
			r.ctrlp[i*dim+d] = b*s.ctrlp[i*dim+d] + bHat*line
		}
	}
	return r
}

// Tension is like Buckle, with t clamped to [0,1]: 0 straightens the curve
// to the chord between its ends, 1 returns the original shape.
func (s *Spline) Tension(t float64) *Spline {
	return s.Buckle(max(0, min(1, t)))
}

// Transformed applies an affine transformation to a 2D spline.
func (s *Spline) Transformed(m splines.AT) (*Spline, error) {
	if s.dim != 2 {
		return nil, fmt.Errorf("%w: affine transforms need dimension 2, have %d",
			ErrDimensionMismatch, s.dim)
	}
	r := s.Copy()
	m.TransformPoints(r.ctrlp)
	return r, nil
}
