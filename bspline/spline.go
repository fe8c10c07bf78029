package bspline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/splines"
	"gonum.org/v1/gonum/floats"
)

// Spline is a B-spline of arbitrary degree and dimension. It owns its
// control points and knots. The zero value is an empty spline, which is
// what Move and Release leave behind.
type Spline struct {
	degree int       // polynomial degree
	dim    int       // number of components per control point
	ctrlp  []float64 // control points, dim components each
	knots  []float64 // knot vector, len(ctrlp)/dim + degree + 1 values
}

// New creates a spline with numControlPoints control points of the given
// dimension and degree. Control points are initialized to the origin, knots
// are generated according to style over [splines.DomainMin,splines.DomainMax].
func New(numControlPoints, dimension, degree int, style KnotStyle) (*Spline, error) {
	if dimension <= 0 {
		tracer().Errorf("cannot create spline of dimension %d", dimension)
		return nil, fmt.Errorf("%w: dimension is %d", ErrDimensionZero, dimension)
	}
	if degree < 0 || degree >= numControlPoints {
		tracer().Errorf("cannot create spline of degree %d with %d control points",
			degree, numControlPoints)
		return nil, fmt.Errorf("%w: degree %d, but %d control points", ErrDegreeTooLarge,
			degree, numControlPoints)
	}
	order := degree + 1
	switch style {
	case Opened, Clamped:
	case Beziers:
		if numControlPoints%order != 0 {
			return nil, fmt.Errorf("%w: %d control points are not a multiple of order %d",
				ErrBadKnotCount, numControlPoints, order)
		}
	default:
		return nil, fmt.Errorf("%w: unknown knot style %v", ErrBadKnotCount, style)
	}
	s := newSpline(numControlPoints, dimension, degree)
	generateKnots(s.knots, degree, style, splines.DomainMin, splines.DomainMax)
	tracer().Debugf("new %v spline: degree %d, dimension %d, %d control points",
		style, degree, dimension, numControlPoints)
	return s, nil
}

// newSpline allocates storage without any validation.
func newSpline(numControlPoints, dimension, degree int) *Spline {
	return &Spline{
		degree: degree,
		dim:    dimension,
		ctrlp:  make([]float64, numControlPoints*dimension),
		knots:  make([]float64, numControlPoints+degree+1),
	}
}

// Copy creates a deep copy of a spline.
func (s *Spline) Copy() *Spline {
	return &Spline{
		degree: s.degree,
		dim:    s.dim,
		ctrlp:  append([]float64(nil), s.ctrlp...),
		knots:  append([]float64(nil), s.knots...),
	}
}

// Move transfers the storage of s to a new spline. s is empty afterwards.
func (s *Spline) Move() *Spline {
	m := &Spline{}
	*m, *s = *s, Spline{}
	return m
}

// Release drops the storage of s. s is empty afterwards.
func (s *Spline) Release() {
	*s = Spline{}
}

// IsEmpty is a predicate: has s been moved, released or never initialized?
func (s *Spline) IsEmpty() bool {
	return s == nil || s.dim == 0
}

// Apply transforms s in place. The receiver is replaced by the result of
// transform only if transform succeeds; on failure s is left unchanged.
//
//	err := spline.Apply((*Spline).ToBeziers)
func (s *Spline) Apply(transform func(*Spline) (*Spline, error)) error {
	r, err := transform(s)
	if err != nil {
		return err
	}
	if r != s {
		*s = *r.Move()
	}
	return nil
}

// Degree returns the polynomial degree of a spline.
func (s *Spline) Degree() int {
	return s.degree
}

// Order returns degree+1.
func (s *Spline) Order() int {
	return s.degree + 1
}

// Dimension returns the number of components per control point.
func (s *Spline) Dimension() int {
	return s.dim
}

// NumControlPoints returns the number of control points.
func (s *Spline) NumControlPoints() int {
	if s.dim == 0 {
		return 0
	}
	return len(s.ctrlp) / s.dim
}

// NumKnots returns the number of knots, always NumControlPoints()+Order().
func (s *Spline) NumKnots() int {
	return len(s.knots)
}

// ControlPoints returns a copy of the control point buffer.
func (s *Spline) ControlPoints() []float64 {
	return append([]float64(nil), s.ctrlp...)
}

// Knots returns a copy of the knot vector.
func (s *Spline) Knots() []float64 {
	return append([]float64(nil), s.knots...)
}

// SetControlPoints replaces all control points. The buffer must have
// NumControlPoints()*Dimension() components.
func (s *Spline) SetControlPoints(ctrlp []float64) error {
	if len(ctrlp) != len(s.ctrlp) {
		return fmt.Errorf("%w: expected %d control point components, got %d",
			ErrNumPointsMismatch, len(s.ctrlp), len(ctrlp))
	}
	copy(s.ctrlp, ctrlp)
	return nil
}

// SetKnots replaces the knot vector. Knots must not decrease and no value
// may occur more than Order() times. If the knots exceed the canonical
// range [splines.DomainMin,splines.DomainMax], they are re-scaled into it,
// preserving their relative spacing. On error s is unchanged.
func (s *Spline) SetKnots(knots []float64) error {
	if len(knots) != len(s.knots) {
		return fmt.Errorf("%w: expected %d knots, got %d", ErrNumPointsMismatch,
			len(s.knots), len(knots))
	}
	if err := ValidateKnots(knots, s.Order()); err != nil {
		tracer().Errorf("rejected knot vector: %v", err)
		return err
	}
	kv := append([]float64(nil), knots...)
	rescaleKnots(kv)
	s.knots = kv
	return nil
}

// ControlPointAt returns a copy of control point i.
func (s *Spline) ControlPointAt(i int) ([]float64, error) {
	if i < 0 || i >= s.NumControlPoints() {
		return nil, fmt.Errorf("%w: control point %d of %d", ErrIndex, i, s.NumControlPoints())
	}
	return append([]float64(nil), s.point(i)...), nil
}

// SetControlPointAt replaces control point i.
func (s *Spline) SetControlPointAt(i int, p []float64) error {
	if i < 0 || i >= s.NumControlPoints() {
		return fmt.Errorf("%w: control point %d of %d", ErrIndex, i, s.NumControlPoints())
	}
	if len(p) != s.dim {
		return fmt.Errorf("%w: point of dimension %d for spline of dimension %d",
			ErrDimensionMismatch, len(p), s.dim)
	}
	copy(s.point(i), p)
	return nil
}

// KnotAt returns knot i.
func (s *Spline) KnotAt(i int) (float64, error) {
	if i < 0 || i >= len(s.knots) {
		return 0, fmt.Errorf("%w: knot %d of %d", ErrIndex, i, len(s.knots))
	}
	return s.knots[i], nil
}

// SetKnotAt replaces knot i. The resulting knot vector is validated like
// in SetKnots.
func (s *Spline) SetKnotAt(i int, u float64) error {
	if i < 0 || i >= len(s.knots) {
		return fmt.Errorf("%w: knot %d of %d", ErrIndex, i, len(s.knots))
	}
	kv := s.Knots()
	kv[i] = u
	return s.SetKnots(kv)
}

// point returns a view onto control point i.
func (s *Spline) point(i int) []float64 {
	return s.ctrlp[i*s.dim : (i+1)*s.dim]
}

// Domain returns the interval of valid parameters. For non-clamped knot
// vectors this is not the interval between the first and last knot.
// Empty splines have the domain [0,0].
func (s *Spline) Domain() (float64, float64) {
	if s.IsEmpty() || len(s.knots) == 0 {
		return 0, 0
	}
	return s.knots[s.degree], s.knots[len(s.knots)-s.Order()]
}

// IsClosed is a predicate: are the points at the domain's bounds closer
// than epsilon?
func (s *Spline) IsClosed(epsilon float64) (bool, error) {
	if s.IsEmpty() {
		return false, fmt.Errorf("%w: empty spline is neither open nor closed", ErrDimensionZero)
	}
	min, max := s.Domain()
	first, err := s.Eval(min)
	if err != nil {
		return false, err
	}
	last, err := s.Eval(max)
	if err != nil {
		return false, err
	}
	return splines.Distance(first.result(), last.result()) <= epsilon, nil
}

// Equal compares two splines. Control points and knots are compared with
// tolerance epsilon.
func (s *Spline) Equal(other *Spline, epsilon float64) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.degree != other.degree || s.dim != other.dim {
		return false
	}
	if len(s.ctrlp) != len(other.ctrlp) || len(s.knots) != len(other.knots) {
		return false
	}
	return floats.EqualApprox(s.ctrlp, other.ctrlp, epsilon) &&
		floats.EqualApprox(s.knots, other.knots, epsilon)
}

// String returns a spline as a (debugging) string. The string contains
// newlines.
func (s *Spline) String() string {
	if s.IsEmpty() {
		return "bspline(empty)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "bspline(degree=%d, dim=%d, n=%d)\n", s.degree, s.dim, s.NumControlPoints())
	b.WriteString("  controls")
	for i := 0; i < s.NumControlPoints(); i++ {
		b.WriteString(" (")
		for d, c := range s.point(i) {
			if d > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%.4g", c)
		}
		b.WriteByte(')')
	}
	b.WriteString("\n  knots")
	for _, k := range s.knots {
		fmt.Fprintf(&b, " %.4g", k)
	}
	return b.String()
}
