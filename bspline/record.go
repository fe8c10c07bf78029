package bspline

import (
	"fmt"
)

// Record is the interchange representation of a spline, as consumed by
// serializers. Round-tripping a record through FromRecord and Record
// reproduces degree, dimension, control points and knots.
type Record struct {
	Degree        int       `json:"degree"`
	Dimension     int       `json:"dimension"`
	ControlPoints []float64 `json:"control_points"`
	Knots         []float64 `json:"knots"`
}

// Record returns the interchange representation of a spline.
func (s *Spline) Record() Record {
	return Record{
		Degree:        s.degree,
		Dimension:     s.dim,
		ControlPoints: s.ControlPoints(),
		Knots:         s.Knots(),
	}
}

// FromRecord constructs a spline from its interchange representation.
// The knots are validated as in SetKnots.
func FromRecord(r Record) (*Spline, error) {
	if r.Dimension <= 0 {
		return nil, fmt.Errorf("%w: record has dimension %d", ErrDimensionZero, r.Dimension)
	}
	if len(r.ControlPoints)%r.Dimension != 0 {
		return nil, fmt.Errorf("%w: %d control point components for dimension %d",
			ErrParse, len(r.ControlPoints), r.Dimension)
	}
	n := len(r.ControlPoints) / r.Dimension
	s, err := New(n, r.Dimension, r.Degree, Opened)
	if err != nil {
		return nil, err
	}
	if len(r.Knots) != s.NumKnots() {
		return nil, fmt.Errorf("%w: record has %d knots, expected %d", ErrBadKnotCount,
			len(r.Knots), s.NumKnots())
	}
	if err := s.SetControlPoints(r.ControlPoints); err != nil {
		return nil, err
	}
	if err := s.SetKnots(r.Knots); err != nil {
		return nil, err
	}
	return s, nil
}
