package bspline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-4)

// testspline is a clamped cubic in the plane with 7 control points.
func testspline(t *testing.T) *Spline {
	t.Helper()
	s, err := New(7, 2, 3, Clamped)
	if err != nil {
		t.Fatalf("cannot create test spline: %v", err)
	}
	ctrlp := []float64{
		-1.75, -1.0,
		-1.5, -0.5,
		-1.5, 0.0,
		-1.25, 0.5,
		-0.75, 0.75,
		0.0, 0.5,
		0.5, 0.0,
	}
	if err := s.SetControlPoints(ctrlp); err != nil {
		t.Fatalf("cannot set control points: %v", err)
	}
	return s
}

// mustSample evaluates s at every parameter of us.
func mustSample(t *testing.T, s *Spline, us []float64) []float64 {
	t.Helper()
	pts, err := s.EvalAll(us)
	if err != nil {
		t.Fatalf("cannot evaluate spline: %v", err)
	}
	return pts
}

func mustEval(t *testing.T, s *Spline, u float64) []float64 {
	t.Helper()
	net, err := s.Eval(u)
	if err != nil {
		t.Fatalf("cannot evaluate spline at %g: %v", u, err)
	}
	return net.Result()
}
