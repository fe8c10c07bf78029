package bspline

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKnotPreservesShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	us := s.UniformKnotSeq(41)
	want := mustSample(t, s, us)
	r, k, err := s.InsertKnot(0.4, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, k)
	assert.Equal(t, 8, r.NumControlPoints())
	assert.Equal(t, 12, r.NumKnots())
	assert.Equal(t, 0.4, r.knots[k])
	diff(t, want, mustSample(t, r, us), approx)
	r, _, err = s.InsertKnot(0.25, 2)
	require.NoError(t, err)
	diff(t, want, mustSample(t, r, us), approx)
	// original is untouched
	assert.Equal(t, 7, s.NumControlPoints())
}

func TestInsertKnotMultiplicity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	_, _, err := s.InsertKnot(0.25, 4)
	assert.Equal(t, KindMultiplicity, KindOf(err))
	_, _, err = s.InsertKnot(0.25, -1)
	assert.Equal(t, KindMultiplicity, KindOf(err))
	r, k, err := s.InsertKnot(0.25, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, k)
	assert.True(t, r.Equal(s, 0))
}

func TestResize(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	r, err := s.resize(2, true)
	require.NoError(t, err)
	assert.Equal(t, 9, r.NumControlPoints())
	assert.Equal(t, 13, r.NumKnots())
	diff(t, s.ControlPoints(), r.ControlPoints()[:14])
	r, err = s.resize(-1, false)
	require.NoError(t, err)
	diff(t, s.ControlPoints()[2:], r.ControlPoints())
	_, err = s.resize(-4, true)
	assert.Equal(t, KindDegreeTooLarge, KindOf(err))
}

func TestToBeziers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	b, err := s.ToBeziers()
	require.NoError(t, err)
	assert.Equal(t, 16, b.NumControlPoints())
	assert.Equal(t, 20, b.NumKnots())
	for _, m := range Multiplicities(b.Knots()) {
		assert.Equal(t, 4, m.Mult, "knot %g", m.Knot)
	}
	us := s.UniformKnotSeq(41)
	diff(t, mustSample(t, s, us), mustSample(t, b, us), approx)
}

func TestToBeziersOpened(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := New(5, 2, 2, Opened)
	require.NoError(t, err)
	require.NoError(t, s.SetControlPoints([]float64{0, 0, 1, 2, 2, -1, 3, 1, 4, 0}))
	b, err := s.ToBeziers()
	require.NoError(t, err)
	assert.Equal(t, 9, b.NumControlPoints())
	for _, m := range Multiplicities(b.Knots()) {
		assert.Equal(t, 3, m.Mult, "knot %g", m.Knot)
	}
	min, max := s.Domain()
	bmin, bmax := b.Domain()
	assert.InDelta(t, min, bmin, 1e-9)
	assert.InDelta(t, max, bmax, 1e-9)
	us := s.UniformKnotSeq(25)
	diff(t, mustSample(t, s, us), mustSample(t, b, us), approx)
}

func TestSubSpline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	sub, err := s.SubSpline(0.2, 0.6)
	require.NoError(t, err)
	min, max := sub.Domain()
	assert.Equal(t, 0.2, min)
	assert.Equal(t, 0.6, max)
	diff(t, mustEval(t, s, 0.2), mustEval(t, sub, 0.2), approx)
	diff(t, mustEval(t, s, 0.4), mustEval(t, sub, 0.4), approx)
	diff(t, mustEval(t, s, 0.6), mustEval(t, sub, 0.6), approx)
	assert.Equal(t, sub.NumKnots(), sub.NumControlPoints()+sub.Order())
}

func TestSubSplineReversed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	rev, err := s.SubSpline(0.6, 0.2)
	require.NoError(t, err)
	min, max := rev.Domain()
	assert.InDelta(t, 0.2, min, 1e-12)
	assert.InDelta(t, 0.6, max, 1e-12)
	diff(t, mustEval(t, s, 0.6), mustEval(t, rev, 0.2), approx)
	diff(t, mustEval(t, s, 0.5), mustEval(t, rev, 0.3), approx)
	diff(t, mustEval(t, s, 0.2), mustEval(t, rev, 0.6), approx)
	_, err = s.SubSpline(0.3, 0.3)
	assert.Equal(t, KindNoResult, KindOf(err))
	_, err = s.SubSpline(0.3, 1.3)
	assert.Equal(t, KindUndefinedParameter, KindOf(err))
}

func TestElevateDegree(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	us := s.UniformKnotSeq(41)
	want := mustSample(t, s, us)
	for amount := 1; amount <= 3; amount++ {
		e, err := s.ElevateDegree(amount)
		require.NoError(t, err)
		assert.Equal(t, 3+amount, e.Degree())
		// 4 Bezier segments of order degree+amount+1
		assert.Equal(t, 4*(3+amount+1), e.NumControlPoints())
		assert.Equal(t, e.NumControlPoints()+e.Order(), e.NumKnots())
		diff(t, want, mustSample(t, e, us), approx)
	}
	e, err := s.ElevateDegree(0)
	require.NoError(t, err)
	assert.True(t, e.Equal(s, 0))
	_, err = s.ElevateDegree(-1)
	assert.Error(t, err)
}

func TestBuckleAndTension(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	assert.True(t, s.Buckle(1).Equal(s, 1e-12))
	assert.True(t, s.Tension(2).Equal(s, 1e-12))
	line := s.Tension(-1)
	first, _ := line.ControlPointAt(0)
	last, _ := line.ControlPointAt(6)
	for i := 0; i < 7; i++ {
		p, _ := line.ControlPointAt(i)
		f := float64(i) / 6
		diff(t, []float64{first[0] + f*(last[0]-first[0]), first[1] + f*(last[1]-first[1])}, p, approx)
	}
	half := s.Buckle(0.5)
	p, _ := half.ControlPointAt(3)
	diff(t, []float64{(-1.25 + (-1.75+0.5*2.25)) / 2, (0.5 + (-1.0+0.5*1.0)) / 2}, p, approx)
}

func TestTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	m := splines.Translation(splines.P(1, 2))
	r, err := s.Transformed(m)
	require.NoError(t, err)
	diff(t, []float64{-0.75, 1.0}, mustEval(t, r, 0), approx)
	rot := splines.Rotation(math.Pi / 2)
	r, err = s.Transformed(rot)
	require.NoError(t, err)
	diff(t, []float64{0, 0.5}, mustEval(t, r, 1), approx)
	o, err := New(3, 3, 1, Clamped)
	require.NoError(t, err)
	_, err = o.Transformed(m)
	assert.Equal(t, KindDimensionMismatch, KindOf(err))
}
