package bspline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveNumerically(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	d, err := s.Derive(1, splines.PointEpsilon)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Degree())
	assert.Equal(t, 6, d.NumControlPoints())
	diff(t, []float64{0, 0, 0, 0.25, 0.5, 0.75, 1, 1, 1}, d.Knots(), approx)
	const h = 1e-3
	for _, u := range []float64{0.1, 0.4, 0.65, 0.9} {
		p, q := mustEval(t, s, u-h), mustEval(t, s, u+h)
		want := []float64{(q[0] - p[0]) / (2 * h), (q[1] - p[1]) / (2 * h)}
		got := mustEval(t, d, u)
		for c := range want {
			assert.InDelta(t, want[c], got[c], 1e-2, "u=%g component %d", u, c)
		}
	}
}

func TestDeriveComposition(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	d1, err := s.Derive(1, splines.PointEpsilon)
	require.NoError(t, err)
	d11, err := d1.Derive(1, splines.PointEpsilon)
	require.NoError(t, err)
	d2, err := s.Derive(2, splines.PointEpsilon)
	require.NoError(t, err)
	assert.True(t, d11.Equal(d2, splines.PointEpsilon), "d/du d/du s = %v, d²/du² s = %v", d11, d2)
	d0, err := s.Derive(0, splines.PointEpsilon)
	require.NoError(t, err)
	assert.True(t, d0.Equal(s, 0))
}

func TestDeriveBeyondDegree(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	d, err := s.Derive(5, splines.PointEpsilon)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Degree())
	assert.Equal(t, 1, d.NumControlPoints())
	diff(t, []float64{0, 0}, d.ControlPoints())
	diff(t, []float64{0, 1}, d.Knots())
}

func TestDeriveBeziers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	b, err := s.ToBeziers()
	require.NoError(t, err)
	db, err := b.Derive(1, splines.PointEpsilon)
	require.NoError(t, err)
	ds, err := s.Derive(1, splines.PointEpsilon)
	require.NoError(t, err)
	us := s.UniformKnotSeq(21)
	diff(t, mustSample(t, ds, us), mustSample(t, db, us), approx)
}

func TestDeriveDiscontinuity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	b, err := s.ToBeziers()
	require.NoError(t, err)
	require.NoError(t, b.SetControlPointAt(4, []float64{5, 5}))
	_, err = b.Derive(1, splines.PointEpsilon)
	assert.Equal(t, KindUnderivable, KindOf(err))
	d, err := b.Derive(1, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Degree())
	_, err = b.Derive(1, 100)
	assert.NoError(t, err)
	_, err = s.Derive(-1, 0)
	assert.Equal(t, KindUnderivable, KindOf(err))
}
