package bspline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// straight is a clamped cubic along the x-axis with x(u) = 3u.
func straight(t *testing.T) *Spline {
	t.Helper()
	s, err := New(4, 2, 3, Clamped)
	require.NoError(t, err)
	require.NoError(t, s.SetControlPoints([]float64{0, 0, 1, 0, 2, 0, 3, 0}))
	return s
}

func TestChordLengthsStraight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := straight(t)
	cl, err := s.ChordLengths(s.UniformKnotSeq(11))
	require.NoError(t, err)
	assert.Equal(t, 11, cl.Len())
	assert.InDelta(t, 3.0, cl.TotalLength(), 1e-9)
	u, err := cl.TToKnot(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, u, 1e-9)
	u, err = cl.LengthToKnot(0.75)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, u, 1e-9)
	u, _ = cl.TToKnot(-3)
	assert.Equal(t, 0.0, u)
	u, _ = cl.TToKnot(3)
	assert.Equal(t, 1.0, u)
	us, err := s.EquidistantKnotSeq(5, 0)
	require.NoError(t, err)
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, us, approx)
}

func TestTToKnotMonotonic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	cl, err := s.ChordLengths(s.UniformKnotSeq(100))
	require.NoError(t, err)
	lengths := cl.Lengths()
	for i := 1; i < len(lengths); i++ {
		assert.GreaterOrEqual(t, lengths[i], lengths[i-1])
	}
	last := -1.0
	for i := 0; i <= 40; i++ {
		u, err := cl.TToKnot(float64(i) / 40)
		require.NoError(t, err)
		if u < last {
			t.Errorf("t_to_knot not monotonic at t=%g: %g < %g", float64(i)/40, u, last)
		}
		last = u
	}
	assert.Equal(t, 1.0, last)
}

func TestChordLengthsFailures(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	_, err := s.ChordLengths([]float64{0, 0.5, 0.4})
	assert.Equal(t, KindDecreasingKnots, KindOf(err))
	_, err = s.ChordLengths([]float64{0, 0.5, 1.5})
	assert.Equal(t, KindUndefinedParameter, KindOf(err))
	cl, err := s.ChordLengths(nil)
	require.NoError(t, err)
	_, err = cl.TToKnot(0.5)
	assert.Equal(t, KindNoResult, KindOf(err))
	cl, err = s.ChordLengths([]float64{0.3})
	require.NoError(t, err)
	u, err := cl.TToKnot(0.7)
	require.NoError(t, err)
	assert.Equal(t, 0.3, u)
}

func TestBisect(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	net, err := s.Bisect(-1.338333, 1e-5, true, 0, true, 50)
	require.NoError(t, err)
	assert.InDelta(t, -1.338333, net.Result()[0], 1e-5)
	assert.InDelta(t, 0.4, net.Knot(), 1e-3)
	// y decreases after its maximum near u=0.7
	net, err = s.Bisect(0.25, 1e-6, true, 1, false, 50)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, net.Result()[1], 1e-6)
	assert.Greater(t, net.Knot(), 0.7)
}

func TestBisectFailures(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testspline(t)
	_, err := s.Bisect(10, 1e-5, true, 0, true, 20)
	assert.Equal(t, KindNoResult, KindOf(err))
	net, err := s.Bisect(10, 1e-5, false, 0, true, 20)
	require.NoError(t, err)
	assert.Greater(t, net.Knot(), 0.99)
	_, err = s.Bisect(0, 1e-5, true, 2, true, 20)
	assert.Equal(t, KindIndex, KindOf(err))
	_, err = s.Bisect(0, 1e-5, true, 0, true, 0)
	assert.Equal(t, KindNoResult, KindOf(err))
}
