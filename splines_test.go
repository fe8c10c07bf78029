package splines

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conf is a minimal schuko.Configuration for testing purposes
type conf map[string]string

func (c conf) InitDefaults()               {}
func (c conf) IsSet(key string) bool       { _, ok := c[key]; return ok }
func (c conf) GetString(key string) string { return c[key] }
func (c conf) GetInt(key string) int       { return 0 }
func (c conf) GetBool(key string) bool     { return false }
func (c conf) IsInteractive() bool         { return false }

func restoreTolerances(t *testing.T) {
	k, p, l, dmin, dmax := KnotEpsilon, PointEpsilon, LengthEpsilon, DomainMin, DomainMax
	t.Cleanup(func() {
		KnotEpsilon, PointEpsilon, LengthEpsilon, DomainMin, DomainMax = k, p, l, dmin, dmax
	})
}

func TestKnotsEqual(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !KnotsEqual(0.5, 0.50001) {
		t.Errorf("Expected knots 0.5 and 0.50001 to be equal")
	}
	if KnotsEqual(0.5, 0.501) {
		t.Errorf("Expected knots 0.5 and 0.501 to differ")
	}
}

func TestDistance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 5.0, Distance([]float64{0, 0}, []float64{3, 4}), 1e-12)
	assert.InDelta(t, 5.0, Distance([]float64{0, 0, 7}, []float64{3, 4}), 1e-12)
	assert.True(t, PointsEqual([]float64{1, 1}, []float64{1, 1.000001}))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	if !(p + q).Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", p+q)
	}
	if C2P(complex(1, 2)) != P(1, 2) {
		t.Errorf("Expected C2P to preserve coordinates")
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Translation(P(-1, -1)).Transform(P(1, 1)).Equal(Origin) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	m := Rotation(180 * Deg2Rad).Combine(Translation(P(1, 0)))
	if r := m.Transform(P(1, 0)); !r.Equal(Origin) {
		t.Errorf("Expected result to be origin, is %v", r)
	}
}

func TestTransformPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	buf := []float64{1, 0, 0, 1}
	Scaling(2, 3).TransformPoints(buf)
	assert.InDeltaSlice(t, []float64{2, 0, 0, 3}, buf, 1e-12)
}

func TestConfigure(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	restoreTolerances(t)
	err := Configure(conf{KeyKnotEpsilon: "0.001", KeyDomainMax: "10"})
	require.NoError(t, err)
	assert.Equal(t, 0.001, KnotEpsilon)
	assert.Equal(t, 10.0, DomainMax)
	assert.Equal(t, 0.00001, PointEpsilon)
}

func TestConfigureRejectsInvalid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	restoreTolerances(t)
	err := Configure(conf{KeyPointEpsilon: "0.1", KeyKnotEpsilon: "-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Equal(t, 0.00001, PointEpsilon, "settings must stay untouched")
	err = Configure(conf{KeyDomainMin: "1", KeyDomainMax: "1"})
	assert.True(t, errors.Is(err, ErrConfiguration))
	err = Configure(conf{KeyLengthEpsilon: "abc"})
	assert.True(t, errors.Is(err, ErrConfiguration))
}
