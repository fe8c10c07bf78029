package bspline

import (
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/splines"
)

// ChordLengths is a table of cumulative chord lengths over a sequence of
// knots of a spline. It approximates the arc length of the curve and is
// used to re-parameterize a spline by (approximate) arc length.
type ChordLengths struct {
	knots   []float64 // ascending knots
	lengths []float64 // lengths[i] = chord length from knots[0] to knots[i]
}

// ChordLengths evaluates a spline at the given knots and accumulates the
// Euclidean distances between consecutive points. Knots must be in
// ascending order and inside the domain.
func (s *Spline) ChordLengths(knots []float64) (*ChordLengths, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot measure empty spline", ErrDimensionZero)
	}
	cl := &ChordLengths{
		knots:   append([]float64(nil), knots...),
		lengths: make([]float64, len(knots)),
	}
	if len(knots) == 0 {
		return cl, nil
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return nil, fmt.Errorf("%w: sample knot[%d]=%g < knot[%d]=%g", ErrDecreasingKnots,
				i, knots[i], i-1, knots[i-1])
		}
	}
	net, err := s.Eval(knots[0])
	if err != nil {
		return nil, err
	}
	last := net.result()
	for i := 1; i < len(knots); i++ {
		if net, err = s.Eval(knots[i]); err != nil {
			return nil, err
		}
		curr := net.result()
		cl.lengths[i] = cl.lengths[i-1] + splines.Distance(last, curr)
		last = curr
	}
	return cl, nil
}

// Knots returns a copy of the sampled knots.
func (cl *ChordLengths) Knots() []float64 {
	return append([]float64(nil), cl.knots...)
}

// Lengths returns a copy of the cumulative chord lengths.
func (cl *ChordLengths) Lengths() []float64 {
	return append([]float64(nil), cl.lengths...)
}

// Len returns the number of entries of the table.
func (cl *ChordLengths) Len() int {
	return len(cl.knots)
}

// TotalLength returns the chord length between the first and the last
// sampled knot.
func (cl *ChordLengths) TotalLength() float64 {
	if len(cl.lengths) == 0 {
		return 0
	}
	return cl.lengths[len(cl.lengths)-1]
}

// TToKnot maps a relative position t ∈ [0,1] along the curve to a knot.
// t is clamped to [0,1]. Fails with ErrNoResult for an empty table.
func (cl *ChordLengths) TToKnot(t float64) (float64, error) {
	t = math.Max(0, math.Min(1, t))
	return cl.LengthToKnot(t * cl.TotalLength())
}

// LengthToKnot maps a chord length, measured from the first sampled knot,
// to a knot. The bracketing table entries are found by binary search; the
// knot is interpolated linearly between them.
func (cl *ChordLengths) LengthToKnot(length float64) (float64, error) {
	n := len(cl.knots)
	if n == 0 {
		return 0, fmt.Errorf("%w: empty chord lengths", ErrNoResult)
	}
	if length <= 0 || n == 1 {
		return cl.knots[0], nil
	}
	if length >= cl.lengths[n-1] {
		return cl.knots[n-1], nil
	}
	// lengths[idx] <= length < lengths[idx+1]
	idx := sort.Search(n, func(i int) bool { return cl.lengths[i] > length }) - 1
	num := length - cl.lengths[idx]
	denom := cl.lengths[idx+1] - cl.lengths[idx]
	r := 0.0
	if denom > 0 {
		r = num / denom
	}
	return cl.knots[idx] + r*(cl.knots[idx+1]-cl.knots[idx]), nil
}

// EquidistantKnots returns n knots which divide the curve into n-1 parts
// of (approximately) equal length.
func (cl *ChordLengths) EquidistantKnots(n int) ([]float64, error) {
	if n <= 0 {
		return nil, nil
	}
	us := make([]float64, n)
	for i := range us {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		u, err := cl.TToKnot(t)
		if err != nil {
			return nil, err
		}
		us[i] = u
	}
	return us, nil
}

// EquidistantKnotSeq returns n knots spaced equidistantly along the curve,
// measured by chord lengths over numSamples uniformly spaced parameters.
// If numSamples is 0, a number proportional to the number of segments is
// chosen.
func (s *Spline) EquidistantKnotSeq(n, numSamples int) ([]float64, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot re-parameterize empty spline", ErrDimensionZero)
	}
	if numSamples <= 0 {
		numSamples = (s.NumControlPoints() - s.degree) * 200
	}
	cl, err := s.ChordLengths(s.UniformKnotSeq(numSamples))
	if err != nil {
		return nil, err
	}
	return cl.EquidistantKnots(n)
}

// Bisect searches for a parameter u where component index of the curve
// point equals value (within |epsilon|). The domain is bisected at most
// maxIter times. If ascending is set, the component is expected to increase
// along the curve, otherwise to decrease.
//
// If no point within epsilon is found, Bisect fails with ErrNoResult if
// strict is set; otherwise the closest candidate evaluated is returned.
// An index >= Dimension() fails with ErrIndex.
func (s *Spline) Bisect(value, epsilon float64, strict bool, index int, ascending bool,
	maxIter int) (*DeBoorNet, error) {
	if index < 0 || index >= s.dim {
		return nil, fmt.Errorf("%w: component %d of dimension %d", ErrIndex, index, s.dim)
	}
	if maxIter <= 0 {
		return nil, fmt.Errorf("%w: %d iterations", ErrNoResult, maxIter)
	}
	eps := math.Abs(epsilon)
	lo, hi := s.Domain()
	var best *DeBoorNet
	bestDist := math.Inf(1)
	for i := 0; i < maxIter; i++ {
		mid := (lo + hi) / 2
		net, err := s.Eval(mid)
		if err != nil {
			return nil, err
		}
		found := net.result()[index]
		dist := math.Abs(found - value)
		if dist <= eps {
			return net, nil
		}
		if dist < bestDist {
			best, bestDist = net, dist
		}
		if ascending == (found < value) {
			lo = mid
		} else {
			hi = mid
		}
	}
	if strict {
		tracer().Debugf("bisection for %g did not converge in %d iterations", value, maxIter)
		return nil, fmt.Errorf("%w: maximum iterations (%d) exceeded, closest distance %g",
			ErrNoResult, maxIter, bestDist)
	}
	return best, nil
}
