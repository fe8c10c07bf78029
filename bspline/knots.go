package bspline

import (
	"fmt"

	"github.com/npillmayer/splines"
)

// KnotStyle selects the policy for generating a knot vector.
type KnotStyle int

const (
	// Opened knots are uniformly spaced, without repeated end knots.
	Opened KnotStyle = iota
	// Clamped knots repeat the first and last value order times. The curve
	// then interpolates its first and last control point.
	Clamped
	// Beziers repeats every knot value order times, resulting in a sequence
	// of independent Bezier segments.
	Beziers
)

func (ks KnotStyle) String() string {
	switch ks {
	case Opened:
		return "opened"
	case Clamped:
		return "clamped"
	case Beziers:
		return "beziers"
	}
	return fmt.Sprintf("KnotStyle(%d)", int(ks))
}

// generateKnots fills knots according to a knot style, spreading the
// domain over [min,max].
func generateKnots(knots []float64, degree int, style KnotStyle, min, max float64) {
	nKnots := len(knots)
	order := degree + 1
	switch style {
	case Opened:
		fac := (max - min) / float64(nKnots-1)
		for i := range knots {
			knots[i] = float64(i)*fac + min
		}
		knots[nKnots-1] = max
	case Clamped:
		fac := (max - min) / float64(nKnots-2*degree-1)
		i := 0
		for ; i < order; i++ {
			knots[i] = min
		}
		for ; i < nKnots-order; i++ {
			knots[i] = float64(i-degree)*fac + min
		}
		for ; i < nKnots; i++ {
			knots[i] = max
		}
	case Beziers:
		blocks := nKnots / order
		fac := (max - min) / float64(blocks-1)
		for i := range knots {
			knots[i] = float64(i/order)*fac + min
		}
		for i := nKnots - order; i < nKnots; i++ {
			knots[i] = max
		}
	}
}

// ValidateKnots checks a knot sequence for a spline of a given order:
// knots must not decrease and no knot value may occur more than order
// times. Knot values are compared using splines.KnotsEqual.
func ValidateKnots(knots []float64, order int) error {
	if len(knots) == 0 {
		return nil
	}
	anchor, mult := knots[0], 1
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] && !splines.KnotsEqual(knots[i], knots[i-1]) {
			return fmt.Errorf("%w: knot[%d]=%g < knot[%d]=%g", ErrDecreasingKnots,
				i, knots[i], i-1, knots[i-1])
		}
		if splines.KnotsEqual(anchor, knots[i]) {
			mult++
		} else {
			anchor, mult = knots[i], 1
		}
		if mult > order {
			return fmt.Errorf("%w: knot %g occurs more than %d times", ErrMultiplicity,
				anchor, order)
		}
	}
	return nil
}

// KnotMultiplicity is a distinct knot value together with the number of its
// occurrences.
type KnotMultiplicity struct {
	Knot float64
	Mult int
}

// Multiplicities determines the multiplicities of the values in a
// non-decreasing knot vector.
func Multiplicities(knots []float64) []KnotMultiplicity {
	if len(knots) == 0 {
		return nil
	}
	mults := []KnotMultiplicity{{knots[0], 0}}
	curr := 0
	for _, knot := range knots {
		if !splines.KnotsEqual(knot, mults[curr].Knot) {
			mults = append(mults, KnotMultiplicity{knot, 0})
			curr++
		}
		mults[curr].Mult++
	}
	return mults
}

// rescaleKnots maps knots linearly into [splines.DomainMin,splines.DomainMax]
// if they exceed that range. Relative spacing is preserved.
func rescaleKnots(knots []float64) {
	n := len(knots)
	if n < 2 {
		return
	}
	first, last := knots[0], knots[n-1]
	below := first < splines.DomainMin && !splines.KnotsEqual(first, splines.DomainMin)
	above := last > splines.DomainMax && !splines.KnotsEqual(last, splines.DomainMax)
	if !below && !above {
		return
	}
	span := last - first
	if span <= 0 {
		return
	}
	fac := (splines.DomainMax - splines.DomainMin) / span
	for i, k := range knots {
		if k == last {
			knots[i] = splines.DomainMax
		} else {
			knots[i] = (k-first)*fac + splines.DomainMin
		}
	}
	tracer().Debugf("re-scaled knots [%g,%g] to [%g,%g]", first, last,
		splines.DomainMin, splines.DomainMax)
}
