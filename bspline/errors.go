package bspline

import "errors"

// Error kinds reported by the engine. Every fallible operation wraps one of
// these sentinels with a detailed message; clients not interested in the
// details test with errors.Is or use KindOf.
var (
	// ErrDimensionZero indicates a spline or point sequence of dimension 0.
	ErrDimensionZero = errors.New("dimension must not be zero")
	// ErrDegreeTooLarge indicates degree >= number of control points.
	ErrDegreeTooLarge = errors.New("degree too large")
	// ErrUndefinedParameter indicates a parameter outside of a spline's domain.
	ErrUndefinedParameter = errors.New("parameter outside of domain")
	// ErrMultiplicity indicates a knot multiplicity greater than the order.
	ErrMultiplicity = errors.New("knot multiplicity exceeded")
	// ErrDecreasingKnots indicates a knot sequence which is not non-decreasing.
	ErrDecreasingKnots = errors.New("decreasing knots")
	// ErrBadKnotCount indicates a knot count inconsistent with the requested style.
	ErrBadKnotCount = errors.New("bad knot count")
	// ErrUnderivable indicates a discontinuity which prevents derivation.
	ErrUnderivable = errors.New("spline is not derivable")
	// ErrIndex indicates an out-of-range component or control point index.
	ErrIndex = errors.New("index out of range")
	// ErrParse indicates an inconsistent interchange record.
	ErrParse = errors.New("cannot parse spline record")
	// ErrNoResult indicates a search which did not find a qualifying answer.
	ErrNoResult = errors.New("no result")
	// ErrNumPointsMismatch indicates a buffer of unexpected size.
	ErrNumPointsMismatch = errors.New("number of points mismatch")
	// ErrDimensionMismatch indicates an operation restricted to other dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// ErrorKind classifies errors of this package.
type ErrorKind int

// Error kinds, one for each sentinel error.
const (
	KindNone ErrorKind = iota
	KindDimensionZero
	KindDegreeTooLarge
	KindUndefinedParameter
	KindMultiplicity
	KindDecreasingKnots
	KindBadKnotCount
	KindUnderivable
	KindIndex
	KindParse
	KindNoResult
	KindNumPointsMismatch
	KindDimensionMismatch
	KindUnknown
)

var kindSentinels = []struct {
	kind ErrorKind
	err  error
	name string
}{
	{KindDimensionZero, ErrDimensionZero, "DimensionZero"},
	{KindDegreeTooLarge, ErrDegreeTooLarge, "DegreeTooLarge"},
	{KindUndefinedParameter, ErrUndefinedParameter, "UndefinedParameter"},
	{KindMultiplicity, ErrMultiplicity, "MultiplicityExceeded"},
	{KindDecreasingKnots, ErrDecreasingKnots, "DecreasingKnots"},
	{KindBadKnotCount, ErrBadKnotCount, "BadKnotCount"},
	{KindUnderivable, ErrUnderivable, "Underivable"},
	{KindIndex, ErrIndex, "IndexError"},
	{KindParse, ErrParse, "ParseError"},
	{KindNoResult, ErrNoResult, "NoResult"},
	{KindNumPointsMismatch, ErrNumPointsMismatch, "NumPointsMismatch"},
	{KindDimensionMismatch, ErrDimensionMismatch, "DimensionMismatch"},
}

// KindOf returns the kind of an error. A nil error has kind KindNone,
// errors not originating from this package have kind KindUnknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, ks := range kindSentinels {
		if errors.Is(err, ks.err) {
			return ks.kind
		}
	}
	return KindUnknown
}

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "Success"
	case KindUnknown:
		return "Unknown"
	}
	for _, ks := range kindSentinels {
		if ks.kind == k {
			return ks.name
		}
	}
	return "Unknown"
}
