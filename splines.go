/*
Package splines is the root of a small curve-algebra engine for B-splines.
It holds the numeric tolerances shared by all sub-packages, predicates
for comparing knots and points, and 2D pairs with affine transformations.

The actual engine lives in the sub-packages:

	bspline   splines, knot vectors, de Boor evaluation and transformations
	interp    natural cubic and Catmull-Rom interpolation
	rmf       rotation minimizing frames along 3D curves
	polygon   control polygons of 2D splines

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package splines

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/floats"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}

// === Tolerances ============================================================

// KnotEpsilon : knots closer than KnotEpsilon are considered equal.
var KnotEpsilon float64 = 0.0001

// PointEpsilon : points closer than PointEpsilon are considered equal.
var PointEpsilon float64 = 0.00001

// LengthEpsilon : lengths below LengthEpsilon are considered 0.
var LengthEpsilon float64 = 0.0001

// DomainMin is the lower bound of generated knot vectors.
var DomainMin float64 = 0.0

// DomainMax is the upper bound of generated knot vectors.
var DomainMax float64 = 1.0

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// KnotsEqual is a predicate: are knots a and b the same parameter value?
func KnotsEqual(a, b float64) bool {
	return math.Abs(a-b) < KnotEpsilon
}

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= LengthEpsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Distance returns the Euclidean distance of two points of equal dimension.
// Surplus components of the longer slice are ignored.
func Distance(p, q []float64) float64 {
	n := min(len(p), len(q))
	return floats.Distance(p[:n], q[:n], 2)
}

// PointsEqual is a predicate: is the distance between p and q at most PointEpsilon?
func PointsEqual(p, q []float64) bool {
	return Distance(p, q) <= PointEpsilon
}

// === Pair Data Type ========================================================

// Pair is a 2D-point.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return Origin
	}
	return Pair(c)
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Floats returns the pair as a 2D control point.
func (p Pair) Floats() []float64 {
	return []float64{p.X(), p.Y()}
}

// Equal compares two pairs, using PointEpsilon.
func (p Pair) Equal(p2 Pair) bool {
	return cmplx.Abs(complex128(p-p2)) <= PointEpsilon
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming 2D control
// points. Transforming the control points of a B-spline transforms the curve.
type AT []float64 // a 3x3 matrix, flattened by rows

func newAT() AT {
	return make([]float64, 9)
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := Identity()
	sin, cos := math.Sincos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	return m
}

// Scaling transform. Scale x by sx and y by sy.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformations to a new one: first m, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += n.get(row, k) * m.get(k, col)
			}
			o.set(row, col, sum)
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := m.apply(p.X(), p.Y())
	return P(x, y)
}

// TransformPoints transforms a flat buffer of 2D points (x0,y0,x1,y1,…)
// in place. A trailing odd component is left untouched.
func (m AT) TransformPoints(buf []float64) {
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = m.apply(buf[i], buf[i+1])
	}
}

func (m AT) apply(x, y float64) (float64, float64) {
	return m.get(0, 0)*x + m.get(0, 1)*y + m.get(0, 2),
		m.get(1, 0)*x + m.get(1, 1)*y + m.get(1, 2)
}
