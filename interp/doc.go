/*
Package interp creates B-splines which interpolate a sequence of points.

Two interpolators are provided:

  - CubicNatural computes a natural cubic spline, i.e. a C²-continuous
    curve with vanishing second derivatives at both ends. The B-spline
    control points are found by solving a tridiagonal system of equations
    with the Thomas algorithm (ThomasSolve).

  - CatmullRom computes a (centripetal, chordal or uniform) Catmull-Rom
    spline, a C¹-continuous curve whose tangents are estimated from the
    neighbouring points.

Both return cubic splines in Bezier form: every segment between two
consecutive points is represented by four control points, and every knot
occurs order times (see bspline.Beziers). The spline passes through point i
at knot i/(n-1) of the canonical domain.

Points are given as a flat buffer of reals, dimension components per
point, as everywhere in this module.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package interp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splines.interp'
func tracer() tracing.Trace {
	return tracing.Select("splines.interp")
}
