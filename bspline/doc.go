/*
Package bspline implements B-splines of arbitrary degree and dimension,
together with the numerical operations to evaluate, refine, decompose,
differentiate and re-parameterize them.

A spline is a triple (degree, control points, knot vector). Control points
are stored as one flat buffer of reals, dimension components per point:

	(x0,y0, x1,y1, x2,y2, …)   for dimension 2

The knot vector is a non-decreasing sequence of parameter values, with
no value occurring more than order = degree+1 times. For a spline with n
control points there are always n+order knots.

# Evaluation

Splines are evaluated with de Boor's algorithm. Evaluation does not only
return a point, but the complete triangular net of intermediate points
(type DeBoorNet), as knot insertion re-uses the rows of the net:

	spline, _ := bspline.New(7, 2, 3, bspline.Clamped)
	net, err := spline.Eval(0.4)
	point := net.Result()

# Transformations

All transformations (knot insertion, splitting, sub-splines, Bezier
decomposition, degree elevation, derivation, …) leave their receiver
untouched and return a fresh spline. Clients wanting to transform a spline
in place use Apply:

	err := spline.Apply((*bspline.Spline).ToBeziers)

Apply replaces the receiver only if the transformation succeeded.

# Concurrency

There is no shared mutable state. Distinct splines may be used from
different goroutines without synchronization; a single spline must not be
mutated concurrently.

Tolerances are taken from package splines (KnotEpsilon, PointEpsilon,
LengthEpsilon, DomainMin, DomainMax).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bspline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splines.bspline'
func tracer() tracing.Trace {
	return tracing.Select("splines.bspline")
}
