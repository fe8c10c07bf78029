/*
Package polygon deals with polygons in the plane, most prominently the
control polygons of 2D B-splines.

Polygons are built MetaPost-style:

	pg := NullPolygon().Knot(splines.P(0,0)).Knot(splines.P(1,3)).Knot(splines.P(3,0)).Cycle()

A polygon created with Cycle() is closed, one created with End() is an
open chain of line segments. Bounding boxes, point containment and boolean
clipping operations are delegated to polyclip; for these, open polygons
are treated as if they were closed.

A B-spline lies inside the convex hull of its control polygon. Bounding
boxes of control polygons are therefore cheap conservative bounds for the
curves themselves.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/bspline"
)

// L traces to the tracer with key 'splines.polygon'
func L() tracing.Trace {
	return tracing.Select("splines.polygon")
}

// Polygon is a sequence of points in the plane, either open or closed.
type Polygon struct {
	points []splines.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon.
func NullPolygon() *Polygon {
	return &Polygon{points: make([]splines.Pair, 0, 4)}
}

// Knot appends a point to a polygon.
func (pg *Polygon) Knot(p splines.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes a polygon.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End ends an open polygon.
func (pg *Polygon) End() *Polygon {
	pg.cycle = false
	return pg
}

// Box creates a closed rectangular polygon from two opposite corners.
// The points run counter-clockwise, starting at the lower left corner.
func Box(p1, p2 splines.Pair) *Polygon {
	minx, maxx := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	miny, maxy := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return NullPolygon().Knot(splines.P(minx, miny)).Knot(splines.P(maxx, miny)).
		Knot(splines.P(maxx, maxy)).Knot(splines.P(minx, maxy)).Cycle()
}

// N returns the number of points of a polygon.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns point i. For cycles, i is taken modulo N().
func (pg *Polygon) Pt(i int) splines.Pair {
	if pg.cycle && len(pg.points) > 0 {
		i = ((i % len(pg.points)) + len(pg.points)) % len(pg.points)
	}
	return pg.points[i]
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// AsString returns a polygon in MetaPost notation.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.points {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "(%.4g,%.4g)", splines.Zap(p.X()), splines.Zap(p.Y()))
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

// ControlPolygon returns the control polygon of a 2D spline as an open
// polygon.
func ControlPolygon(s *bspline.Spline) (*Polygon, error) {
	if s.Dimension() != 2 {
		return nil, fmt.Errorf("%w: control polygons need dimension 2, have %d",
			bspline.ErrDimensionMismatch, s.Dimension())
	}
	ctrlp := s.ControlPoints()
	pg := &Polygon{points: make([]splines.Pair, 0, len(ctrlp)/2)}
	for i := 0; i+1 < len(ctrlp); i += 2 {
		pg.Knot(splines.P(ctrlp[i], ctrlp[i+1]))
	}
	return pg.End(), nil
}

// Spline creates a 2D spline of the given degree and knot style which has
// pg as its control polygon.
func (pg *Polygon) Spline(degree int, style bspline.KnotStyle) (*bspline.Spline, error) {
	s, err := bspline.New(pg.N(), 2, degree, style)
	if err != nil {
		return nil, err
	}
	ctrlp := make([]float64, 0, 2*pg.N())
	for _, p := range pg.points {
		ctrlp = append(ctrlp, p.Floats()...)
	}
	if err := s.SetControlPoints(ctrlp); err != nil {
		return nil, err
	}
	return s, nil
}

// Transformed returns a copy of pg with an affine transformation applied
// to every point.
func (pg *Polygon) Transformed(m splines.AT) *Polygon {
	t := &Polygon{points: make([]splines.Pair, len(pg.points)), cycle: pg.cycle}
	for i, p := range pg.points {
		t.points[i] = m.Transform(p)
	}
	return t
}

// BoundingBox returns the lower left and upper right corner of the
// smallest axis-aligned rectangle containing pg.
func (pg *Polygon) BoundingBox() (splines.Pair, splines.Pair) {
	if pg.N() == 0 {
		return splines.Origin, splines.Origin
	}
	r := pg.contour().BoundingBox()
	return splines.P(r.Min.X, r.Min.Y), splines.P(r.Max.X, r.Max.Y)
}

// Contains is a predicate: is p inside the area enclosed by pg?
func (pg *Polygon) Contains(p splines.Pair) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.contour().Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Area returns the (unsigned) area enclosed by pg.
func (pg *Polygon) Area() float64 {
	n := pg.N()
	var a float64
	for i := 0; i < n; i++ {
		p, q := pg.points[i], pg.points[(i+1)%n]
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return math.Abs(a) / 2
}

// Intersection clips pg against q. The result may consist of any number of
// closed polygons.
func (pg *Polygon) Intersection(q *Polygon) []*Polygon {
	return pg.clip(q, polyclip.INTERSECTION)
}

// Union merges pg and q.
func (pg *Polygon) Union(q *Polygon) []*Polygon {
	return pg.clip(q, polyclip.UNION)
}

// Difference removes q from pg.
func (pg *Polygon) Difference(q *Polygon) []*Polygon {
	return pg.clip(q, polyclip.DIFFERENCE)
}

func (pg *Polygon) clip(q *Polygon, op polyclip.Op) []*Polygon {
	subject := polyclip.Polygon{pg.contour()}
	clipping := polyclip.Polygon{q.contour()}
	result := subject.Construct(op, clipping)
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		r := &Polygon{points: make([]splines.Pair, len(c)), cycle: true}
		for i, p := range c {
			r.points[i] = splines.C2P(complex(p.X, p.Y))
		}
		pgs = append(pgs, r)
	}
	L().Debugf("clipping operation %d resulted in %d polygons", op, len(pgs))
	return pgs
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, len(pg.points))
	for i, p := range pg.points {
		c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return c
}
