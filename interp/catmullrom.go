package interp

import (
	"fmt"
	"math"

	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/bspline"
)

// CatmullRom interpolates points with a Catmull-Rom spline. alpha selects
// the parameterization and is clamped to [0,1]: 0 is uniform, 0.5
// centripetal and 1 chordal.
//
// Consecutive points closer than |epsilon| are merged. If only a single
// point remains, the result is a degenerate segment of four equal control
// points.
//
// first and last are optional phantom points before the first and after the
// last point, controlling the tangents at the curve's ends. If either is nil
// (or too close to its neighbour), it is extrapolated by mirroring the
// second (second to last) point.
func CatmullRom(points []float64, dim int, alpha float64, first, last []float64,
	epsilon float64) (*bspline.Spline, error) {
	if _, err := checkPoints(points, dim); err != nil {
		return nil, err
	}
	for _, phantom := range [][]float64{first, last} {
		if phantom != nil && len(phantom) != dim {
			return nil, fmt.Errorf("%w: phantom point of dimension %d for dimension %d",
				bspline.ErrDimensionMismatch, len(phantom), dim)
		}
	}
	alpha = math.Max(0, math.Min(1, alpha))
	eps := math.Abs(epsilon)
	pts := coalesce(points, dim, eps)
	n := len(pts) / dim
	if n == 1 {
		return cubicPoint(pts, dim)
	}
	ext := make([]float64, 0, (n+2)*dim)
	ext = append(ext, phantomPoint(first, pts[:dim], pts[dim:2*dim], eps)...)
	ext = append(ext, pts...)
	ext = append(ext, phantomPoint(last, pts[(n-1)*dim:], pts[(n-2)*dim:(n-1)*dim], eps)...)
	p := func(i int) []float64 { return ext[i*dim : (i+1)*dim] }
	ctrlp := make([]float64, 0, 4*(n-1)*dim)
	m1, m2 := make([]float64, dim), make([]float64, dim)
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := p(i), p(i+1), p(i+2), p(i+3)
		t0 := 0.0
		t1 := t0 + math.Pow(splines.Distance(p0, p1), alpha)
		t2 := t1 + math.Pow(splines.Distance(p1, p2), alpha)
		t3 := t2 + math.Pow(splines.Distance(p2, p3), alpha)
		c1, c2 := (t2-t1)/(t2-t0), (t1-t0)/(t2-t0)
		d1, d2 := (t3-t2)/(t3-t1), (t2-t1)/(t3-t1)
		for k := 0; k < dim; k++ {
			m1[k] = (t2 - t1) * (c1*(p1[k]-p0[k])/(t1-t0) + c2*(p2[k]-p1[k])/(t2-t1))
			m2[k] = (t2 - t1) * (d1*(p2[k]-p1[k])/(t2-t1) + d2*(p3[k]-p2[k])/(t3-t2))
		}
		ctrlp = append(ctrlp, p1...)
		for k := 0; k < dim; k++ {
			ctrlp = append(ctrlp, p1[k]+m1[k]/3)
		}
		for k := 0; k < dim; k++ {
			ctrlp = append(ctrlp, p2[k]-m2[k]/3)
		}
		ctrlp = append(ctrlp, p2...)
	}
	tracer().Infof("Catmull-Rom spline through %d points, alpha=%g", n, alpha)
	return beziers(ctrlp, dim)
}

// coalesce drops every point closer than eps to its predecessor.
func coalesce(points []float64, dim int, eps float64) []float64 {
	pts := append([]float64(nil), points[:dim]...)
	prev := points[:dim]
	for i := dim; i < len(points); i += dim {
		curr := points[i : i+dim]
		if splines.Distance(prev, curr) > eps {
			pts = append(pts, curr...)
			prev = curr
		}
	}
	if dropped := (len(points) - len(pts)) / dim; dropped > 0 {
		tracer().Debugf("merged %d points closer than %g", dropped, eps)
	}
	return pts
}

// phantomPoint returns p if it is usable, otherwise end mirrored at
// neighbour: end + (end - neighbour).
func phantomPoint(p, end, neighbour []float64, eps float64) []float64 {
	if p != nil && splines.Distance(p, end) > eps {
		return p
	}
	ph := make([]float64, len(end))
	for k := range end {
		ph[k] = 2*end[k] - neighbour[k]
	}
	return ph
}
