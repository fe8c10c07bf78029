/*
Package rmf computes rotation minimizing frames along B-splines.

A frame is a right-handed orthonormal coordinate system (tangent, normal,
binormal) attached to a point of a curve. Frames computed for a sequence of
knots rotate as little as possible around the tangent from one knot to the
next, which makes them suitable for sweeping profiles along a curve or
orienting objects travelling on it.

Frames are propagated with the double reflection method:

	Wenping Wang, Bert Jüttler, Dayue Zheng, and Yang Liu. 2008.
	Computation of rotation minimizing frames.
	ACM Trans. Graph. 27, 1, Article 2.

Splines of any dimension are accepted. Positions and tangents use the first
three components of a spline's points; missing components are taken to
be zero.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package rmf

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/bspline"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'splines.rmf'
func tracer() tracing.Trace {
	return tracing.Select("splines.rmf")
}

// Frame is a coordinate system at a point of a curve.
type Frame struct {
	Position vec3.T
	Tangent  vec3.T
	Normal   vec3.T
	Binormal vec3.T
}

// FrameSequence is a sequence of frames along a curve.
type FrameSequence []Frame

// Compute calculates rotation minimizing frames of a spline at the given
// knots. Knots must be inside the spline's domain. If firstNormal is nil, the
// normal of the first frame is chosen perpendicular to the tangent and to
// the coordinate axis least aligned with it. Otherwise firstNormal is used
// as given; it should be a unit vector perpendicular to the first tangent.
func Compute(spline *bspline.Spline, knots []float64, firstNormal *vec3.T) (FrameSequence, error) {
	if len(knots) == 0 {
		return FrameSequence{}, nil
	}
	deriv, err := spline.Derive(1, -1)
	if err != nil {
		return nil, err
	}
	frames := make(FrameSequence, len(knots))
	for i, u := range knots {
		net, err := spline.Eval(u)
		if err != nil {
			return nil, err
		}
		frames[i].Position = toVec3(net.Result())
		if net, err = deriv.Eval(u); err != nil {
			return nil, err
		}
		frames[i].Tangent = toVec3(net.Result())
		if !splines.Is0(frames[i].Tangent.Length()) {
			frames[i].Tangent.Normalize()
		}
	}
	first := &frames[0]
	if firstNormal != nil {
		first.Normal = *firstNormal
	} else {
		axis := leastAlignedAxis(&first.Tangent)
		first.Normal = vec3.Cross(&first.Tangent, &axis)
		if first.Normal.Length() > 0 {
			first.Normal.Normalize()
		}
	}
	first.Binormal = vec3.Cross(&first.Tangent, &first.Normal)
	for i := 0; i < len(frames)-1; i++ {
		propagate(&frames[i], &frames[i+1])
	}
	tracer().Debugf("computed %d rotation minimizing frames", len(frames))
	return frames, nil
}

// propagate computes the normal and binormal of next from curr by double
// reflection: curr is reflected at the bisecting plane of the two positions,
// and the result is reflected once more to align its tangent with next's.
func propagate(curr, next *Frame) {
	v1 := vec3.Sub(&next.Position, &curr.Position)
	rL, tL := curr.Normal, curr.Tangent
	if c1 := vec3.Dot(&v1, &v1); c1 != 0 {
		rL = reflect(&curr.Normal, &v1, c1)
		tL = reflect(&curr.Tangent, &v1, c1)
	}
	v2 := vec3.Sub(&next.Tangent, &tL)
	next.Normal = rL
	if c2 := vec3.Dot(&v2, &v2); c2 != 0 {
		next.Normal = reflect(&rL, &v2, c2)
	}
	next.Binormal = vec3.Cross(&next.Tangent, &next.Normal)
}

// reflect mirrors x at the plane with normal v, where c = v·v.
func reflect(x, v *vec3.T, c float64) vec3.T {
	s := v.Scaled(2 / c * vec3.Dot(v, x))
	return vec3.Sub(x, &s)
}

// leastAlignedAxis returns the coordinate axis with the smallest absolute
// component of t.
func leastAlignedAxis(t *vec3.T) vec3.T {
	axis := vec3.UnitX
	least := math.Abs(t[0])
	if a := math.Abs(t[1]); a < least {
		axis, least = vec3.UnitY, a
	}
	if a := math.Abs(t[2]); a < least {
		axis = vec3.UnitZ
	}
	return axis
}

func toVec3(p []float64) vec3.T {
	var v vec3.T
	copy(v[:], p)
	return v
}

// Positions returns the positions of all frames, as a flat buffer of
// 3D points.
func (seq FrameSequence) Positions() []float64 {
	points := make([]float64, 0, 3*len(seq))
	for _, f := range seq {
		points = append(points, f.Position[:]...)
	}
	return points
}

// Angles returns the pairwise angles between the axes of frame i in degrees:
// tangent/normal, tangent/binormal and normal/binormal.
func (seq FrameSequence) Angles(i int) ([3]float64, error) {
	if i < 0 || i >= len(seq) {
		return [3]float64{}, fmt.Errorf("%w: frame %d of %d", bspline.ErrIndex, i, len(seq))
	}
	f := seq[i]
	return [3]float64{
		angle(&f.Tangent, &f.Normal),
		angle(&f.Tangent, &f.Binormal),
		angle(&f.Normal, &f.Binormal),
	}, nil
}

func angle(a, b *vec3.T) float64 {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := math.Max(-1, math.Min(1, vec3.Dot(a, b)/(la*lb)))
	return math.Acos(cos) / splines.Deg2Rad
}
