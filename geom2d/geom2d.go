// Package geom2d provides geometric primitives over vec2 — circles,
// rectangles, segments, polygons — and the point-in-shape and
// intersection tests between them.
//
// All boundaries are inclusive: a point exactly on a circle's rim, a
// rectangle's edge, or a polygon vertex counts as contained. Everything
// is a pure function of its inputs.
package geom2d

import (
	"github.com/planekit/planekit/vec2"
)

// Circle is a center and radius.
type Circle struct {
	Center vec2.Vec2
	Radius float64
}

// Rect is an axis-aligned rectangle spanned by its minimum and maximum
// corners. Construct through NewRect to get the corners normalized.
type Rect struct {
	Min, Max vec2.Vec2
}

// Segment is the line segment between two endpoints.
type Segment struct {
	A, B vec2.Vec2
}

// Polygon is a closed loop of vertices in order; the closing edge from
// the last vertex back to the first is implicit.
type Polygon []vec2.Vec2

// NewRect returns the rectangle spanning the two given corners,
// whichever order they are supplied in.
func NewRect(a, b vec2.Vec2) Rect {
	return Rect{Min: a.Min(b), Max: a.Max(b)}
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p vec2.Vec2) bool {
	d := p.Sub(c.Center)

	return d.Dot(d) <= c.Radius*c.Radius
}

// Overlaps reports whether the two circles share any point.
func (c Circle) Overlaps(o Circle) bool {
	d := o.Center.Sub(c.Center)
	r := c.Radius + o.Radius

	return d.Dot(d) <= r*r
}

// Contains reports whether p lies inside or on the rectangle.
func (r Rect) Contains(p vec2.Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Overlaps reports whether the two rectangles share any point, edge
// contact included.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Size returns the rectangle's width and height as a vector.
func (r Rect) Size() vec2.Vec2 { return r.Max.Sub(r.Min) }

// Contains reports whether p lies inside the polygon by the even-odd
// rule: a ray cast toward +X crosses the boundary an odd number of
// times. Points exactly on an edge count as contained.
func (pg Polygon) Contains(p vec2.Vec2) bool {
	n := len(pg)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pg[j], pg[i]
		if (Segment{A: a, B: b}).onSegment(p) {
			return true
		}
		// Edge straddles the horizontal through p; test the crossing x.
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}

	return inside
}

// Intersects reports whether the two segments share a point.
func (s Segment) Intersects(o Segment) bool {
	_, ok := s.Intersection(o)
	if ok {
		return true
	}

	// Collinear segments have no unique intersection point but may
	// still overlap or touch.
	return s.onSegment(o.A) || s.onSegment(o.B) || o.onSegment(s.A) || o.onSegment(s.B)
}

// Intersection returns the unique crossing point of two non-parallel
// segments, with ok=false when the segments are parallel, collinear, or
// miss each other.
func (s Segment) Intersection(o Segment) (vec2.Vec2, bool) {
	r := s.B.Sub(s.A)
	q := o.B.Sub(o.A)
	denom := r.Cross(q)
	if denom == 0 {
		return vec2.Vec2{}, false
	}

	d := o.A.Sub(s.A)
	t := d.Cross(q) / denom
	u := d.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return vec2.Vec2{}, false
	}

	return s.A.Add(r.Scale(t)), true
}

// onSegment reports whether p lies on s, endpoints included.
func (s Segment) onSegment(p vec2.Vec2) bool {
	d := s.B.Sub(s.A)
	ap := p.Sub(s.A)
	if d.Cross(ap) != 0 {
		return false
	}
	dot := ap.Dot(d)

	return dot >= 0 && dot <= d.Dot(d)
}
