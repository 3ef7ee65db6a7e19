// Package geometry contains the pure 2D math used by placement and
// navigation. All functions work in world coordinates (float64) and
// carry no state.
package geometry

import "math"

// Point represents a 2D coordinate in world space.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BoxRadius returns the radius of the bounding circle used for
// conservative overlap checks: half the larger box dimension.
func BoxRadius(w, h float64) float64 {
	return math.Max(w, h) / 2
}

// DistToSegment returns the shortest distance from p to the segment a-b.
// Degenerate segments (a == b) fall back to point distance.
func DistToSegment(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Dist(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = Clamp(t, 0, 1)
	return Dist(p, Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// Centroid returns the mean of a point set. Returns the origin for an
// empty set.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(pts))
	c.Y /= float64(len(pts))
	return c
}

// Spread returns the largest distance from the centroid to any point in
// the set. Used to decide how far out a camera fit has to zoom.
func Spread(pts []Point) float64 {
	c := Centroid(pts)
	var max float64
	for _, p := range pts {
		if d := Dist(c, p); d > max {
			max = d
		}
	}
	return max
}

// Rect represents an axis-aligned rectangle by two opposite corners.
// The corners may be given in any order.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Normalized returns the rect with X1<=X2 and Y1<=Y2.
func (r Rect) Normalized() Rect {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// Contains reports whether p lies inside the rect, bounds inclusive.
func (r Rect) Contains(p Point) bool {
	n := r.Normalized()
	return p.X >= n.X1 && p.X <= n.X2 && p.Y >= n.Y1 && p.Y <= n.Y2
}

// SegmentIntersectsRect reports whether the segment a-b touches the
// rectangle. Either endpoint inside counts as an intersection.
func SegmentIntersectsRect(a, b Point, r Rect) bool {
	n := r.Normalized()
	if n.Contains(a) || n.Contains(b) {
		return true
	}
	corners := [4]Point{
		{n.X1, n.Y1}, {n.X2, n.Y1}, {n.X2, n.Y2}, {n.X1, n.Y2},
	}
	for i := 0; i < 4; i++ {
		if segmentsCross(a, b, corners[i], corners[(i+1)%4]) {
			return true
		}
	}
	return false
}

// segmentsCross reports whether segments p1-p2 and p3-p4 intersect.
func segmentsCross(p1, p2, p3, p4 Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return d1 == 0 && onSegment(p3, p4, p1) ||
		d2 == 0 && onSegment(p3, p4, p2) ||
		d3 == 0 && onSegment(p1, p2, p3) ||
		d4 == 0 && onSegment(p1, p2, p4)
}

func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
