package layout

import (
	"math"

	"mindgrid/geometry"
	"mindgrid/graph"
)

// GoldenAngle is π(3−√5) ≈ 2.399963 rad. Successive increments by this
// angle maximize angular spread before repeating (phyllotaxis pattern),
// so a growing-radius sweep rarely retests the same direction.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Spiral search tuning. The caps and growth cadence are matched to the
// expected node density; changing them changes where nodes land.
const (
	nodeClearance = 8.0
	edgeClearance = 6.0

	standaloneRadius = 60.0
	standaloneGrow   = 20.0
	standaloneEvery  = 4
	standaloneTries  = 120

	// ChildRadius is the preferred distance between a parent and a new
	// child. With an empty neighborhood children land exactly here.
	ChildRadius = 160.0
	childGrow   = 40.0
	childEvery  = 3
	childTries  = 60
)

// Placer finds collision-free positions for new nodes against the live
// graph. Nodes are treated as bounding circles and edges as thick
// segments, a cheap conservative approximation.
type Placer struct {
	Store *graph.Store
}

// newNodeRadius is the bounding radius assumed for a node that has not
// been laid out yet.
func newNodeRadius() float64 {
	return geometry.BoxRadius(MinNodeW, MinNodeH)
}

// IsPositionFree reports whether a new minimum-sized node centered at
// (x, y) would keep clear of every existing node and edge. The node
// with excludeID and its incident edges are ignored; pass 0 to exclude
// nothing.
func (p Placer) IsPositionFree(x, y float64, excludeID int) bool {
	candidate := geometry.Point{X: x, Y: y}
	r := newNodeRadius()

	for i := range p.Store.Nodes {
		n := &p.Store.Nodes[i]
		if n.ID == excludeID {
			continue
		}
		if geometry.Dist(candidate, geometry.Point{X: n.X, Y: n.Y}) <= geometry.BoxRadius(n.W, n.H)+r+nodeClearance {
			return false
		}
	}
	for i := range p.Store.Edges {
		e := &p.Store.Edges[i]
		if e.Source == excludeID || e.Target == excludeID {
			continue
		}
		src := p.Store.Node(e.Source)
		dst := p.Store.Node(e.Target)
		if src == nil || dst == nil {
			continue // dangling edge, skipped everywhere
		}
		a := geometry.Point{X: src.X, Y: src.Y}
		b := geometry.Point{X: dst.X, Y: dst.Y}
		if geometry.DistToSegment(candidate, a, b) <= r+edgeClearance {
			return false
		}
	}
	return true
}

// spiral runs the bounded golden-angle search around a center point and
// returns the first free candidate. An exhausted search is not an
// error: the last tried point is returned, accepting a possible minor
// overlap rather than failing the operation.
func (p Placer) spiral(center geometry.Point, angle, radius, grow float64, every, tries, excludeID int) geometry.Point {
	candidate := center
	for i := 0; i < tries; i++ {
		candidate = geometry.Point{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
		}
		if p.IsPositionFree(candidate.X, candidate.Y, excludeID) {
			return candidate
		}
		angle += GoldenAngle
		if (i+1)%every == 0 {
			radius += grow
		}
	}
	return candidate
}

// FindStandalone returns a free position for a new unconnected node,
// preferring the requested point (typically the viewport center in
// world coordinates) and spiraling outward from it when occupied.
func (p Placer) FindStandalone(at geometry.Point) geometry.Point {
	if p.IsPositionFree(at.X, at.Y, 0) {
		return at
	}
	return p.spiral(at, 0, standaloneRadius, standaloneGrow, standaloneEvery, standaloneTries, 0)
}

// FindChild returns a position for a new child of the given parent.
// The start angle advances by the golden angle per existing child,
// which alone distributes siblings evenly around the parent in
// insertion order; the collision spiral only kicks in for dense
// neighborhoods. The parent and its incident edges are excluded from
// the collision check. Returns false when the parent does not exist.
func (p Placer) FindChild(parentID int) (geometry.Point, bool) {
	parent := p.Store.Node(parentID)
	if parent == nil {
		return geometry.Point{}, false
	}
	center := geometry.Point{X: parent.X, Y: parent.Y}
	angle := float64(len(p.Store.Children(parentID))) * GoldenAngle
	return p.spiral(center, angle, ChildRadius, childGrow, childEvery, childTries, parentID), true
}
