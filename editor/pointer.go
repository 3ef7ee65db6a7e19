package editor

import (
	"math"
	"sort"

	"mindgrid/geometry"
)

// Modifiers qualify a pointer event.
type Modifiers uint8

const (
	// ModLink marks the linking gesture (shift-click / shift-drag).
	ModLink Modifiers = 1 << iota
	// ModToggle marks multi-select toggling and additive edge selection.
	ModToggle
)

type dragState struct {
	active bool
	ids    []int
	last   geometry.Point // world coords
	pushed bool           // history entry made for this gesture
}

type marqueeState struct {
	active bool
	origin geometry.Point
	rect   geometry.Rect
	moved  bool
}

type pinchState struct {
	active     bool
	lastDist   float64
	lastCenter geometry.Point // screen coords
}

// Marquee returns the live marquee rectangle and whether one is active,
// for the shell to draw.
func (e *Editor) Marquee() (geometry.Rect, bool) {
	return e.marquee.rect, e.marquee.active && e.marquee.moved
}

// PointerDown registers a pointer and starts the matching gesture. The
// gesture kind is decided by the count of active pointers, recomputed
// on every event: one pointer drags, links or marquees; two pointers
// pan and pinch-zoom.
func (e *Editor) PointerDown(pointerID int, sx, sy float64, mods Modifiers) {
	e.pointers[pointerID] = geometry.Point{X: sx, Y: sy}

	if len(e.pointers) >= 2 {
		// Second contact reclassifies the gesture as pinch/pan; any
		// armed single-pointer gesture is abandoned.
		e.cancelDrag()
		e.link = LinkState{}
		e.marquee = marqueeState{}
		e.startPinch()
		return
	}

	world := e.ScreenToWorld(sx, sy)
	if mods&ModLink != 0 {
		e.LinkPointerDown(world)
		return
	}

	if hit := e.HitTestNode(world); hit != 0 {
		if mods&ModToggle != 0 {
			e.ToggleNode(hit)
			return
		}
		if !e.sel.Has(hit) {
			e.selectOnly(hit)
		}
		e.drag = dragState{
			active: true,
			ids:    append([]int(nil), e.sel.IDs...),
			last:   world,
		}
		return
	}
	if edgeID := e.HitTestEdge(world); edgeID != 0 {
		e.SelectEdge(edgeID, mods&ModToggle != 0)
		return
	}
	e.marquee = marqueeState{
		active: true,
		origin: world,
		rect:   geometry.Rect{X1: world.X, Y1: world.Y, X2: world.X, Y2: world.Y},
	}
}

// PointerMove advances whichever gesture is in flight.
func (e *Editor) PointerMove(pointerID int, sx, sy float64) {
	if _, ok := e.pointers[pointerID]; !ok {
		return
	}
	e.pointers[pointerID] = geometry.Point{X: sx, Y: sy}

	if len(e.pointers) >= 2 {
		e.movePinch()
		return
	}

	world := e.ScreenToWorld(sx, sy)
	if e.link.Phase != LinkIdle {
		e.LinkPointerMove(world)
		return
	}
	if e.drag.active {
		// One history entry per drag gesture, made before the first
		// applied movement, not per sampled move.
		if !e.drag.pushed {
			e.pushHistory()
			e.drag.pushed = true
		}
		dx := world.X - e.drag.last.X
		dy := world.Y - e.drag.last.Y
		for _, id := range e.drag.ids {
			if n := e.store.Node(id); n != nil {
				n.X += dx
				n.Y += dy
			}
		}
		e.drag.last = world
		return
	}
	if e.marquee.active {
		e.marquee.rect = geometry.Rect{
			X1: e.marquee.origin.X, Y1: e.marquee.origin.Y,
			X2: world.X, Y2: world.Y,
		}
		e.marquee.moved = true
	}
}

// PointerUp completes the gesture for the released pointer.
func (e *Editor) PointerUp(pointerID int, sx, sy float64) {
	delete(e.pointers, pointerID)

	if e.pinch.active {
		if len(e.pointers) < 2 {
			e.pinch = pinchState{}
		}
		return
	}

	world := e.ScreenToWorld(sx, sy)
	if e.link.Phase != LinkIdle {
		e.LinkPointerUp(world)
		return
	}
	if e.drag.active {
		e.drag = dragState{}
		return
	}
	if e.marquee.active {
		marquee := e.marquee
		e.marquee = marqueeState{}
		if !marquee.moved {
			// A plain click on empty space clears the selection.
			e.sel.Clear()
			return
		}
		e.applyMarquee(marquee.rect)
	}
}

// PointerCancel drops all transient gesture state without a history
// entry and without leaving a gesture half-applied: a cancelled drag
// rolls the nodes back to their pre-gesture positions.
func (e *Editor) PointerCancel() {
	e.cancelDrag()
	e.resetTransient()
}

// cancelDrag reverts a drag in flight. The gesture's history entry is
// consumed to restore the pre-drag state, leaving both stacks as they
// were before the gesture began.
func (e *Editor) cancelDrag() {
	if e.drag.active && e.drag.pushed {
		if snap := e.history.PopLast(); snap != nil {
			e.restore(snap)
		}
	}
	e.drag = dragState{}
}

// applyMarquee selects every node whose center point falls within the
// rectangle, bounds inclusive. Partially overlapped nodes whose center
// lies outside are not taken.
func (e *Editor) applyMarquee(rect geometry.Rect) {
	var ids []int
	for i := range e.store.Nodes {
		n := &e.store.Nodes[i]
		if rect.Contains(geometry.Point{X: n.X, Y: n.Y}) {
			ids = append(ids, n.ID)
		}
	}
	e.pushHistory()
	e.sel.SetAll(ids)
	e.navPath = nil
	if len(ids) > 0 {
		e.freshTyping = true
	}
}

// startPinch seeds the two-pointer gesture from the current contacts.
func (e *Editor) startPinch() {
	a, b, ok := e.twoPointers()
	if !ok {
		return
	}
	e.pinch = pinchState{
		active:     true,
		lastDist:   geometry.Dist(a, b),
		lastCenter: geometry.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2},
	}
}

// movePinch pans by the centroid delta and zooms by the distance ratio
// around the centroid, recomputed on every move.
func (e *Editor) movePinch() {
	if !e.pinch.active {
		e.startPinch()
		return
	}
	a, b, ok := e.twoPointers()
	if !ok {
		return
	}
	center := geometry.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	dist := geometry.Dist(a, b)

	e.PanBy(center.X-e.pinch.lastCenter.X, center.Y-e.pinch.lastCenter.Y)
	if e.pinch.lastDist > 0 && dist > 0 {
		factor := dist / e.pinch.lastDist
		if math.Abs(factor-1) > 1e-6 {
			e.ZoomAt(center.X, center.Y, factor)
		}
	}
	e.pinch.lastCenter = center
	e.pinch.lastDist = dist
}

// twoPointers returns the two lowest-id active contacts.
func (e *Editor) twoPointers() (a, b geometry.Point, ok bool) {
	if len(e.pointers) < 2 {
		return a, b, false
	}
	ids := make([]int, 0, len(e.pointers))
	for id := range e.pointers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return e.pointers[ids[0]], e.pointers[ids[1]], true
}
