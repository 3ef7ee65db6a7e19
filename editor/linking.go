package editor

import (
	"math"

	"mindgrid/geometry"
	"mindgrid/graph"
)

// LinkPhase is the linking gesture's state.
type LinkPhase int

const (
	LinkIdle LinkPhase = iota
	LinkPending
	LinkActive
)

// String returns the phase name for status display.
func (p LinkPhase) String() string {
	switch p {
	case LinkPending:
		return "pending"
	case LinkActive:
		return "active"
	default:
		return "idle"
	}
}

// linkDragThreshold is the screen-space distance a pending gesture must
// travel before it becomes a drag.
const linkDragThreshold = 5.0

// LinkState is the transient state of a linking gesture. It lives only
// for the duration of one modified pointer sequence and resets to idle
// at the end of every gesture.
type LinkState struct {
	Phase          LinkPhase
	SourceID       int
	X, Y           float64 // current pointer position, world coords
	StartX, StartY float64 // gesture origin, world coords
}

// Link returns the linking gesture state for rendering the rubber band.
func (e *Editor) Link() LinkState { return e.link }

// LinkPointerDown begins a linking gesture with a modified pointer-down
// at the given world position. Two paths exist:
//
// Over a node while a different node is the sole selection, the gesture
// collapses to a click toggle: an edge between the two is created if
// absent (plain line) or removed if present, and the clicked node takes
// the selection. No pending phase occurs.
//
// Otherwise a pointer-down over a node arms the pending phase with that
// node as the would-be source.
func (e *Editor) LinkPointerDown(p geometry.Point) {
	hit := e.HitTestNode(p)
	if hit == 0 {
		return
	}
	if len(e.sel.IDs) == 1 && e.sel.Primary != 0 && e.sel.Primary != hit {
		e.toggleEdge(e.sel.Primary, hit)
		e.selectOnly(hit)
		return
	}
	e.link = LinkState{
		Phase:    LinkPending,
		SourceID: hit,
		X:        p.X,
		Y:        p.Y,
		StartX:   p.X,
		StartY:   p.Y,
	}
}

// LinkPointerMove advances the gesture. A pending gesture becomes
// active once the pointer travels beyond the drag threshold, scaled by
// the current zoom so the feel is constant on screen.
func (e *Editor) LinkPointerMove(p geometry.Point) {
	if e.link.Phase == LinkIdle {
		return
	}
	e.link.X = p.X
	e.link.Y = p.Y
	if e.link.Phase == LinkPending {
		moved := math.Hypot(p.X-e.link.StartX, p.Y-e.link.StartY)
		if moved > linkDragThreshold/e.scale {
			e.link.Phase = LinkActive
		}
	}
}

// LinkPointerUp completes the gesture. Over a node other than the
// source, and with no edge between them yet, an edge is created; a
// gesture that reached the active phase gets an arrow, a discrete
// modified click stays a plain line. The target takes the selection.
// Anywhere else the gesture is discarded without mutation.
func (e *Editor) LinkPointerUp(p geometry.Point) {
	state := e.link
	e.link = LinkState{}
	if state.Phase == LinkIdle {
		return
	}
	target := e.HitTestNode(p)
	if target == 0 || target == state.SourceID {
		return
	}
	if e.store.EdgeBetween(state.SourceID, target) == 0 {
		e.pushHistory()
		e.store.AddEdge(graph.Edge{
			ID:     e.store.NextEdgeID(),
			Source: state.SourceID,
			Target: target,
			Arrow:  state.Phase == LinkActive,
		})
	}
	e.selectOnly(target)
}

// toggleEdge creates a plain edge between a and b when none exists in
// either direction, and removes the existing one otherwise.
func (e *Editor) toggleEdge(a, b int) {
	if id := e.store.EdgeBetween(a, b); id != 0 {
		e.pushHistory()
		e.store.RemoveEdges(id)
		return
	}
	e.pushHistory()
	e.store.AddEdge(graph.Edge{
		ID:     e.store.NextEdgeID(),
		Source: a,
		Target: b,
	})
}
