// Package editor implements the interactive graph editing engine: the
// editor state (graph, camera, selection, history), the linking and
// pointer gesture state machines, directional navigation, the keyboard
// surface and the in-memory clipboard. It renders nothing; the view
// shell queries its state and routes input events into it.
package editor

import (
	"mindgrid/geometry"
	"mindgrid/graph"
	"mindgrid/layout"
)

// DefaultStroke is the stroke color given to nodes created without an
// inherited style.
const DefaultStroke = "#d8dee9"

const (
	minScale = 0.2
	maxScale = 4.0

	// edgeHitTolerance is the screen-space distance within which a
	// click counts as hitting an edge.
	edgeHitTolerance = 6.0
)

// Editor owns all mutable editing state. All mutation runs through its
// operations so the history pairing and selection exclusivity
// invariants hold by construction. Single-threaded by design: every
// operation completes synchronously inside its triggering event.
type Editor struct {
	store  *graph.Store
	placer layout.Placer

	pan   graph.Pan
	scale float64
	viewW float64
	viewH float64

	sel     Selection
	history *History

	link     LinkState
	pointers map[int]geometry.Point
	drag     dragState
	marquee  marqueeState
	pinch    pinchState

	clipboard *clipboardData

	// freshTyping makes the next literal character replace the current
	// label instead of appending to it.
	freshTyping bool

	// prevSelected remembers the previously selected node for the
	// jump-back shortcut; navPath is the hierarchical walk in progress.
	prevSelected int
	navPath      []int
}

// New creates an editor over an empty graph.
func New(historyCapacity int) *Editor {
	e := &Editor{
		store:    graph.NewStore(),
		scale:    1,
		viewW:    1280,
		viewH:    800,
		history:  NewHistory(historyCapacity),
		pointers: make(map[int]geometry.Point),
	}
	e.placer = layout.Placer{Store: e.store}
	return e
}

// Store exposes the graph for read-only walks by the view shell.
// Mutation must go through editor operations.
func (e *Editor) Store() *graph.Store { return e.store }

// Selection returns the current selection state.
func (e *Editor) Selection() *Selection { return &e.sel }

// History returns the history manager, mainly for status display.
func (e *Editor) History() *History { return e.history }

// SetViewSize tells the editor the viewport dimensions in screen units.
func (e *Editor) SetViewSize(w, h float64) {
	e.viewW = w
	e.viewH = h
}

// Camera returns the current pan and scale.
func (e *Editor) Camera() (graph.Pan, float64) { return e.pan, e.scale }

// ScreenToWorld converts a screen position to world coordinates under
// the current camera. The transform is screen = (world + pan) · scale.
func (e *Editor) ScreenToWorld(sx, sy float64) geometry.Point {
	return geometry.Point{X: sx/e.scale - e.pan.X, Y: sy/e.scale - e.pan.Y}
}

// WorldToScreen converts a world position to screen coordinates.
func (e *Editor) WorldToScreen(p geometry.Point) (float64, float64) {
	return (p.X + e.pan.X) * e.scale, (p.Y + e.pan.Y) * e.scale
}

// PanBy shifts the camera by a screen-space delta.
func (e *Editor) PanBy(dx, dy float64) {
	e.pan.X += dx / e.scale
	e.pan.Y += dy / e.scale
}

// ZoomAt scales the camera by factor, keeping the world point under the
// given screen position fixed.
func (e *Editor) ZoomAt(sx, sy float64, factor float64) {
	anchor := e.ScreenToWorld(sx, sy)
	e.scale = geometry.Clamp(e.scale*factor, minScale, maxScale)
	after := e.ScreenToWorld(sx, sy)
	e.pan.X += after.X - anchor.X
	e.pan.Y += after.Y - anchor.Y
}

// viewportCenterWorld is the default placement point for new
// standalone nodes.
func (e *Editor) viewportCenterWorld() geometry.Point {
	return e.ScreenToWorld(e.viewW/2, e.viewH/2)
}

// Snapshot captures the complete current state as an immutable deep
// copy: the unit of undo/redo and of persistence.
func (e *Editor) Snapshot() *graph.Document {
	doc := &graph.Document{
		Pan:        e.pan,
		Scale:      e.scale,
		SelectedID: e.sel.Primary,
	}
	clone := e.store.Clone()
	doc.Nodes = clone.Nodes
	doc.Edges = clone.Edges
	doc.SelectedIDs = append([]int(nil), e.sel.IDs...)
	doc.SelectedEdgeIDs = append([]int(nil), e.sel.EdgeIDs...)
	return doc
}

// restore replaces the current state with a snapshot. The snapshot is
// cloned so history entries stay immutable.
func (e *Editor) restore(doc *graph.Document) {
	doc = doc.Clone()
	e.store.Nodes = doc.Nodes
	if e.store.Nodes == nil {
		e.store.Nodes = []graph.Node{}
	}
	e.store.Edges = doc.Edges
	if e.store.Edges == nil {
		e.store.Edges = []graph.Edge{}
	}
	e.pan = doc.Pan
	e.scale = doc.Scale
	e.sel.Primary = doc.SelectedID
	e.sel.IDs = doc.SelectedIDs
	e.sel.EdgeIDs = doc.SelectedEdgeIDs
}

// SetDocument loads a decoded document, resetting history and all
// transient gesture state.
func (e *Editor) SetDocument(doc *graph.Document) {
	e.restore(doc)
	e.history = NewHistory(e.history.capacity)
	e.resetTransient()
	e.prevSelected = 0
	e.navPath = nil
}

// pushHistory records the pre-change snapshot. Called by every mutating
// operation before it applies its change.
func (e *Editor) pushHistory() {
	e.history.Push(e.Snapshot())
}

// Undo restores the previous snapshot, parking the current state on the
// redo stack. No-op with an empty undo stack.
func (e *Editor) Undo() {
	if snap := e.history.Undo(e.Snapshot()); snap != nil {
		e.restore(snap)
		e.resetTransient()
	}
}

// Redo is the mirror of Undo.
func (e *Editor) Redo() {
	if snap := e.history.Redo(e.Snapshot()); snap != nil {
		e.restore(snap)
		e.resetTransient()
	}
}

// resetTransient clears every in-progress gesture without touching
// graph, camera or history.
func (e *Editor) resetTransient() {
	e.link = LinkState{}
	e.drag = dragState{}
	e.marquee = marqueeState{}
	e.pinch = pinchState{}
	for id := range e.pointers {
		delete(e.pointers, id)
	}
}

// selectOnly routes all single-selection through one place so the
// jump-back memory and the hierarchical walk reset consistently.
func (e *Editor) selectOnly(id int) {
	if e.sel.Primary != 0 && e.sel.Primary != id {
		e.prevSelected = e.sel.Primary
	}
	e.sel.SelectOnly(id)
	e.navPath = nil
	e.freshTyping = true
}

// SelectNode makes id the sole selection. Unknown ids are ignored.
func (e *Editor) SelectNode(id int) {
	if e.store.HasNode(id) {
		e.selectOnly(id)
	}
}

// ToggleNode adds or removes id from the multi-selection.
func (e *Editor) ToggleNode(id int) {
	if e.store.HasNode(id) {
		e.sel.Toggle(id)
		e.navPath = nil
	}
}

// SelectEdge selects an edge, additively when additive is set.
func (e *Editor) SelectEdge(id int, additive bool) {
	if e.store.Edge(id) != nil {
		e.sel.SelectEdge(id, additive)
		e.freshTyping = true
	}
}

// ClearSelection empties both selection domains.
func (e *Editor) ClearSelection() {
	e.sel.Clear()
}

// JumpBack selects the previously selected node, if it still exists.
func (e *Editor) JumpBack() {
	if e.prevSelected != 0 && e.store.HasNode(e.prevSelected) {
		e.selectOnly(e.prevSelected)
	}
}

// AddStandaloneNode creates an unconnected node near the given world
// point, or the viewport center when at is nil, spiraling to open
// space when occupied. Returns the new node's id.
func (e *Editor) AddStandaloneNode(at *geometry.Point) int {
	e.pushHistory()
	target := e.viewportCenterWorld()
	if at != nil {
		target = *at
	}
	pos := e.placer.FindStandalone(target)
	box := layout.NewNodeBox("")
	id := e.store.NextNodeID()
	e.store.AddNode(graph.Node{
		ID: id, X: pos.X, Y: pos.Y, W: box.W, H: box.H,
		Stroke: DefaultStroke,
	})
	e.selectOnly(id)
	e.ensureVisible(id)
	return id
}

// AddChild creates a child of the given parent together with the
// connecting edge, atomically under one history entry. The child
// inherits the parent's stroke and fill. Returns 0 when the parent
// does not exist.
func (e *Editor) AddChild(parentID int) int {
	parent := e.store.Node(parentID)
	if parent == nil {
		return 0
	}
	e.pushHistory()
	pos, _ := e.placer.FindChild(parentID)
	box := layout.NewNodeBox("")
	id := e.store.NextNodeID()
	e.store.AddNode(graph.Node{
		ID: id, X: pos.X, Y: pos.Y, W: box.W, H: box.H,
		Stroke: parent.Stroke, Fill: parent.Fill,
	})
	e.store.AddEdge(graph.Edge{
		ID: e.store.NextEdgeID(), Source: parentID, Target: id,
	})
	e.selectOnly(id)
	e.ensureVisible(id)
	return id
}

// AddSibling creates a child of the node's parent, or a standalone node
// when the node has no parent.
func (e *Editor) AddSibling(id int) int {
	if parent := e.store.Parent(id); parent != 0 {
		return e.AddChild(parent)
	}
	return e.AddStandaloneNode(nil)
}

// DeleteSelection removes whatever is selected: nodes (with cascading
// edges) or edges. When a single node goes and its parent survives,
// the parent takes the selection, keeping the user anchored.
func (e *Editor) DeleteSelection() {
	switch {
	case len(e.sel.IDs) > 0:
		e.pushHistory()
		parent := e.store.RemoveNodes(e.sel.IDs...)
		if parent != 0 {
			e.selectOnly(parent)
		} else {
			e.sel.Clear()
		}
	case len(e.sel.EdgeIDs) > 0:
		e.pushHistory()
		e.store.RemoveEdges(e.sel.EdgeIDs...)
		e.sel.Clear()
	}
}

// ToggleBold flips the bold flag on every selected node.
func (e *Editor) ToggleBold() {
	if len(e.sel.IDs) == 0 {
		return
	}
	e.pushHistory()
	for _, id := range e.sel.IDs {
		if n := e.store.Node(id); n != nil {
			n.Bold = !n.Bold
		}
	}
}

// SetNodeStyle applies stroke/fill to every selected node. Empty
// strings leave the respective color untouched.
func (e *Editor) SetNodeStyle(stroke, fill string) {
	if len(e.sel.IDs) == 0 {
		return
	}
	e.pushHistory()
	for _, id := range e.sel.IDs {
		n := e.store.Node(id)
		if n == nil {
			continue
		}
		if stroke != "" {
			n.Stroke = stroke
		}
		if fill != "" {
			n.Fill = fill
		}
	}
}

// ensureVisible runs the two-phase post-create adjustment: the node's
// final size is already computed (phase one), so the camera can be
// nudged against real geometry (phase two). No deferred scheduling —
// both phases are synchronous and ordered.
func (e *Editor) ensureVisible(id int) {
	n := e.store.Node(id)
	if n == nil {
		return
	}
	sx, sy := e.WorldToScreen(geometry.Point{X: n.X, Y: n.Y})
	halfW := n.W / 2 * e.scale
	halfH := n.H / 2 * e.scale

	if dx := sx - halfW; dx < 0 {
		e.pan.X -= dx / e.scale
	} else if dx := sx + halfW - e.viewW; dx > 0 {
		e.pan.X -= dx / e.scale
	}
	if dy := sy - halfH; dy < 0 {
		e.pan.Y -= dy / e.scale
	} else if dy := sy + halfH - e.viewH; dy > 0 {
		e.pan.Y -= dy / e.scale
	}
}

// HitTestNode returns the topmost node containing the world point, or
// 0 when none does. Later nodes draw on top, so the scan runs backwards.
func (e *Editor) HitTestNode(p geometry.Point) int {
	for i := len(e.store.Nodes) - 1; i >= 0; i-- {
		n := &e.store.Nodes[i]
		if p.X >= n.X-n.W/2 && p.X <= n.X+n.W/2 &&
			p.Y >= n.Y-n.H/2 && p.Y <= n.Y+n.H/2 {
			return n.ID
		}
	}
	return 0
}

// HitTestEdge returns the edge nearest the world point within the
// screen-space hit tolerance, or 0. Edges with missing endpoints are
// skipped, never an error.
func (e *Editor) HitTestEdge(p geometry.Point) int {
	tolerance := edgeHitTolerance / e.scale
	best := 0
	bestDist := tolerance
	for i := range e.store.Edges {
		edge := &e.store.Edges[i]
		src := e.store.Node(edge.Source)
		dst := e.store.Node(edge.Target)
		if src == nil || dst == nil {
			continue
		}
		d := geometry.DistToSegment(p,
			geometry.Point{X: src.X, Y: src.Y},
			geometry.Point{X: dst.X, Y: dst.Y})
		if d <= bestDist {
			best = edge.ID
			bestDist = d
		}
	}
	return best
}
