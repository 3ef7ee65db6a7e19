package editor

import "mindgrid/graph"

// pasteOffset is the fixed world-space delta applied to pasted nodes so
// copies never land exactly on their originals.
const pasteOffset = 40.0

// clipboardData is the in-memory clipboard payload: the copied nodes
// and only those edges with both endpoints among them. It never touches
// the OS clipboard.
type clipboardData struct {
	nodes []graph.Node
	edges []graph.Edge
}

// Copy captures the current multi-selection into the clipboard. Edges
// are taken only when both endpoints are selected. A selection of
// edges alone copies nothing.
func (e *Editor) Copy() {
	if len(e.sel.IDs) == 0 {
		return
	}
	selected := make(map[int]bool, len(e.sel.IDs))
	clip := &clipboardData{}
	for _, id := range e.sel.IDs {
		if n := e.store.Node(id); n != nil {
			clip.nodes = append(clip.nodes, *n)
			selected[id] = true
		}
	}
	for _, edge := range e.store.Edges {
		if selected[edge.Source] && selected[edge.Target] {
			clip.edges = append(clip.edges, edge)
		}
	}
	if len(clip.nodes) > 0 {
		e.clipboard = clip
	}
}

// Paste inserts the clipboard contents: every node gets a fresh id
// (current max +1, +2, …) and the fixed paste offset; edge endpoints
// are remapped through the same id map. The inserted nodes become the
// selection. Originals are untouched.
func (e *Editor) Paste() {
	if e.clipboard == nil || len(e.clipboard.nodes) == 0 {
		return
	}
	e.pushHistory()

	idMap := make(map[int]int, len(e.clipboard.nodes))
	nextID := e.store.NextNodeID()
	var inserted []int
	for _, n := range e.clipboard.nodes {
		idMap[n.ID] = nextID
		n.ID = nextID
		n.X += pasteOffset
		n.Y += pasteOffset
		e.store.AddNode(n)
		inserted = append(inserted, nextID)
		nextID++
	}
	for _, edge := range e.clipboard.edges {
		edge.ID = e.store.NextEdgeID()
		edge.Source = idMap[edge.Source]
		edge.Target = idMap[edge.Target]
		e.store.AddEdge(edge)
	}
	e.sel.SetAll(inserted)
	e.navPath = nil
	e.freshTyping = true
}
