package editor

import "mindgrid/layout"

// TypeRune feeds one literal character into the current selection: the
// label of the singly-selected node, or of the selected edge. The first
// character after a fresh selection replaces the label; subsequent ones
// append. Box size and font size are recomputed together on every edit.
func (e *Editor) TypeRune(r rune) {
	switch {
	case len(e.sel.EdgeIDs) == 1:
		edge := e.store.Edge(e.sel.EdgeIDs[0])
		if edge == nil {
			return
		}
		e.pushHistory()
		if e.freshTyping {
			edge.Label = string(r)
		} else {
			edge.Label += string(r)
		}
	case len(e.sel.IDs) == 1:
		n := e.store.Node(e.sel.Primary)
		if n == nil {
			return
		}
		e.pushHistory()
		if e.freshTyping {
			n.Label = string(r)
		} else {
			n.Label += string(r)
		}
		layout.ResizeNodeForLabel(n)
	default:
		return
	}
	e.freshTyping = false
}

// Backspace removes the last character of the selected node or edge
// label. With several nodes selected it deletes the nodes wholesale
// instead. Empty labels are left alone without a history entry.
func (e *Editor) Backspace() {
	switch {
	case len(e.sel.IDs) > 1:
		e.DeleteSelection()
	case len(e.sel.EdgeIDs) == 1:
		edge := e.store.Edge(e.sel.EdgeIDs[0])
		if edge == nil || edge.Label == "" {
			return
		}
		e.pushHistory()
		runes := []rune(edge.Label)
		e.store.Edge(e.sel.EdgeIDs[0]).Label = string(runes[:len(runes)-1])
	case len(e.sel.IDs) == 1:
		n := e.store.Node(e.sel.Primary)
		if n == nil || n.Label == "" {
			return
		}
		e.pushHistory()
		n = e.store.Node(e.sel.Primary)
		runes := []rune(n.Label)
		n.Label = string(runes[:len(runes)-1])
		layout.ResizeNodeForLabel(n)
	}
	e.freshTyping = false
}

// SetLabel replaces the selected node's label outright (used by the
// shell for programmatic edits) and resizes the box.
func (e *Editor) SetLabel(id int, label string) {
	n := e.store.Node(id)
	if n == nil || n.Label == label {
		return
	}
	e.pushHistory()
	n = e.store.Node(id)
	n.Label = label
	layout.ResizeNodeForLabel(n)
}
