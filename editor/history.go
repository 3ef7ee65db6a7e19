package editor

import "mindgrid/graph"

// History manages linear undo/redo over full document snapshots. Every
// mutating gesture pushes the pre-change state; redo history is
// discarded the moment a new edit follows an undo.
type History struct {
	undo     []*graph.Document
	redo     []*graph.Document
	capacity int
}

// NewHistory creates a history manager. capacity bounds the undo stack;
// <= 0 selects the default of 100.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 100
	}
	return &History{capacity: capacity}
}

// Push records a pre-change snapshot and clears the redo stack. The
// oldest entry is dropped once the capacity is reached.
func (h *History) Push(snap *graph.Document) {
	h.undo = append(h.undo, snap)
	if len(h.undo) > h.capacity {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
}

// Undo exchanges the current state for the top of the undo stack:
// current goes onto redo, the popped snapshot is returned for
// restoring. Returns nil when there is nothing to undo.
func (h *History) Undo(current *graph.Document) *graph.Document {
	if len(h.undo) == 0 {
		return nil
	}
	snap := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return snap
}

// Redo is the mirror of Undo. Returns nil when there is nothing to redo.
func (h *History) Redo(current *graph.Document) *graph.Document {
	if len(h.redo) == 0 {
		return nil
	}
	snap := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return snap
}

// PopLast removes and returns the newest undo entry without touching
// the redo stack. Used to roll back a cancelled gesture whose snapshot
// was already taken. Returns nil when the stack is empty.
func (h *History) PopLast() *graph.Document {
	if len(h.undo) == 0 {
		return nil
	}
	snap := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return snap
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depths returns the undo and redo stack sizes.
func (h *History) Depths() (undo, redo int) {
	return len(h.undo), len(h.redo)
}
