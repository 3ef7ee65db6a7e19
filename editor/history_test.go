package editor

import (
	"testing"

	"mindgrid/graph"
)

func docWithNode(id int) *graph.Document {
	return &graph.Document{
		Nodes: []graph.Node{{ID: id}},
		Edges: []graph.Edge{},
		Scale: 1,
	}
}

func TestHistoryPushUndoRedo(t *testing.T) {
	h := NewHistory(10)

	if h.CanUndo() || h.CanRedo() {
		t.Error("fresh history should have nothing to undo or redo")
	}
	if snap := h.Undo(docWithNode(0)); snap != nil {
		t.Error("undo on empty stack must be a no-op")
	}

	h.Push(docWithNode(1))
	h.Push(docWithNode(2))

	current := docWithNode(3)
	snap := h.Undo(current)
	if snap == nil || snap.Nodes[0].ID != 2 {
		t.Fatalf("expected snapshot 2, got %v", snap)
	}
	if !h.CanRedo() {
		t.Error("undo should enable redo")
	}

	back := h.Redo(snap)
	if back == nil || back.Nodes[0].ID != 3 {
		t.Fatalf("redo should return the state parked by undo, got %v", back)
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := NewHistory(10)
	h.Push(docWithNode(1))
	h.Undo(docWithNode(2))
	if !h.CanRedo() {
		t.Fatal("expected redo after undo")
	}
	// A new edit discards the branch.
	h.Push(docWithNode(4))
	if h.CanRedo() {
		t.Error("push must clear the redo stack")
	}
}

func TestHistoryCapacity(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push(docWithNode(i))
	}
	undo, _ := h.Depths()
	if undo != 3 {
		t.Errorf("expected 3 entries, got %d", undo)
	}
	// Oldest entries dropped: stack holds 3, 4, 5.
	snap := h.Undo(docWithNode(6))
	if snap.Nodes[0].ID != 5 {
		t.Errorf("expected newest entry 5, got %d", snap.Nodes[0].ID)
	}
}

func TestHistoryPopLast(t *testing.T) {
	h := NewHistory(10)
	h.Push(docWithNode(1))
	h.Undo(docWithNode(2))
	h.Redo(docWithNode(1))
	h.Push(docWithNode(2))

	snap := h.PopLast()
	if snap == nil || snap.Nodes[0].ID != 2 {
		t.Fatalf("expected popped entry 2, got %v", snap)
	}
	undo, redo := h.Depths()
	if undo != 1 || redo != 0 {
		t.Errorf("expected depths 1/0, got %d/%d", undo, redo)
	}
	if h.PopLast() == nil {
		t.Error("one entry should remain")
	}
	if h.PopLast() != nil {
		t.Error("empty stack must pop nil")
	}
}
