package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"mindgrid/editor"
	"mindgrid/graph"
)

func newTestView(t *testing.T) (*View, *editor.Editor, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)

	ed := editor.New(0)
	v := NewWithScreen(screen, ed, nil, Options{Title: "test"})
	return v, ed, screen
}

// screenText flattens the simulation screen into one string for
// substring checks.
func screenText(screen tcell.SimulationScreen) string {
	cells, w, h := screen.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) > 0 {
				b.WriteRune(c.Runes[0])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestDrawRendersNodeLabel(t *testing.T) {
	v, ed, screen := newTestView(t)
	ed.SetDocument(&graph.Document{
		Nodes: []graph.Node{{ID: 1, Label: "hello", X: 200, Y: 200, W: 120, H: 48}},
		Edges: []graph.Edge{},
		Scale: 1,
	})
	v.draw()
	if !strings.Contains(screenText(screen), "hello") {
		t.Error("node label should appear on screen")
	}
}

func TestDrawStatusBarCounts(t *testing.T) {
	v, ed, screen := newTestView(t)
	ed.SetDocument(&graph.Document{
		Nodes: []graph.Node{
			{ID: 1, X: 100, Y: 100, W: 120, H: 48},
			{ID: 2, X: 400, Y: 100, W: 120, H: 48},
		},
		Edges: []graph.Edge{{ID: 1, Source: 1, Target: 2}},
		Scale: 1,
	})
	v.draw()
	if !strings.Contains(screenText(screen), "2 nodes, 1 edges") {
		t.Error("status bar should report the document size")
	}
}

func TestDrawSkipsDanglingEdge(t *testing.T) {
	v, ed, _ := newTestView(t)
	ed.SetDocument(&graph.Document{
		Nodes: []graph.Node{{ID: 1, X: 100, Y: 100, W: 120, H: 48}},
		Edges: []graph.Edge{{ID: 1, Source: 1, Target: 99}},
		Scale: 1,
	})
	v.draw() // must not panic on the missing endpoint
}

func TestKeyEnterAddsNode(t *testing.T) {
	v, ed, _ := newTestView(t)
	v.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	if len(ed.Store().Nodes) != 1 {
		t.Fatal("enter should create a node")
	}
	v.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	if got := len(ed.Store().Nodes); got != 2 {
		t.Fatalf("second enter should add a child, got %d nodes", got)
	}
	if ed.Store().Parent(ed.Selection().Primary) == 0 {
		t.Error("second node should hang off the first")
	}
}

func TestKeyRuneTypesLabel(t *testing.T) {
	v, ed, _ := newTestView(t)
	v.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	for _, r := range "idea" {
		v.handleKey(tcell.NewEventKey(tcell.KeyRune, r, 0))
	}
	n := ed.Store().Node(ed.Selection().Primary)
	if n.Label != "idea" {
		t.Errorf("typed label %q", n.Label)
	}
}

func TestKeyQuit(t *testing.T) {
	v, _, _ := newTestView(t)
	if !v.handleKey(tcell.NewEventKey(tcell.KeyCtrlQ, 0, 0)) {
		t.Error("ctrl+q should quit")
	}
	if v.handleKey(tcell.NewEventKey(tcell.KeyCtrlZ, 0, 0)) {
		t.Error("ctrl+z must not quit")
	}
}

func TestStyleCycleKeys(t *testing.T) {
	v, ed, _ := newTestView(t)
	v.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	id := ed.Selection().Primary

	v.handleKey(tcell.NewEventKey(tcell.KeyF2, 0, 0))
	if got := ed.Store().Node(id).Stroke; got != strokePalette[1] {
		t.Errorf("F2 should advance the stroke palette, got %q", got)
	}
	v.handleKey(tcell.NewEventKey(tcell.KeyF3, 0, 0))
	if got := ed.Store().Node(id).Fill; got != fillPalette[1] {
		t.Errorf("F3 should advance the fill palette, got %q", got)
	}
}

func TestMouseClickSelectsNode(t *testing.T) {
	v, ed, _ := newTestView(t)
	ed.SetDocument(&graph.Document{
		Nodes: []graph.Node{{ID: 7, X: 400, Y: 160, W: 120, H: 48}},
		Edges: []graph.Edge{},
		Scale: 1,
	})

	// Cell (50, 10) maps to world pixel (400, 160) at scale 1.
	v.handleMouse(tcell.NewEventMouse(50, 10, tcell.Button1, 0))
	v.handleMouse(tcell.NewEventMouse(50, 10, tcell.ButtonNone, 0))
	if ed.Selection().Primary != 7 {
		t.Errorf("click should select the node, got %d", ed.Selection().Primary)
	}
}

func TestMouseWheelZooms(t *testing.T) {
	v, ed, _ := newTestView(t)
	_, before := ed.Camera()
	v.handleMouse(tcell.NewEventMouse(10, 10, tcell.WheelUp, 0))
	if _, after := ed.Camera(); after <= before {
		t.Errorf("wheel up should zoom in: %v -> %v", before, after)
	}
	v.handleMouse(tcell.NewEventMouse(10, 10, tcell.WheelDown, 0))
	v.handleMouse(tcell.NewEventMouse(10, 10, tcell.WheelDown, 0))
	if _, after := ed.Camera(); after >= before {
		t.Errorf("wheel down should zoom out past the start, got %v", after)
	}
}

func TestAutosaveCadence(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)

	var saved int
	ed := editor.New(0)
	v := NewWithScreen(screen, ed, nil, Options{
		AutosaveEvery: 2,
		OnAutosave:    func(*graph.Document) error { saved++; return nil },
	})

	v.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	v.maybeAutosave()
	if saved != 0 {
		t.Fatal("one edit is below the cadence")
	}
	v.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	v.maybeAutosave()
	if saved != 1 {
		t.Fatalf("two edits should autosave once, got %d", saved)
	}

	// Selection-only activity does not count as an edit.
	v.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	v.maybeAutosave()
	if saved != 1 {
		t.Errorf("escape is not an edit, saves %d", saved)
	}
}
