// Package term renders the diagram on a terminal screen with tcell and
// translates raw key and mouse input into the editor's pointer and
// keyboard surface.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"mindgrid/editor"
	"mindgrid/graph"
)

// World units per terminal cell. A default 120x48 node box spans about
// 15x3 cells at scale 1.
const (
	cellW = 8.0
	cellH = 16.0
)

// Style palettes cycled by F2 (stroke) and F3 (fill) over the selected
// nodes.
var (
	strokePalette = []string{"#d8dee9", "#88c0d0", "#a3be8c", "#ebcb8b", "#bf616a", "#b48ead"}
	fillPalette   = []string{"", "#2e3440", "#3b4252", "#434c5e"}
)

// Options configures the view shell.
type Options struct {
	Title         string
	AutosaveEvery int // user edits between autosaves, 0 disables
	OnSave        func(*graph.Document) error
	OnAutosave    func(*graph.Document) error
}

// View owns the terminal screen and the event loop around one editor.
type View struct {
	screen tcell.Screen
	ed     *editor.Editor
	log    *zap.Logger
	opts   Options

	mouseDown bool
	panning   bool
	panX      float64
	panY      float64
	strokeIdx int
	fillIdx   int

	status    string
	lastDepth int
	edits     int
	quit      bool
}

// New creates a view on the real terminal.
func New(ed *editor.Editor, log *zap.Logger, opts Options) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return NewWithScreen(screen, ed, log, opts), nil
}

// NewWithScreen wraps an already-initialized screen. Used with tcell's
// simulation screen in tests.
func NewWithScreen(screen tcell.Screen, ed *editor.Editor, log *zap.Logger, opts Options) *View {
	if log == nil {
		log = zap.NewNop()
	}
	v := &View{screen: screen, ed: ed, log: log, opts: opts}
	w, h := screen.Size()
	ed.SetViewSize(float64(w)*cellW, float64(h-1)*cellH)
	return v
}

// Run drives the event loop until the user quits. The screen is
// finalized on return.
func (v *View) Run() error {
	defer v.screen.Fini()
	v.log.Info("view started")

	for !v.quit {
		v.draw()

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := v.screen.Size()
			v.ed.SetViewSize(float64(w)*cellW, float64(h-1)*cellH)
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				v.quit = true
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		}
		v.maybeAutosave()
	}

	if v.opts.OnAutosave != nil {
		if err := v.opts.OnAutosave(v.ed.Snapshot()); err != nil {
			v.log.Warn("autosave on exit failed", zap.Error(err))
		}
	}
	v.log.Info("view stopped")
	return nil
}

// handleKey translates one key event. Returns true when the user quit.
func (v *View) handleKey(ev *tcell.EventKey) bool {
	mod := ev.Modifiers()

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlS:
		v.save()
	case tcell.KeyCtrlZ:
		v.ed.HandleKey(editor.KeyUndo)
	case tcell.KeyCtrlY:
		v.ed.HandleKey(editor.KeyRedo)
	case tcell.KeyCtrlB:
		v.ed.HandleKey(editor.KeyBold)
	case tcell.KeyCtrlC:
		v.ed.HandleKey(editor.KeyCopy)
	case tcell.KeyCtrlV:
		v.ed.HandleKey(editor.KeyPaste)
	case tcell.KeyCtrlG:
		v.ed.HandleKey(editor.KeyJumpBack)
	case tcell.KeyUp:
		if mod&tcell.ModAlt != 0 {
			v.ed.HandleKey(editor.KeyHierarchyUp)
		} else {
			v.ed.HandleKey(editor.KeyNavUp)
		}
	case tcell.KeyDown:
		if mod&tcell.ModAlt != 0 {
			v.ed.HandleKey(editor.KeyHierarchyBack)
		} else {
			v.ed.HandleKey(editor.KeyNavDown)
		}
	case tcell.KeyLeft:
		v.ed.HandleKey(editor.KeyNavLeft)
	case tcell.KeyRight:
		v.ed.HandleKey(editor.KeyNavRight)
	case tcell.KeyTab:
		v.ed.HandleKey(editor.KeyHierarchyUp)
	case tcell.KeyBacktab:
		v.ed.HandleKey(editor.KeyHierarchyBack)
	case tcell.KeyEnter:
		if mod&tcell.ModShift != 0 {
			v.ed.HandleKey(editor.KeyAddSibling)
		} else {
			v.ed.HandleKey(editor.KeyAddChild)
		}
	case tcell.KeyDelete:
		v.ed.HandleKey(editor.KeyDelete)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.ed.HandleKey(editor.KeyBackspace)
	case tcell.KeyEscape:
		v.ed.HandleKey(editor.KeyEscape)
	case tcell.KeyF2:
		v.strokeIdx = (v.strokeIdx + 1) % len(strokePalette)
		v.ed.SetNodeStyle(strokePalette[v.strokeIdx], "")
	case tcell.KeyF3:
		v.fillIdx = (v.fillIdx + 1) % len(fillPalette)
		v.ed.SetNodeStyle("", fillPalette[v.fillIdx])
	case tcell.KeyRune:
		v.ed.TypeRune(ev.Rune())
	}
	return false
}

// handleMouse translates one mouse event into the pointer surface.
// Terminals report a single pointer, so the pointer id is fixed; the
// editor's multi-contact pinch path stays reachable for other shells.
func (v *View) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	px, py := float64(cx)*cellW, float64(cy)*cellH

	var mods editor.Modifiers
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= editor.ModLink
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= editor.ModToggle
	}

	btns := ev.Buttons()
	switch {
	case btns&tcell.WheelUp != 0:
		v.ed.ZoomAt(px, py, 1.1)
	case btns&tcell.WheelDown != 0:
		v.ed.ZoomAt(px, py, 1/1.1)
	case btns&tcell.Button1 != 0:
		if !v.mouseDown {
			v.mouseDown = true
			v.ed.PointerDown(1, px, py, mods)
		} else {
			v.ed.PointerMove(1, px, py)
		}
	case btns&tcell.Button2 != 0: // middle drag pans
		if v.panning {
			v.ed.PanBy(px-v.panX, py-v.panY)
		}
		v.panning = true
		v.panX, v.panY = px, py
	default:
		if v.mouseDown {
			v.mouseDown = false
			v.ed.PointerUp(1, px, py)
		}
		v.panning = false
	}
}

func (v *View) save() {
	if v.opts.OnSave == nil {
		return
	}
	if err := v.opts.OnSave(v.ed.Snapshot()); err != nil {
		v.status = "save failed: " + err.Error()
		v.log.Error("save failed", zap.Error(err))
		return
	}
	v.status = "saved"
	v.edits = 0
}

// maybeAutosave counts user edits by watching the undo depth and saves
// to the autosave slot every AutosaveEvery edits.
func (v *View) maybeAutosave() {
	depth, _ := v.ed.History().Depths()
	if depth != v.lastDepth {
		v.lastDepth = depth
		v.edits++
	}
	if v.opts.AutosaveEvery <= 0 || v.opts.OnAutosave == nil || v.edits < v.opts.AutosaveEvery {
		return
	}
	if err := v.opts.OnAutosave(v.ed.Snapshot()); err != nil {
		v.log.Warn("autosave failed", zap.Error(err))
		return
	}
	v.edits = 0
	v.status = "autosaved"
}
