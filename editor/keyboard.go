package editor

// Key identifies the editing actions on the keyboard surface. The view
// shell maps raw terminal keys onto these; the editor stays free of any
// input library.
type Key int

const (
	KeyNone Key = iota
	KeyUndo
	KeyRedo
	KeyBold
	KeyCopy
	KeyPaste
	KeyNavUp
	KeyNavDown
	KeyNavLeft
	KeyNavRight
	KeyHierarchyUp   // walk toward the root; cycle roots at the top
	KeyHierarchyBack // retrace the hierarchical walk
	KeyJumpBack      // previously selected node
	KeyDelete        // whole node/edge removal
	KeyBackspace     // character-wise label edit, or node delete when several selected
	KeyAddChild      // enter
	KeyAddSibling    // shift+enter
	KeyEscape
)

// HandleKey dispatches one action key. Literal characters go through
// TypeRune instead.
func (e *Editor) HandleKey(k Key) {
	switch k {
	case KeyUndo:
		e.Undo()
	case KeyRedo:
		e.Redo()
	case KeyBold:
		e.ToggleBold()
	case KeyCopy:
		e.Copy()
	case KeyPaste:
		e.Paste()
	case KeyNavUp:
		e.Navigate(DirUp)
	case KeyNavDown:
		e.Navigate(DirDown)
	case KeyNavLeft:
		e.Navigate(DirLeft)
	case KeyNavRight:
		e.Navigate(DirRight)
	case KeyHierarchyUp:
		e.NavigateUp()
	case KeyHierarchyBack:
		e.NavigateBackDown()
	case KeyJumpBack:
		e.JumpBack()
	case KeyDelete:
		e.DeleteSelection()
	case KeyBackspace:
		e.Backspace()
	case KeyAddChild:
		if e.sel.Primary != 0 {
			e.AddChild(e.sel.Primary)
		} else {
			e.AddStandaloneNode(nil)
		}
	case KeyAddSibling:
		if e.sel.Primary != 0 {
			e.AddSibling(e.sel.Primary)
		} else {
			e.AddStandaloneNode(nil)
		}
	case KeyEscape:
		e.resetTransient()
		e.sel.Clear()
	}
}
