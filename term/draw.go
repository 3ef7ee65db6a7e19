package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"mindgrid/editor"
	"mindgrid/geometry"
	"mindgrid/graph"
	"mindgrid/layout"
)

var (
	styleDefault  = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleGesture  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

func (v *View) draw() {
	v.screen.Clear()

	st := v.ed.Store()
	sel := v.ed.Selection()

	for i := range st.Edges {
		v.drawEdge(&st.Edges[i], sel.HasEdge(st.Edges[i].ID))
	}
	for i := range st.Nodes {
		v.drawNode(&st.Nodes[i], sel)
	}
	v.drawLinkBand()
	v.drawMarquee()
	v.drawStatusBar()

	v.screen.Show()
}

// worldToCell maps a world point through the camera onto a screen cell.
func (v *View) worldToCell(p geometry.Point) (int, int) {
	sx, sy := v.ed.WorldToScreen(p)
	return int(sx / cellW), int(sy / cellH)
}

// setCell writes one rune, clipping to the canvas above the status bar.
func (v *View) setCell(x, y int, r rune, style tcell.Style) {
	w, h := v.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h-1 {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.setCell(x+i, y, r, style)
	}
}

func hexColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	return tcell.GetColor(s)
}

func (v *View) drawNode(n *graph.Node, sel *editor.Selection) {
	x1, y1 := v.worldToCell(geometry.Point{X: n.X - n.W/2, Y: n.Y - n.H/2})
	x2, y2 := v.worldToCell(geometry.Point{X: n.X + n.W/2, Y: n.Y + n.H/2})
	if x2 < x1+2 {
		x2 = x1 + 2
	}
	if y2 < y1+2 {
		y2 = y1 + 2
	}

	style := styleDefault.Foreground(hexColor(n.Stroke, tcell.ColorWhite))
	if n.Bold {
		style = style.Bold(true)
	}
	if sel.Has(n.ID) {
		style = styleSelected
	}

	tl, tr, bl, br, hor, ver := '┌', '┐', '└', '┘', '─', '│'
	if sel.Primary == n.ID {
		tl, tr, bl, br, hor, ver = '╔', '╗', '╚', '╝', '═', '║'
	}

	for x := x1 + 1; x < x2; x++ {
		v.setCell(x, y1, hor, style)
		v.setCell(x, y2, hor, style)
	}
	for y := y1 + 1; y < y2; y++ {
		v.setCell(x1, y, ver, style)
		v.setCell(x2, y, ver, style)
	}
	v.setCell(x1, y1, tl, style)
	v.setCell(x2, y1, tr, style)
	v.setCell(x1, y2, bl, style)
	v.setCell(x2, y2, br, style)

	if n.Fill != "" {
		fill := style.Background(hexColor(n.Fill, tcell.ColorDefault))
		for y := y1 + 1; y < y2; y++ {
			for x := x1 + 1; x < x2; x++ {
				v.setCell(x, y, ' ', fill)
			}
		}
		style = fill
	}

	if n.Label == "" {
		return
	}
	box := layout.LayoutLabel(n.Label, layout.NodeFontSize(n), n.W)
	innerW, innerH := x2-x1-1, y2-y1-1
	top := y1 + 1 + (innerH-len(box.Lines))/2
	for i, line := range box.Lines {
		if i >= innerH {
			break
		}
		runes := []rune(line)
		if len(runes) > innerW {
			runes = runes[:innerW]
		}
		x := x1 + 1 + (innerW-len(runes))/2
		v.drawText(x, top+i, string(runes), style)
	}
}

func (v *View) drawEdge(e *graph.Edge, selected bool) {
	st := v.ed.Store()
	src, dst := st.Node(e.Source), st.Node(e.Target)
	if src == nil || dst == nil {
		return // dangling edges are tolerated, just not drawn
	}
	style := styleDefault.Foreground(tcell.ColorGray)
	if selected {
		style = styleSelected
	}

	x1, y1 := v.worldToCell(geometry.Point{X: src.X, Y: src.Y})
	x2, y2 := v.worldToCell(geometry.Point{X: dst.X, Y: dst.Y})
	v.drawSegment(x1, y1, x2, y2, e.Dashed, style)

	if e.Arrow {
		v.setCell((x1+x2*3)/4, (y1+y2*3)/4, arrowGlyph(x2-x1, y2-y1), style)
	}
	if e.Label != "" {
		v.drawText((x1+x2)/2, (y1+y2)/2, " "+e.Label+" ", style)
	}
}

// drawSegment walks the cell grid between two points. Dashed edges
// skip every other cell.
func (v *View) drawSegment(x1, y1, x2, y2 int, dashed bool, style tcell.Style) {
	dx, dy := abs(x2-x1), abs(y2-y1)
	steps := dx
	if dy > steps {
		steps = dy
	}
	if steps == 0 {
		return
	}
	for i := 0; i <= steps; i++ {
		if dashed && i%2 == 1 {
			continue
		}
		x := x1 + (x2-x1)*i/steps
		y := y1 + (y2-y1)*i/steps
		v.setCell(x, y, '·', style)
	}
}

func arrowGlyph(dx, dy int) rune {
	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return '▶'
		}
		return '◀'
	}
	if dy >= 0 {
		return '▼'
	}
	return '▲'
}

func (v *View) drawLinkBand() {
	ls := v.ed.Link()
	if ls.Phase != editor.LinkActive {
		return
	}
	src := v.ed.Store().Node(ls.SourceID)
	if src == nil {
		return
	}
	x1, y1 := v.worldToCell(geometry.Point{X: src.X, Y: src.Y})
	x2, y2 := v.worldToCell(geometry.Point{X: ls.X, Y: ls.Y})
	v.drawSegment(x1, y1, x2, y2, true, styleGesture)
}

func (v *View) drawMarquee() {
	rect, active := v.ed.Marquee()
	if !active {
		return
	}
	// The marquee rect is in world coordinates and may be dragged in
	// any direction.
	norm := rect.Normalized()
	x1, y1 := v.worldToCell(geometry.Point{X: norm.X1, Y: norm.Y1})
	x2, y2 := v.worldToCell(geometry.Point{X: norm.X2, Y: norm.Y2})
	for x := x1; x <= x2; x++ {
		v.setCell(x, y1, '·', styleGesture)
		v.setCell(x, y2, '·', styleGesture)
	}
	for y := y1; y <= y2; y++ {
		v.setCell(x1, y, '·', styleGesture)
		v.setCell(x2, y, '·', styleGesture)
	}
}

func (v *View) drawStatusBar() {
	w, h := v.screen.Size()
	st := v.ed.Store()
	_, scale := v.ed.Camera()

	line := fmt.Sprintf(" %s | %d nodes, %d edges | %3.0f%% | %s",
		v.opts.Title, len(st.Nodes), len(st.Edges), scale*100, v.status)
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	for i, r := range line {
		if i >= w {
			break
		}
		v.screen.SetContent(i, h-1, r, nil, styleStatus)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
