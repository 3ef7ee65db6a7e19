// Package layout computes node box sizes from their labels and finds
// collision-free world positions for new nodes.
package layout

import (
	"math"
	"strings"

	"mindgrid/geometry"
	"mindgrid/graph"
)

// Box sizing constants. Text width is approximated as
// chars × fontSize × charWidthFactor; no font metrics are consulted.
const (
	MinNodeW = 120.0
	MinNodeH = 48.0
	PadX     = 14.0
	PadY     = 10.0

	BaseFontSize = 14.0

	maxLines       = 3
	growIterations = 6
	charWidth      = 0.6
)

// LabelBox is the result of laying out a label: the wrapped lines and
// the final box metrics.
type LabelBox struct {
	Lines      []string
	W, H       float64
	LineHeight float64
	PadX, PadY float64
	FontSize   float64
}

func textWidth(s string, fontSize float64) float64 {
	return float64(len([]rune(s))) * fontSize * charWidth
}

// wrap packs space-separated words greedily into lines that fit within
// avail. A single over-long word still gets its own line.
func wrap(text string, fontSize, avail float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if textWidth(candidate, fontSize) > avail {
			lines = append(lines, line)
			line = w
		} else {
			line = candidate
		}
	}
	return append(lines, line)
}

// LayoutLabel wraps a label into at most maxLines lines and sizes the
// surrounding box. When the wrap overflows the line limit the width is
// grown from the total character count and the text re-wrapped; the
// loop is bounded and the width only ever grows, so it terminates even
// when it does not fully converge.
func LayoutLabel(text string, fontSize, minWidth float64) LabelBox {
	width := math.Max(minWidth, MinNodeW)
	var lines []string
	for i := 0; i < growIterations; i++ {
		lines = wrap(text, fontSize, width-2*PadX)
		if len(lines) <= maxLines {
			break
		}
		chars := float64(len([]rune(text)))
		grown := math.Ceil(chars/maxLines)*fontSize*charWidth + 2*PadX
		if grown <= width {
			// The estimate ignores greedy wrap waste; widen by one
			// character so the loop keeps making progress.
			grown = width + fontSize*charWidth
		}
		width = grown
	}

	widest := 0.0
	for _, l := range lines {
		if w := textWidth(l, fontSize); w > widest {
			widest = w
		}
	}
	width = math.Max(width, widest+2*PadX)

	lineHeight := math.Round(fontSize * 1.15)
	height := math.Max(MinNodeH, float64(len(lines))*lineHeight+2*PadY)

	return LabelBox{
		Lines:      lines,
		W:          width,
		H:          height,
		LineHeight: lineHeight,
		PadX:       PadX,
		PadY:       PadY,
		FontSize:   fontSize,
	}
}

// NodeFontSize derives the label font size from the node's current
// height. The clamp bounds the size/font feedback loop in
// ResizeNodeForLabel so repeated edits cannot diverge.
func NodeFontSize(n *graph.Node) float64 {
	return geometry.Clamp(math.Round(n.H*0.35), 12, 20)
}

// ResizeNodeForLabel recomputes a node's box from its current label,
// keeping the current width as the minimum. Box size and font size are
// mutually dependent, so both are recomputed together on every edit.
func ResizeNodeForLabel(n *graph.Node) LabelBox {
	box := LayoutLabel(n.Label, NodeFontSize(n), n.W)
	n.W = box.W
	n.H = box.H
	return box
}

// NewNodeBox sizes a fresh node at the base font size and minimum width.
func NewNodeBox(label string) LabelBox {
	return LayoutLabel(label, BaseFontSize, MinNodeW)
}
