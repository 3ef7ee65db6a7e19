package layout

import (
	"strings"
	"testing"

	"mindgrid/graph"
)

func TestLayoutLabelShortText(t *testing.T) {
	box := LayoutLabel("hello", BaseFontSize, MinNodeW)
	if len(box.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(box.Lines))
	}
	if box.W != MinNodeW {
		t.Errorf("short label should keep the minimum width, got %v", box.W)
	}
	if box.H != MinNodeH {
		t.Errorf("short label should keep the minimum height, got %v", box.H)
	}
	if box.LineHeight != 16 {
		t.Errorf("line height at font 14 should round(14*1.15)=16, got %v", box.LineHeight)
	}
}

func TestLayoutLabelWrapScenario(t *testing.T) {
	// Ten single-char words at font 14, min width 120.
	box := LayoutLabel("a b c d e f g h i j", 14, 120)
	if len(box.Lines) > 3 {
		t.Errorf("expected at most 3 lines, got %d: %v", len(box.Lines), box.Lines)
	}
	if box.W < 120 {
		t.Errorf("width must not shrink below the minimum, got %v", box.W)
	}
	if box.H < MinNodeH {
		t.Errorf("height must not shrink below the minimum, got %v", box.H)
	}
	// Every word must survive the wrap.
	joined := strings.Join(box.Lines, " ")
	if joined != "a b c d e f g h i j" {
		t.Errorf("wrap lost or reordered words: %q", joined)
	}
}

func TestLayoutLabelGrowsForLongText(t *testing.T) {
	long := strings.Repeat("word ", 40)
	box := LayoutLabel(long, BaseFontSize, MinNodeW)
	if len(box.Lines) > 3 {
		t.Errorf("grow loop should cap lines at 3, got %d", len(box.Lines))
	}
	if box.W <= MinNodeW {
		t.Errorf("long text should force the box wider than %v, got %v", MinNodeW, box.W)
	}
}

func TestLayoutLabelEmpty(t *testing.T) {
	box := LayoutLabel("", BaseFontSize, MinNodeW)
	if len(box.Lines) != 1 || box.Lines[0] != "" {
		t.Errorf("empty label should produce one empty line, got %v", box.Lines)
	}
	if box.W != MinNodeW || box.H != MinNodeH {
		t.Errorf("empty label should keep minimum box, got %vx%v", box.W, box.H)
	}
}

func TestResizeNodeForLabel(t *testing.T) {
	t.Run("Minimums always hold", func(t *testing.T) {
		labels := []string{"", "x", "a few words here", strings.Repeat("lengthy ", 30)}
		for _, label := range labels {
			n := &graph.Node{ID: 1, Label: label, W: MinNodeW, H: MinNodeH}
			box := ResizeNodeForLabel(n)
			if n.W < MinNodeW || n.H < MinNodeH {
				t.Errorf("label %q: box %vx%v below minimum", label, n.W, n.H)
			}
			if len(box.Lines) > 3 {
				t.Errorf("label %q: %d lines", label, len(box.Lines))
			}
		}
	})

	t.Run("Font size clamps to 12..20", func(t *testing.T) {
		small := &graph.Node{H: 10}
		if fs := NodeFontSize(small); fs != 12 {
			t.Errorf("expected 12, got %v", fs)
		}
		tall := &graph.Node{H: 400}
		if fs := NodeFontSize(tall); fs != 20 {
			t.Errorf("expected 20, got %v", fs)
		}
		mid := &graph.Node{H: 48}
		if fs := NodeFontSize(mid); fs != 17 {
			t.Errorf("expected round(48*0.35)=17, got %v", fs)
		}
	})

	t.Run("Repeated resizes stabilize", func(t *testing.T) {
		// Size and font feed back into each other; the clamp bounds the
		// loop, so a few edits in the fixed point is reached.
		n := &graph.Node{ID: 1, Label: "some medium length label text", W: MinNodeW, H: MinNodeH}
		for i := 0; i < 3; i++ {
			ResizeNodeForLabel(n)
		}
		w, h := n.W, n.H
		for i := 0; i < 3; i++ {
			ResizeNodeForLabel(n)
		}
		if n.W != w || n.H != h {
			t.Errorf("resize drifted from %vx%v to %vx%v", w, h, n.W, n.H)
		}
	})
}
