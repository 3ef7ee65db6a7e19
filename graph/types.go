// Package graph contains the node/edge data model, the canonical store
// that owns it, and the JSON document form used for persistence.
package graph

// Node represents a labeled box in the diagram.
type Node struct {
	ID     int     `json:"id"`
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Stroke string  `json:"strokeColor,omitempty"`
	Fill   string  `json:"fillColor,omitempty"`
	Bold   bool    `json:"bold,omitempty"`
}

// Edge represents a directed connection between two nodes. Both
// endpoints must reference existing nodes; removing either endpoint
// removes the edge in the same transaction.
type Edge struct {
	ID     int    `json:"id"`
	Source int    `json:"source"`
	Target int    `json:"target"`
	Label  string `json:"label,omitempty"`
	Dashed bool   `json:"dashed,omitempty"`
	Arrow  bool   `json:"arrow,omitempty"`
}

// Pan is the camera offset in world coordinates.
type Pan struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Document is the full persisted/exported form of an editing session:
// graph, camera and selection. It is also the unit of undo/redo — a
// Document captured by Snapshot is never mutated afterwards.
type Document struct {
	Nodes           []Node  `json:"nodes"`
	Edges           []Edge  `json:"edges"`
	Pan             Pan     `json:"pan"`
	Scale           float64 `json:"scale"`
	SelectedID      int     `json:"selectedId,omitempty"`
	SelectedIDs     []int   `json:"selectedIds,omitempty"`
	SelectedEdgeIDs []int   `json:"selectedEdgeIds,omitempty"`
}

// Clone creates a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := &Document{
		Pan:        d.Pan,
		Scale:      d.Scale,
		SelectedID: d.SelectedID,
	}
	clone.Nodes = make([]Node, len(d.Nodes))
	copy(clone.Nodes, d.Nodes)
	clone.Edges = make([]Edge, len(d.Edges))
	copy(clone.Edges, d.Edges)
	if d.SelectedIDs != nil {
		clone.SelectedIDs = make([]int, len(d.SelectedIDs))
		copy(clone.SelectedIDs, d.SelectedIDs)
	}
	if d.SelectedEdgeIDs != nil {
		clone.SelectedEdgeIDs = make([]int, len(d.SelectedEdgeIDs))
		copy(clone.SelectedEdgeIDs, d.SelectedEdgeIDs)
	}
	return clone
}
