package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// rawDocument defers nodes/edges decoding so malformed input can be
// rejected before anything is built, and so the legacy form (nodes and
// edges only) can be told apart from a full snapshot.
type rawDocument struct {
	Nodes           json.RawMessage `json:"nodes"`
	Edges           json.RawMessage `json:"edges"`
	Pan             *Pan            `json:"pan"`
	Scale           *float64        `json:"scale"`
	SelectedID      int             `json:"selectedId"`
	SelectedIDs     []int           `json:"selectedIds"`
	SelectedEdgeIDs []int           `json:"selectedEdgeIds"`
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Decode parses a persisted document. Two forms are accepted: a full
// snapshot (camera and selection restored wholesale) and a legacy form
// carrying only nodes and edges (camera reset to origin/scale 1,
// selection cleared). Input where nodes or edges is not an array is
// rejected, leaving the caller's state untouched.
func Decode(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	if !isJSONArray(raw.Nodes) {
		return nil, fmt.Errorf("invalid document: nodes is not an array")
	}
	if !isJSONArray(raw.Edges) {
		return nil, fmt.Errorf("invalid document: edges is not an array")
	}

	doc := &Document{Scale: 1}
	if err := json.Unmarshal(raw.Nodes, &doc.Nodes); err != nil {
		return nil, fmt.Errorf("invalid nodes: %w", err)
	}
	if err := json.Unmarshal(raw.Edges, &doc.Edges); err != nil {
		return nil, fmt.Errorf("invalid edges: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	// A full snapshot carries its camera; anything without one is the
	// legacy form and keeps the reset camera and empty selection.
	if raw.Scale != nil && *raw.Scale > 0 {
		doc.Scale = *raw.Scale
		if raw.Pan != nil {
			doc.Pan = *raw.Pan
		}
		doc.SelectedID = raw.SelectedID
		doc.SelectedIDs = raw.SelectedIDs
		doc.SelectedEdgeIDs = raw.SelectedEdgeIDs
	}
	return doc, nil
}

// validate rejects duplicate node ids. Edges referencing missing nodes
// are tolerated; queries and rendering skip them.
func validate(doc *Document) error {
	seen := make(map[int]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if seen[n.ID] {
			return fmt.Errorf("invalid document: duplicate node id %d", n.ID)
		}
		seen[n.ID] = true
	}
	return nil
}

// Encode serializes a document as indented JSON.
func Encode(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return data, nil
}

// LoadFile reads and decodes a document from disk.
func LoadFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return doc, nil
}

// SaveFile encodes and writes a document to disk.
func SaveFile(filename string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
