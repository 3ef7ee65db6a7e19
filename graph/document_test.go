package graph

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFullSnapshot(t *testing.T) {
	data := []byte(`{
		"nodes": [{"id": 1, "label": "a", "x": 10, "y": 20, "w": 120, "h": 48}],
		"edges": [],
		"pan": {"x": -5, "y": 7},
		"scale": 1.5,
		"selectedId": 1,
		"selectedIds": [1]
	}`)
	doc, err := Decode(data)
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 1)
	assert.Equal(t, 1.5, doc.Scale)
	assert.Equal(t, -5.0, doc.Pan.X)
	assert.Equal(t, 1, doc.SelectedID)
	assert.Equal(t, []int{1}, doc.SelectedIDs)
}

func TestDecodeLegacyForm(t *testing.T) {
	data := []byte(`{
		"nodes": [{"id": 1, "label": "a"}, {"id": 2, "label": "b"}],
		"edges": [{"id": 1, "source": 1, "target": 2}]
	}`)
	doc, err := Decode(data)
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 2)
	assert.Len(t, doc.Edges, 1)
	// Camera resets, selection clears.
	assert.Equal(t, 1.0, doc.Scale)
	assert.Equal(t, Pan{}, doc.Pan)
	assert.Zero(t, doc.SelectedID)
	assert.Empty(t, doc.SelectedIDs)
	assert.Empty(t, doc.SelectedEdgeIDs)
}

func TestDecodeRejectsNonArrays(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"edges is a string", `{"nodes": [], "edges": "x"}`},
		{"nodes is an object", `{"nodes": {}, "edges": []}`},
		{"nodes missing", `{"edges": []}`},
		{"not json", `so not json`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Decode([]byte(tc.data))
			assert.Error(t, err)
			assert.Nil(t, doc)
		})
	}
}

func TestDecodeRejectsDuplicateNodeIDs(t *testing.T) {
	data := []byte(`{"nodes": [{"id": 1}, {"id": 1}], "edges": []}`)
	_, err := Decode(data)
	assert.ErrorContains(t, err, "duplicate node id")
}

func TestDecodeToleratesDanglingEdges(t *testing.T) {
	data := []byte(`{"nodes": [{"id": 1}], "edges": [{"id": 1, "source": 1, "target": 99}]}`)
	doc, err := Decode(data)
	require.NoError(t, err)
	assert.Len(t, doc.Edges, 1, "dangling edges are kept and skipped at query time")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := &Document{
		Nodes: []Node{
			{ID: 1, Label: "root", X: 0, Y: 0, W: 120, H: 48, Stroke: "#e8e8e8", Bold: true},
			{ID: 2, Label: "child", X: 160, Y: 0, W: 120, H: 48, Fill: "#223"},
		},
		Edges:       []Edge{{ID: 1, Source: 1, Target: 2, Arrow: true, Label: "link"}},
		Pan:         Pan{X: 12, Y: -3},
		Scale:       0.75,
		SelectedID:  2,
		SelectedIDs: []int{2},
	}
	data, err := Encode(doc)
	require.NoError(t, err)
	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	doc := &Document{
		Nodes: []Node{{ID: 1, Label: "only"}},
		Edges: []Edge{},
		Scale: 1,
	}
	require.NoError(t, SaveFile(path, doc))
	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Nodes, back.Nodes)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
