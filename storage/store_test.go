package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindgrid/graph"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "docs", "mindgrid.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleDoc() *graph.Document {
	return &graph.Document{
		Nodes: []graph.Node{
			{ID: 1, Label: "root", X: 0, Y: 0, W: 120, H: 48},
			{ID: 2, Label: "child", X: 160, Y: 0, W: 120, H: 48},
		},
		Edges: []graph.Edge{{ID: 1, Source: 1, Target: 2}},
		Scale: 1,
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("work", sampleDoc()))

	got, err := s.Get("work")
	require.NoError(t, err)
	assert.Len(t, got.Nodes, 2)
	assert.Len(t, got.Edges, 1)
	assert.Equal(t, "root", got.Nodes[0].Label)
}

func TestPutReplacesSlot(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("work", sampleDoc()))

	doc := sampleDoc()
	doc.Nodes = doc.Nodes[:1]
	doc.Edges = nil
	require.NoError(t, s.Put("work", doc))

	got, err := s.Get("work")
	require.NoError(t, err)
	assert.Len(t, got.Nodes, 1)

	entries, err := s.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1, "replace must not add a second slot")
}

func TestGetMissingSlot(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("work", sampleDoc()))
	require.NoError(t, s.Delete("work"))

	_, err := s.Get("work")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete("work"), ErrNotFound)
}

func TestListOrdersByRecency(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("first", sampleDoc()))
	require.NoError(t, s.Put("second", sampleDoc()))
	require.NoError(t, s.Put("first", sampleDoc())) // touch

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Name)
}

func TestRawPreservesEncoding(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put(AutosaveSlot, sampleDoc()))

	raw, err := s.Raw(AutosaveSlot)
	require.NoError(t, err)
	decoded, err := graph.Decode(raw)
	require.NoError(t, err)
	assert.Len(t, decoded.Nodes, 2)
}

func TestEmptySlotNameRejected(t *testing.T) {
	s := openTestStore(t)
	assert.Error(t, s.Put("", sampleDoc()))
}
