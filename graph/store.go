package graph

import "sort"

// Store owns the canonical node and edge collections. All structural
// mutation goes through it; operations on unknown ids are no-ops rather
// than errors.
type Store struct {
	Nodes []Node
	Edges []Edge
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Node returns a pointer into the store for in-place mutation, or nil
// if the id is unknown.
func (s *Store) Node(id int) *Node {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i]
		}
	}
	return nil
}

// Edge returns a pointer into the store, or nil if the id is unknown.
func (s *Store) Edge(id int) *Edge {
	for i := range s.Edges {
		if s.Edges[i].ID == id {
			return &s.Edges[i]
		}
	}
	return nil
}

// HasNode reports whether a node with the given id exists.
func (s *Store) HasNode(id int) bool {
	return s.Node(id) != nil
}

// NextNodeID returns max(existing ids)+1, or 1 for an empty store.
func (s *Store) NextNodeID() int {
	max := 0
	for i := range s.Nodes {
		if s.Nodes[i].ID > max {
			max = s.Nodes[i].ID
		}
	}
	return max + 1
}

// NextEdgeID returns max(existing ids)+1, or 1 for an empty store.
func (s *Store) NextEdgeID() int {
	max := 0
	for i := range s.Edges {
		if s.Edges[i].ID > max {
			max = s.Edges[i].ID
		}
	}
	return max + 1
}

// AddNode appends a node. The caller is responsible for a unique id,
// normally via NextNodeID.
func (s *Store) AddNode(n Node) {
	s.Nodes = append(s.Nodes, n)
}

// AddEdge appends an edge. The caller is responsible for a unique id
// and valid endpoints.
func (s *Store) AddEdge(e Edge) {
	s.Edges = append(s.Edges, e)
}

// RemoveNodes deletes every node whose id is in ids together with every
// edge touching any of them. When exactly one node was removed and its
// tree parent is not itself being removed, the parent's id is returned
// so the caller can move the selection there; otherwise 0.
func (s *Store) RemoveNodes(ids ...int) (parentID int) {
	if len(ids) == 0 {
		return 0
	}
	doomed := make(map[int]bool, len(ids))
	removed := 0
	for _, id := range ids {
		if s.HasNode(id) && !doomed[id] {
			doomed[id] = true
			removed++
		}
	}
	if removed == 0 {
		return 0
	}
	if removed == 1 {
		for id := range doomed {
			if p := s.Parent(id); p != 0 && !doomed[p] {
				parentID = p
			}
		}
	}

	nodes := s.Nodes[:0]
	for _, n := range s.Nodes {
		if !doomed[n.ID] {
			nodes = append(nodes, n)
		}
	}
	s.Nodes = nodes

	edges := s.Edges[:0]
	for _, e := range s.Edges {
		if !doomed[e.Source] && !doomed[e.Target] {
			edges = append(edges, e)
		}
	}
	s.Edges = edges
	return parentID
}

// RemoveEdges deletes the edges with the given ids. Nodes are untouched.
func (s *Store) RemoveEdges(ids ...int) {
	if len(ids) == 0 {
		return
	}
	doomed := make(map[int]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}
	edges := s.Edges[:0]
	for _, e := range s.Edges {
		if !doomed[e.ID] {
			edges = append(edges, e)
		}
	}
	s.Edges = edges
}

// Parent returns the tree parent of a node: the source of the first
// edge, in insertion order, whose target is the node. The edge set is a
// general graph, so a node may have several incoming edges; the first
// one defines the parent by policy. Returns 0 when there is none.
func (s *Store) Parent(childID int) int {
	for i := range s.Edges {
		if s.Edges[i].Target == childID {
			return s.Edges[i].Source
		}
	}
	return 0
}

// Children returns the targets of all edges leaving the node, sorted
// ascending by id so angular placement sees a deterministic order.
func (s *Store) Children(parentID int) []int {
	var kids []int
	for i := range s.Edges {
		if s.Edges[i].Source == parentID {
			kids = append(kids, s.Edges[i].Target)
		}
	}
	sort.Ints(kids)
	return kids
}

// RootPath walks Parent from the node up to a parentless node and
// returns the chain root first, the node itself last. A visited guard
// stops edge cycles from looping forever.
func (s *Store) RootPath(nodeID int) []int {
	if !s.HasNode(nodeID) {
		return nil
	}
	path := []int{nodeID}
	seen := map[int]bool{nodeID: true}
	for {
		p := s.Parent(path[0])
		if p == 0 || seen[p] {
			return path
		}
		seen[p] = true
		path = append([]int{p}, path...)
	}
}

// EdgeBetween returns the id of an edge connecting a and b in either
// direction, or 0 when none exists. The edge set is treated as an
// unordered-pair set for this lookup.
func (s *Store) EdgeBetween(a, b int) int {
	for i := range s.Edges {
		e := &s.Edges[i]
		if (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a) {
			return e.ID
		}
	}
	return 0
}

// IncidentEdges returns the ids of all edges touching the node.
func (s *Store) IncidentEdges(nodeID int) []int {
	var ids []int
	for i := range s.Edges {
		if s.Edges[i].Source == nodeID || s.Edges[i].Target == nodeID {
			ids = append(ids, s.Edges[i].ID)
		}
	}
	return ids
}

// Clone creates a deep copy of the store.
func (s *Store) Clone() *Store {
	clone := &Store{
		Nodes: make([]Node, len(s.Nodes)),
		Edges: make([]Edge, len(s.Edges)),
	}
	copy(clone.Nodes, s.Nodes)
	copy(clone.Edges, s.Edges)
	return clone
}
