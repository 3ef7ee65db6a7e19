package editor

// Selection tracks which nodes or edges are selected. The two domains
// are mutually exclusive: selecting in one clears the other, enforced
// at every mutation site rather than by convention.
type Selection struct {
	Primary int   // primary node id, 0 for none
	IDs     []int // multi-select set, superset including Primary
	EdgeIDs []int // selected edge ids
}

// Has reports whether the node id is in the multi-select set.
func (s *Selection) Has(id int) bool {
	for _, v := range s.IDs {
		if v == id {
			return true
		}
	}
	return false
}

// HasEdge reports whether the edge id is selected.
func (s *Selection) HasEdge(id int) bool {
	for _, v := range s.EdgeIDs {
		if v == id {
			return true
		}
	}
	return false
}

// SelectOnly makes id the sole selection.
func (s *Selection) SelectOnly(id int) {
	s.Primary = id
	s.IDs = []int{id}
	s.EdgeIDs = nil
}

// Toggle adds or removes id from the multi-select set. The primary
// becomes the first remaining member, or 0 when the set empties.
func (s *Selection) Toggle(id int) {
	s.EdgeIDs = nil
	for i, v := range s.IDs {
		if v == id {
			s.IDs = append(s.IDs[:i], s.IDs[i+1:]...)
			if len(s.IDs) == 0 {
				s.Primary = 0
			} else {
				s.Primary = s.IDs[0]
			}
			return
		}
	}
	s.IDs = append(s.IDs, id)
	s.Primary = s.IDs[0]
}

// SetAll replaces the multi-select set wholesale (marquee result).
// Primary is the first element; an empty slice clears node selection.
func (s *Selection) SetAll(ids []int) {
	s.EdgeIDs = nil
	s.IDs = append([]int(nil), ids...)
	if len(s.IDs) == 0 {
		s.Primary = 0
	} else {
		s.Primary = s.IDs[0]
	}
}

// SelectEdge selects an edge, additively when additive is true. Node
// selection always empties.
func (s *Selection) SelectEdge(id int, additive bool) {
	s.Primary = 0
	s.IDs = nil
	if !additive {
		s.EdgeIDs = nil
	}
	if !s.HasEdge(id) {
		s.EdgeIDs = append(s.EdgeIDs, id)
	}
}

// Clear empties both domains.
func (s *Selection) Clear() {
	s.Primary = 0
	s.IDs = nil
	s.EdgeIDs = nil
}

// Empty reports whether nothing is selected in either domain.
func (s *Selection) Empty() bool {
	return len(s.IDs) == 0 && len(s.EdgeIDs) == 0
}
