package editor

import (
	"math"
	"sort"

	"mindgrid/geometry"
)

// Direction is one of the four cardinal navigation directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit vector for the direction. Screen Y grows
// downward, so Up is negative Y.
func (d Direction) Vector() geometry.Point {
	switch d {
	case DirUp:
		return geometry.Point{X: 0, Y: -1}
	case DirDown:
		return geometry.Point{X: 0, Y: 1}
	case DirLeft:
		return geometry.Point{X: -1, Y: 0}
	default:
		return geometry.Point{X: 1, Y: 0}
	}
}

// Cone widths for the tiered candidate search.
var (
	narrowCone = 30 * math.Pi / 180
	wideCone   = 60 * math.Pi / 180
)

// distanceTieEpsilon decides when two candidate distances count as
// different; below it the smaller angle wins instead.
const distanceTieEpsilon = 1e-3

type navCandidate struct {
	id    int
	dist  float64
	angle float64
}

// Navigate moves the selection to the nearest node in the given
// direction. Candidates lie in the forward half-plane; the search
// prefers the best-aligned close neighbor within a 30° cone, widens to
// 60°, and finally falls back to the globally best-aligned candidate,
// so something is always chosen when any forward node exists. Returns
// false when nothing was selected or no forward candidate exists.
func (e *Editor) Navigate(d Direction) bool {
	current := e.store.Node(e.sel.Primary)
	if current == nil {
		return false
	}
	dir := d.Vector()
	origin := geometry.Point{X: current.X, Y: current.Y}

	var candidates []navCandidate
	for i := range e.store.Nodes {
		n := &e.store.Nodes[i]
		if n.ID == current.ID {
			continue
		}
		dx := n.X - origin.X
		dy := n.Y - origin.Y
		dot := dx*dir.X + dy*dir.Y
		if dot <= 0 {
			continue // behind or exactly sideways
		}
		dist := math.Hypot(dx, dy)
		// Clamp for numerical safety before acos.
		cos := geometry.Clamp(dot/dist, -1, 1)
		candidates = append(candidates, navCandidate{
			id:    n.ID,
			dist:  dist,
			angle: math.Acos(cos),
		})
	}
	if len(candidates) == 0 {
		return false
	}

	if best := pickWithinCone(candidates, narrowCone); best != 0 {
		e.selectOnly(best)
		return true
	}
	if best := pickWithinCone(candidates, wideCone); best != 0 {
		e.selectOnly(best)
		return true
	}

	// Fallback: globally smallest angle regardless of distance.
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.angle < best.angle {
			best = c
		}
	}
	e.selectOnly(best.id)
	return true
}

// pickWithinCone returns the preferred candidate inside the cone:
// distance wins when the difference is beyond the epsilon, otherwise
// the smaller angle. Returns 0 when the cone is empty.
func pickWithinCone(candidates []navCandidate, cone float64) int {
	var best *navCandidate
	for i := range candidates {
		c := &candidates[i]
		if c.angle > cone {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		if math.Abs(c.dist-best.dist) > distanceTieEpsilon {
			if c.dist < best.dist {
				best = c
			}
		} else if c.angle < best.angle {
			best = c
		}
	}
	if best == nil {
		return 0
	}
	return best.id
}

// NavigateUp walks one step toward the root of the selected node's
// tree, remembering the path walked. At a root it cycles to the next
// parentless node by ascending id, so repeated presses tour the
// forest's roots.
func (e *Editor) NavigateUp() bool {
	current := e.sel.Primary
	if current == 0 || !e.store.HasNode(current) {
		return false
	}
	if parent := e.store.Parent(current); parent != 0 {
		walked := append(e.navPath, current)
		e.selectOnly(parent) // resets navPath
		e.navPath = walked
		return true
	}
	return e.cycleRoots(current)
}

// cycleRoots selects the next parentless node after current, wrapping.
func (e *Editor) cycleRoots(current int) bool {
	var roots []int
	for i := range e.store.Nodes {
		if e.store.Parent(e.store.Nodes[i].ID) == 0 {
			roots = append(roots, e.store.Nodes[i].ID)
		}
	}
	if len(roots) < 2 {
		return false
	}
	// Ascending ids give the tour a stable order.
	sort.Ints(roots)
	for i, id := range roots {
		if id == current {
			e.selectOnly(roots[(i+1)%len(roots)])
			return true
		}
	}
	e.selectOnly(roots[0])
	return true
}

// NavigateBackDown retraces the hierarchical walk one step.
func (e *Editor) NavigateBackDown() bool {
	if len(e.navPath) == 0 {
		return false
	}
	last := e.navPath[len(e.navPath)-1]
	remaining := e.navPath[:len(e.navPath)-1]
	if !e.store.HasNode(last) {
		e.navPath = nil
		return false
	}
	e.selectOnly(last) // resets navPath
	e.navPath = remaining
	return true
}
