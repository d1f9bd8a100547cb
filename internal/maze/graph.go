package maze

import "github.com/curer13/mazechase/internal/geom"

// Graph is the immutable waypoint graph of one maze. Actors read it but never mutate it.
type Graph struct {
	cellSize float64
	nodes    []Node
	index    map[Coord]NodeID
	portals  [2]NodeID
}

func (g *Graph) CellSize() float64 { return g.cellSize }

func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node with the given id, or nil for NoNode and out of range ids.
func (g *Graph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil
	}
	return &g.nodes[id]
}

// Lookup finds the node at c.
func (g *Graph) Lookup(c Coord) (NodeID, bool) {
	id, ok := g.index[c]
	return id, ok
}

// Nodes returns a copy of the node arena in id order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

func (g *Graph) Neighbour(id NodeID, d geom.Direction) NodeID {
	n := g.Node(id)
	if n == nil {
		return NoNode
	}
	return n.Neighbour(d)
}

// Portals returns the two paired portal nodes.
func (g *Graph) Portals() (NodeID, NodeID) {
	return g.portals[0], g.portals[1]
}

// ValidDirections lists, in tie-break order, the directions that leave id along an existing
// link. Links into ghost-only nodes are skipped unless ghost is set.
func (g *Graph) ValidDirections(id NodeID, ghost bool) []geom.Direction {
	n := g.Node(id)
	if n == nil {
		return nil
	}
	out := make([]geom.Direction, 0, 4)
	for _, d := range geom.Directions {
		if g.CanEnter(n.Neighbour(d), ghost) {
			out = append(out, d)
		}
	}
	return out
}

// CanEnter reports whether an actor may travel to id.
func (g *Graph) CanEnter(id NodeID, ghost bool) bool {
	n := g.Node(id)
	if n == nil {
		return false
	}
	return ghost || !n.GhostOnly
}
