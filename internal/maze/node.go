package maze

import "github.com/curer13/mazechase/internal/geom"

// Coord is a grid coordinate; it is the identity of a node.
type Coord struct {
	X, Y int
}

// NodeID indexes the node arena of a Graph.
type NodeID int

// NoNode marks a missing neighbour or portal partner.
const NoNode NodeID = -1

type Kind int

const (
	KindRegular Kind = iota
	KindPortal
)

func (k Kind) String() string {
	switch k {
	case KindPortal:
		return "portal"
	default:
		return "regular"
	}
}

// Node is a waypoint where actors may change direction.
type Node struct {
	ID       NodeID
	Coord    Coord
	Position geom.Vector2
	Kind     Kind
	// GhostOnly nodes are closed to the player.
	GhostOnly bool
	Pair      NodeID

	neighbours [4]NodeID
}

// Neighbour returns the node reached by leaving n in direction d, or NoNode.
func (n *Node) Neighbour(d geom.Direction) NodeID {
	i := slot(d)
	if i < 0 {
		return NoNode
	}
	return n.neighbours[i]
}

func (n *Node) HasNeighbour(d geom.Direction) bool {
	return n.Neighbour(d) != NoNode
}

func slot(d geom.Direction) int {
	switch d {
	case geom.DirUp:
		return 0
	case geom.DirDown:
		return 1
	case geom.DirLeft:
		return 2
	case geom.DirRight:
		return 3
	default:
		return -1
	}
}

func newNode(id NodeID, spec NodeSpec, cellSize float64) Node {
	return Node{
		ID:    id,
		Coord: spec.Coord,
		Position: geom.Vector2{
			X: float64(spec.Coord.X) * cellSize,
			Y: float64(spec.Coord.Y) * cellSize,
		},
		Kind:       spec.Kind,
		GhostOnly:  spec.GhostOnly,
		Pair:       NoNode,
		neighbours: [4]NodeID{NoNode, NoNode, NoNode, NoNode},
	}
}
