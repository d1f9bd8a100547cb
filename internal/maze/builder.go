package maze

import "github.com/curer13/mazechase/internal/geom"

// NodeSpec describes a node to add to a Builder.
type NodeSpec struct {
	Coord     Coord
	Kind      Kind
	GhostOnly bool
}

// Builder collects nodes and links and produces a validated Graph.
type Builder struct {
	cellSize float64
	nodes    []Node
	index    map[Coord]NodeID
	err      error
}

func NewBuilder(cellSize float64) *Builder {
	return &Builder{
		cellSize: cellSize,
		index:    make(map[Coord]NodeID),
	}
}

// AddNode registers a node. A coordinate that is already present keeps its first node and
// that node's id is returned.
func (b *Builder) AddNode(spec NodeSpec) NodeID {
	if id, ok := b.index[spec.Coord]; ok {
		return id
	}
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, newNode(id, spec, b.cellSize))
	b.index[spec.Coord] = id
	return id
}

// Connect links from to to via d, and to back to from via the opposite direction.
// Errors are kept and reported by Build.
func (b *Builder) Connect(from, to Coord, d geom.Direction) {
	if b.err != nil {
		return
	}
	if d == geom.DirNone {
		b.err = malformed("link without direction", &from)
		return
	}
	a, ok := b.index[from]
	if !ok {
		b.err = malformed("link from unknown node", &from)
		return
	}
	c, ok := b.index[to]
	if !ok {
		b.err = malformed("link to unknown node", &to)
		return
	}
	b.nodes[a].neighbours[slot(d)] = c
	b.nodes[c].neighbours[slot(d.Opposite())] = a
}

// Build validates the collected maze and pairs its portals.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	var portals []NodeID
	for i := range b.nodes {
		if b.nodes[i].Kind == KindPortal {
			portals = append(portals, b.nodes[i].ID)
		}
	}
	if len(portals) != 2 {
		return nil, &MalformedMazeError{Reason: portalCountReason(len(portals))}
	}

	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	nodes[portals[0]].Pair = portals[1]
	nodes[portals[1]].Pair = portals[0]

	for i := range nodes {
		n := &nodes[i]
		for _, d := range geom.Directions {
			to := n.Neighbour(d)
			if to == NoNode {
				continue
			}
			if nodes[to].Neighbour(d.Opposite()) != n.ID {
				c := n.Coord
				return nil, malformed("one-sided link "+d.String(), &c)
			}
		}
	}

	index := make(map[Coord]NodeID, len(b.index))
	for c, id := range b.index {
		index[c] = id
	}
	return &Graph{
		cellSize: b.cellSize,
		nodes:    nodes,
		index:    index,
		portals:  [2]NodeID{portals[0], portals[1]},
	}, nil
}

func portalCountReason(n int) string {
	switch n {
	case 0:
		return "no portal nodes, want 2"
	case 1:
		return "1 portal node, want 2"
	default:
		return "too many portal nodes, want 2"
	}
}
