package entities

import (
	"image/color"

	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/maze"
)

// DefaultReachTolerance absorbs floating point noise in the arrival test.
const DefaultReachTolerance = 1e-6

// Actor is the state shared by everything that moves on the maze graph.
type Actor struct {
	Name      string
	Color     color.RGBA
	Current   maze.NodeID
	Position  geom.Vector2
	Direction geom.Direction
	Speed     float64
	Radius    float64
	Tolerance float64

	graph *maze.Graph
	// ghost actors may enter ghost-only nodes.
	ghost bool
}

func newActor(g *maze.Graph, at maze.NodeID, speed, radius float64, ghost bool) Actor {
	a := Actor{
		Current:   at,
		Direction: geom.DirNone,
		Speed:     speed,
		Radius:    radius,
		Tolerance: DefaultReachTolerance,
		graph:     g,
		ghost:     ghost,
	}
	if n := g.Node(at); n != nil {
		a.Position = n.Position
	}
	return a
}

func (a *Actor) Graph() *maze.Graph { return a.graph }

// Target is the node at the far end of the edge being travelled, or maze.NoNode when the
// actor is parked.
func (a *Actor) Target() maze.NodeID {
	to := a.graph.Neighbour(a.Current, a.Direction)
	if !a.graph.CanEnter(to, a.ghost) {
		return maze.NoNode
	}
	return to
}

// Reached applies the arrival predicate to the actor's current edge.
func (a *Actor) Reached() bool {
	to := a.Target()
	if to == maze.NoNode {
		return true
	}
	return Reached(a.graph.Node(a.Current).Position, a.Position, a.graph.Node(to).Position, a.Tolerance)
}

// AtNode reports whether the actor sits on its current node.
func (a *Actor) AtNode() bool {
	n := a.graph.Node(a.Current)
	return n != nil && a.Position.ApproxEqual(n.Position, a.Tolerance)
}

// CanLeave reports whether the actor may depart from id in direction d.
func (a *Actor) CanLeave(id maze.NodeID, d geom.Direction) bool {
	return a.graph.CanEnter(a.graph.Neighbour(id, d), a.ghost)
}

// Reached reports whether pos has arrived at to while travelling from from. A zero length
// edge is always reached; otherwise the triangle sum must exceed the edge length (overshoot)
// or pos must sit on to.
func Reached(from, pos, to geom.Vector2, tol float64) bool {
	if from.Equal(to) {
		return true
	}
	if pos.ApproxEqual(to, tol) {
		return true
	}
	return from.Dist(pos)+pos.Dist(to) > from.Dist(to)+tol
}

// step advances the actor along its edge and commits an arrival. It reports whether a node
// was reached.
func (a *Actor) step(dt float64) bool {
	to := a.Target()
	if to == maze.NoNode {
		return false
	}
	if to == a.Current {
		a.arrive(to)
		return true
	}
	a.Position = a.Position.Add(a.Direction.Vector().Scale(a.Speed * dt))
	if !a.Reached() {
		return false
	}
	a.arrive(to)
	return true
}

// arrive moves the actor onto id and resolves a portal jump.
func (a *Actor) arrive(id maze.NodeID) {
	n := a.graph.Node(id)
	a.Current = id
	a.Position = n.Position
	if n.Kind != maze.KindPortal || n.Pair == maze.NoNode {
		return
	}
	pair := a.graph.Node(n.Pair)
	a.Current = pair.ID
	a.Position = pair.Position
}

// reverse turns around mid-edge: the target becomes the current node and the position is
// kept.
func (a *Actor) reverse() bool {
	to := a.Target()
	if to == maze.NoNode {
		return false
	}
	a.Current = to
	a.Direction = a.Direction.Opposite()
	return true
}

// placeAt parks the actor on id.
func (a *Actor) placeAt(id maze.NodeID) {
	a.Current = id
	a.Direction = geom.DirNone
	if n := a.graph.Node(id); n != nil {
		a.Position = n.Position
	}
}

// Collides reports whether two actors overlap using a circle of factor*radius around a.
func Collides(a, b *Actor, factor float64) bool {
	return a.Position.Dist(b.Position) <= factor*a.Radius
}
