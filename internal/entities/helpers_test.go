package entities

import (
	"math"
	"testing"

	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/maze"
	"github.com/stretchr/testify/require"
)

const testCell = 10.0

// grid builds an eight node maze with a tunnel on row 13 and a ghost-only dead end below
// (3,13):
//
//	(3,3)---(13,3)---(23,3)
//	  |                |
//	(3,13)--(13,13)--(23,13)      P(0,13) and P(26,13) close the tunnel
//	          |        |
//	        (13,23)--(23,23)
func grid(t *testing.T) *maze.Graph {
	t.Helper()
	b := maze.NewBuilder(testCell)
	for _, c := range []maze.Coord{{X: 3, Y: 3}, {X: 13, Y: 3}, {X: 23, Y: 3}, {X: 3, Y: 13}, {X: 13, Y: 13}, {X: 23, Y: 13}, {X: 13, Y: 23}, {X: 23, Y: 23}} {
		b.AddNode(maze.NodeSpec{Coord: c})
	}
	b.AddNode(maze.NodeSpec{Coord: maze.Coord{X: 0, Y: 13}, Kind: maze.KindPortal})
	b.AddNode(maze.NodeSpec{Coord: maze.Coord{X: 26, Y: 13}, Kind: maze.KindPortal})
	b.AddNode(maze.NodeSpec{Coord: maze.Coord{X: 3, Y: 23}, GhostOnly: true})

	link := func(a, c maze.Coord, d geom.Direction) { b.Connect(a, c, d) }
	link(maze.Coord{X: 3, Y: 3}, maze.Coord{X: 13, Y: 3}, geom.DirRight)
	link(maze.Coord{X: 13, Y: 3}, maze.Coord{X: 23, Y: 3}, geom.DirRight)
	link(maze.Coord{X: 3, Y: 3}, maze.Coord{X: 3, Y: 13}, geom.DirDown)
	link(maze.Coord{X: 23, Y: 3}, maze.Coord{X: 23, Y: 13}, geom.DirDown)
	link(maze.Coord{X: 3, Y: 13}, maze.Coord{X: 13, Y: 13}, geom.DirRight)
	link(maze.Coord{X: 13, Y: 13}, maze.Coord{X: 23, Y: 13}, geom.DirRight)
	link(maze.Coord{X: 13, Y: 13}, maze.Coord{X: 13, Y: 23}, geom.DirDown)
	link(maze.Coord{X: 23, Y: 13}, maze.Coord{X: 23, Y: 23}, geom.DirDown)
	link(maze.Coord{X: 13, Y: 23}, maze.Coord{X: 23, Y: 23}, geom.DirRight)
	link(maze.Coord{X: 0, Y: 13}, maze.Coord{X: 3, Y: 13}, geom.DirRight)
	link(maze.Coord{X: 23, Y: 13}, maze.Coord{X: 26, Y: 13}, geom.DirRight)
	link(maze.Coord{X: 3, Y: 13}, maze.Coord{X: 3, Y: 23}, geom.DirDown)

	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func node(t *testing.T, g *maze.Graph, x, y int) maze.NodeID {
	t.Helper()
	id, ok := g.Lookup(maze.Coord{X: x, Y: y})
	require.True(t, ok, "no node at (%d,%d)", x, y)
	return id
}

func pos(x, y int) geom.Vector2 {
	return geom.Vector2{X: float64(x) * testCell, Y: float64(y) * testCell}
}

// onSegment reports whether a's position lies on its current edge.
func onSegment(a *Actor) bool {
	from := a.graph.Node(a.Current).Position
	to := a.Target()
	if to == maze.NoNode {
		return a.Position.ApproxEqual(from, 1e-6)
	}
	end := a.graph.Node(to).Position
	return math.Abs(from.Dist(a.Position)+a.Position.Dist(end)-from.Dist(end)) <= 1e-6
}
