package entities

import (
	"math"
	"math/rand"

	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/maze"
)

// GreedyDirection picks the candidate whose one-cell step from node lands closest to goal.
// Ties go to the earliest candidate, so callers pass candidates in geom.Directions order.
func GreedyDirection(g *maze.Graph, node maze.NodeID, candidates []geom.Direction, goal geom.Vector2) geom.Direction {
	n := g.Node(node)
	if n == nil {
		return geom.DirNone
	}
	best := geom.DirNone
	bestDist := math.Inf(1)
	for _, d := range candidates {
		p := n.Position.Add(d.Vector().Scale(g.CellSize()))
		if dist := p.Dist(goal); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// RandomDirection picks uniformly among candidates.
func RandomDirection(rng *rand.Rand, candidates []geom.Direction) geom.Direction {
	if len(candidates) == 0 {
		return geom.DirNone
	}
	return candidates[rng.Intn(len(candidates))]
}
