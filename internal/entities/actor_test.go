package entities

import (
	"testing"

	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReachedBoundaries(t *testing.T) {
	from := geom.Vector2{X: 0, Y: 0}
	to := geom.Vector2{X: 10, Y: 0}
	tol := DefaultReachTolerance

	tests := []struct {
		name string
		pos  geom.Vector2
		want bool
	}{
		{name: "at start", pos: from, want: false},
		{name: "midpoint", pos: geom.Vector2{X: 5}, want: false},
		{name: "midpoint with float noise", pos: geom.Vector2{X: 5, Y: 1e-12}, want: false},
		{name: "just short", pos: geom.Vector2{X: 9.999}, want: false},
		{name: "exactly on target", pos: to, want: true},
		{name: "within tolerance of target", pos: geom.Vector2{X: 10 - 1e-9}, want: true},
		{name: "overshoot", pos: geom.Vector2{X: 10.5}, want: true},
		{name: "behind start", pos: geom.Vector2{X: -0.5}, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Reached(from, tc.pos, to, tol))
		})
	}
}

func TestReachedDegenerateEdge(t *testing.T) {
	p := geom.Vector2{X: 3, Y: 3}
	assert.True(t, Reached(p, p, p, DefaultReachTolerance))
	assert.True(t, Reached(p, geom.Vector2{X: 4, Y: 3}, p, DefaultReachTolerance))
}

func TestParkedActorNeverMoves(t *testing.T) {
	g := grid(t)
	p := NewPlayer(g, node(t, g, 3, 3), 100, 4, 3)
	require.Equal(t, geom.DirNone, p.Direction)
	for i := 0; i < 10; i++ {
		p.Update(0.1)
	}
	assert.Equal(t, pos(3, 3), p.Position)
	assert.True(t, p.Reached())
	assert.Equal(t, maze.NoNode, p.Target())
}

func TestActorBlockedByWallStaysParked(t *testing.T) {
	g := grid(t)
	p := NewPlayer(g, node(t, g, 3, 3), 100, 4, 3)
	p.Direction = geom.DirUp
	p.Update(0.1)
	assert.Equal(t, pos(3, 3), p.Position)
	assert.Equal(t, node(t, g, 3, 3), p.Current)
}

func TestArrivalSnapsToNode(t *testing.T) {
	g := grid(t)
	p := NewPlayer(g, node(t, g, 3, 3), 100, 4, 3)
	p.Steer(geom.DirRight)
	require.Equal(t, geom.DirRight, p.Direction)

	// 100 units at 1 unit per tick lands on (13,3).
	for i := 0; i < 99; i++ {
		p.Update(0.01)
		require.Equal(t, node(t, g, 3, 3), p.Current, "tick %d", i)
	}
	p.Update(0.01)
	assert.Equal(t, node(t, g, 13, 3), p.Current)
	assert.Equal(t, pos(13, 3), p.Position)
	assert.Equal(t, node(t, g, 23, 3), p.Target())
}

func TestOvershootSnapsWithoutDrift(t *testing.T) {
	g := grid(t)
	p := NewPlayer(g, node(t, g, 3, 3), 70, 4, 3)
	p.Steer(geom.DirRight)
	for i := 0; i < 14; i++ {
		p.Update(0.1)
	}
	require.Equal(t, node(t, g, 3, 3), p.Current)
	// The 15th tick of 7 units overshoots the 100 unit edge; the arrival snaps exactly.
	p.Update(0.1)
	assert.Equal(t, node(t, g, 13, 3), p.Current)
	assert.Equal(t, pos(13, 3), p.Position)
}

func TestPortalSubstitution(t *testing.T) {
	g := grid(t)
	p := NewPlayer(g, node(t, g, 23, 13), 30, 4, 3)
	p.Steer(geom.DirRight)
	require.Equal(t, node(t, g, 26, 13), p.Target())

	p.Update(1)

	left := node(t, g, 0, 13)
	assert.Equal(t, left, p.Current)
	assert.Equal(t, pos(0, 13), p.Position)
	assert.Equal(t, geom.DirRight, p.Direction)
	assert.Equal(t, node(t, g, 3, 13), p.Target())
	assert.False(t, p.Reached())

	// The jump happens once; the next arrival is the ordinary node on the far side.
	p.Update(1)
	assert.Equal(t, node(t, g, 3, 13), p.Current)
}

func TestDegenerateSelfLinkArrivesImmediately(t *testing.T) {
	b := maze.NewBuilder(testCell)
	b.AddNode(maze.NodeSpec{Coord: maze.Coord{X: 0, Y: 0}, Kind: maze.KindPortal})
	b.AddNode(maze.NodeSpec{Coord: maze.Coord{X: 9, Y: 0}, Kind: maze.KindPortal})
	self := b.AddNode(maze.NodeSpec{Coord: maze.Coord{X: 5, Y: 5}})
	b.Connect(maze.Coord{X: 5, Y: 5}, maze.Coord{X: 5, Y: 5}, geom.DirRight)
	g, err := b.Build()
	require.NoError(t, err)

	p := NewPlayer(g, self, 100, 4, 3)
	p.Steer(geom.DirRight)
	require.Equal(t, geom.DirRight, p.Direction)
	for i := 0; i < 3; i++ {
		p.Update(0.5)
		assert.Equal(t, self, p.Current)
		assert.Equal(t, pos(5, 5), p.Position)
	}
}

func TestPositionStaysOnSegment(t *testing.T) {
	g := grid(t)
	p := NewPlayer(g, node(t, g, 3, 3), 37, 4, 3)
	turns := []geom.Direction{geom.DirRight, geom.DirDown, geom.DirLeft, geom.DirUp}
	for i := 0; i < 2000; i++ {
		if i%17 == 0 {
			p.Steer(turns[(i/17)%len(turns)])
		}
		p.Update(0.033)
		require.True(t, onSegment(&p.Actor), "tick %d: %v off edge %v->%v", i, p.Position, p.Current, p.Target())
	}
}

func TestCollides(t *testing.T) {
	g := grid(t)
	p := NewPlayer(g, node(t, g, 3, 3), 10, 4, 3)
	gh := NewGhost(0, g, node(t, g, 3, 3), node(t, g, 23, 23), 4, defaultTuning(), newRand())
	assert.True(t, Collides(&p.Actor, &gh.Actor, 1.5))
	gh.Position = gh.Position.Add(geom.Vector2{X: 6})
	assert.True(t, Collides(&p.Actor, &gh.Actor, 1.5))
	gh.Position = gh.Position.Add(geom.Vector2{X: 0.5})
	assert.False(t, Collides(&p.Actor, &gh.Actor, 1.5))
}
