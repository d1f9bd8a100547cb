package entities

import (
	"testing"

	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/maze"
)

func TestPelletRegistryConsume(t *testing.T) {
	r := NewPelletRegistry([]PelletSpec{
		{Coord: maze.Coord{X: 1, Y: 1}, Kind: PelletSmall},
		{Coord: maze.Coord{X: 2, Y: 1}, Kind: PelletBig},
	}, 16, 3, 6)

	if r.Len() != 2 || r.Remaining() != 2 {
		t.Fatalf("unexpected counts: len=%d remaining=%d", r.Len(), r.Remaining())
	}
	ps := r.Pellets()
	if ps[0].Position != (geom.Vector2{X: 16, Y: 16}) || ps[1].Radius != 6 {
		t.Fatalf("unexpected pellet layout: %+v", ps)
	}

	if !r.Consume(0) {
		t.Fatalf("expected first consume to succeed")
	}
	if r.Consume(0) {
		t.Fatalf("expected second consume of the same pellet to be a no-op")
	}
	if r.Consume(-1) || r.Consume(5) {
		t.Fatalf("out of range consume should report false")
	}
	if r.Remaining() != 1 {
		t.Fatalf("expected 1 remaining, got %d", r.Remaining())
	}

	// Pellets returns a copy.
	ps = r.Pellets()
	ps[1].Consumed = true
	if r.Remaining() != 1 || r.Pellets()[1].Consumed {
		t.Fatalf("registry state leaked through Pellets()")
	}
}

func TestConsumeAtRadius(t *testing.T) {
	r := NewPelletRegistry([]PelletSpec{{Coord: maze.Coord{X: 1, Y: 0}, Kind: PelletSmall}}, 10, 2, 4)
	if got := r.ConsumeAt(geom.Vector2{X: 7, Y: 0}); len(got) != 0 {
		t.Fatalf("pellet outside radius was eaten")
	}
	if got := r.ConsumeAt(geom.Vector2{X: 8, Y: 0}); len(got) != 1 {
		t.Fatalf("pellet on the radius boundary should be eaten")
	}
	if got := r.ConsumeAt(geom.Vector2{X: 10, Y: 0}); len(got) != 0 {
		t.Fatalf("consumed pellet was eaten twice")
	}
}

func TestGhostPointsCombo(t *testing.T) {
	s := Scoring{Small: 10, Big: 50, GhostBase: 200, GhostMax: 1600}
	want := []int{200, 400, 800, 1600, 1600, 1600}
	for combo, w := range want {
		if got := s.GhostPoints(combo); got != w {
			t.Fatalf("GhostPoints(%d) = %d, want %d", combo, got, w)
		}
	}
	if s.GhostPoints(70) != 1600 {
		t.Fatalf("large combos must stay capped")
	}
	if s.PelletPoints(PelletSmall) != 10 || s.PelletPoints(PelletBig) != 50 {
		t.Fatalf("unexpected pellet points")
	}
}
