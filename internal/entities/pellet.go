package entities

import (
	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/maze"
)

type PelletKind int

const (
	PelletSmall PelletKind = iota
	PelletBig
)

func (k PelletKind) String() string {
	if k == PelletBig {
		return "big"
	}
	return "small"
}

// PelletSpec is a pellet as produced by the level loader.
type PelletSpec struct {
	Coord maze.Coord
	Kind  PelletKind
}

type Pellet struct {
	Coord    maze.Coord
	Position geom.Vector2
	Kind     PelletKind
	Radius   float64
	Consumed bool
}

// PelletRegistry holds the collectibles of a level. The set never grows or shrinks; only the
// Consumed flags change, and only from false to true.
type PelletRegistry struct {
	pellets   []Pellet
	remaining int
}

func NewPelletRegistry(specs []PelletSpec, cellSize, smallRadius, bigRadius float64) *PelletRegistry {
	r := &PelletRegistry{pellets: make([]Pellet, 0, len(specs))}
	for _, s := range specs {
		radius := smallRadius
		if s.Kind == PelletBig {
			radius = bigRadius
		}
		r.pellets = append(r.pellets, Pellet{
			Coord: s.Coord,
			Position: geom.Vector2{
				X: float64(s.Coord.X) * cellSize,
				Y: float64(s.Coord.Y) * cellSize,
			},
			Kind:   s.Kind,
			Radius: radius,
		})
	}
	r.remaining = len(r.pellets)
	return r
}

func (r *PelletRegistry) Len() int { return len(r.pellets) }

func (r *PelletRegistry) Remaining() int { return r.remaining }

// Pellets returns a copy of every pellet, consumed or not.
func (r *PelletRegistry) Pellets() []Pellet {
	out := make([]Pellet, len(r.pellets))
	copy(out, r.pellets)
	return out
}

// Consume marks the i-th pellet eaten. It reports false if the pellet was already eaten or i
// is out of range.
func (r *PelletRegistry) Consume(i int) bool {
	if i < 0 || i >= len(r.pellets) || r.pellets[i].Consumed {
		return false
	}
	r.pellets[i].Consumed = true
	r.remaining--
	return true
}

// ConsumeAt eats every unconsumed pellet whose radius covers pos and returns them.
func (r *PelletRegistry) ConsumeAt(pos geom.Vector2) []Pellet {
	var eaten []Pellet
	for i := range r.pellets {
		p := &r.pellets[i]
		if p.Consumed || pos.Dist(p.Position) > p.Radius {
			continue
		}
		if r.Consume(i) {
			eaten = append(eaten, *p)
		}
	}
	return eaten
}
