package entities

import (
	"image/color"
	"math/rand"

	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/maze"
)

var (
	GhostColors = []color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},     // red
		{R: 255, G: 128, B: 255, A: 255}, // pink
		{R: 255, G: 128, B: 0, A: 255},   // orange
		{R: 0, G: 191, B: 255, A: 255},   // cyan
	}
	GhostNames = []string{"blinky", "pinky", "clyde", "inky"}
)

// GhostTuning holds the gameplay constants of the ghost AI.
type GhostTuning struct {
	// Speed is the base speed in units per second.
	Speed         float64
	RegularSpeed  float64
	FrightenSpeed float64
	EatenSpeed    float64
	FrightenTicks int
	// GreedyChance is the probability that a regular ghost steers toward its goal instead of
	// turning at random.
	GreedyChance float64
	// Noise is the largest goal offset in units.
	Noise             float64
	ReverseOnFrighten bool
	// NoReverse keeps a ghost from turning back except at a dead end.
	NoReverse bool
}

type Ghost struct {
	Actor
	Mode      GhostMode
	Goal      geom.Vector2
	ModeTimer int
	Home      maze.NodeID
	Start     maze.NodeID

	tuning GhostTuning
	noise  geom.Vector2
	rng    *rand.Rand
}

// NewGhost creates the i-th ghost of a session. All ghosts of a session share rng.
func NewGhost(i int, g *maze.Graph, start, home maze.NodeID, radius float64, t GhostTuning, rng *rand.Rand) *Ghost {
	gh := &Ghost{
		Actor:  newActor(g, start, t.Speed*t.RegularSpeed, radius, true),
		Mode:   ModeRegular,
		Home:   home,
		Start:  start,
		tuning: t,
		rng:    rng,
	}
	gh.Name = GhostNames[i%len(GhostNames)]
	gh.Color = GhostColors[i%len(GhostColors)]
	gh.Goal = gh.Position
	return gh
}

// Chase recomputes the goal from the player's position.
func (gh *Ghost) Chase(player geom.Vector2) {
	switch gh.Mode {
	case ModeEaten:
		gh.Goal = gh.graph.Node(gh.Home).Position
	default:
		gh.Goal = player.Add(gh.noise)
	}
}

// Apply feeds e to the state machine and reports whether the mode changed. A power pellet
// during FRIGHTEN restarts the timer without a mode change.
func (gh *Ghost) Apply(e ModeEvent) bool {
	next := NextMode(gh.Mode, e)
	if next == ModeFrighten && e == EventPowerPellet {
		gh.ModeTimer = gh.tuning.FrightenTicks
	}
	if next == gh.Mode {
		return false
	}
	prev := gh.Mode
	gh.Mode = next
	if next != ModeFrighten {
		gh.ModeTimer = 0
	}
	if next == ModeFrighten && prev == ModeRegular && gh.tuning.ReverseOnFrighten {
		gh.reverse()
	}
	gh.Speed = gh.tuning.Speed * gh.speedFactor()
	return true
}

func (gh *Ghost) speedFactor() float64 {
	switch gh.Mode {
	case ModeFrighten:
		return gh.tuning.FrightenSpeed
	case ModeEaten:
		return gh.tuning.EatenSpeed
	default:
		return gh.tuning.RegularSpeed
	}
}

// Update polls the frighten timer and advances the ghost by dt seconds. Directions are only
// chosen on arrival, or when the ghost is parked.
func (gh *Ghost) Update(dt float64) {
	if gh.Mode == ModeFrighten {
		gh.ModeTimer--
		if gh.ModeTimer <= 0 {
			gh.Apply(EventFrightenExpired)
		}
	}
	if gh.Target() == maze.NoNode {
		gh.onNode()
		return
	}
	if gh.step(dt) {
		gh.onNode()
	}
}

func (gh *Ghost) onNode() {
	if gh.Mode == ModeEaten && gh.Current == gh.Home {
		gh.Apply(EventReachedHome)
	}
	gh.rollNoise()
	gh.Direction = gh.choose()
}

func (gh *Ghost) choose() geom.Direction {
	candidates := gh.candidates()
	switch gh.Mode {
	case ModeFrighten:
		return RandomDirection(gh.rng, candidates)
	case ModeEaten:
		return GreedyDirection(gh.graph, gh.Current, candidates, gh.graph.Node(gh.Home).Position)
	default:
		if gh.rng.Float64() < gh.tuning.GreedyChance {
			return GreedyDirection(gh.graph, gh.Current, candidates, gh.Goal)
		}
		return RandomDirection(gh.rng, candidates)
	}
}

// candidates lists the exits of the current node. With NoReverse set, reversing is only allowed
// at a dead end. Only eaten ghosts may walk from the maze into ghost-only nodes.
func (gh *Ghost) candidates() []geom.Direction {
	here := gh.graph.Node(gh.Current)
	var out, back []geom.Direction
	for _, d := range gh.graph.ValidDirections(gh.Current, true) {
		to := gh.graph.Node(here.Neighbour(d))
		if to.GhostOnly && !here.GhostOnly && gh.Mode != ModeEaten {
			continue
		}
		if gh.tuning.NoReverse && geom.IsReverse(gh.Direction, d) {
			back = append(back, d)
			continue
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return back
	}
	return out
}

// rollNoise picks a new axis-aligned goal offset.
func (gh *Ghost) rollNoise() {
	cell := gh.graph.CellSize()
	steps := int(gh.tuning.Noise / cell)
	if steps <= 0 {
		gh.noise = geom.Vector2{}
		return
	}
	off := float64(gh.rng.Intn(2*steps+1)-steps) * cell
	if gh.rng.Intn(2) == 0 {
		gh.noise = geom.Vector2{X: off}
	} else {
		gh.noise = geom.Vector2{Y: off}
	}
}

// Threatening reports whether touching the ghost costs the player a life.
func (gh *Ghost) Threatening() bool { return gh.Mode == ModeRegular }
