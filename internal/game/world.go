package game

import (
	"image/color"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/curer13/mazechase/internal/config"
	"github.com/curer13/mazechase/internal/entities"
	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/level"
	"github.com/curer13/mazechase/internal/maze"
)

type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "running"
	}
}

// EventKind tells the host what happened during a tick.
type EventKind int

const (
	EventPellet EventKind = iota
	EventPowerPellet
	EventGhostEaten
	EventLifeLost
	EventWon
	EventLost
)

func (k EventKind) String() string {
	switch k {
	case EventPellet:
		return "pellet"
	case EventPowerPellet:
		return "power-pellet"
	case EventGhostEaten:
		return "ghost-eaten"
	case EventLifeLost:
		return "life-lost"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	}
	return "unknown"
}

type Event struct {
	Kind EventKind
	// Actor names the ghost involved, if any.
	Actor  string
	Points int
	At     geom.Vector2
}

// mover is anything the world advances once per tick.
type mover interface {
	Update(dt float64)
}

// World is one play session: the maze, its actors and pellets, and the score. It has no
// knowledge of rendering, audio or input devices.
type World struct {
	graph   *maze.Graph
	width   int
	height  int
	player  *entities.Player
	ghosts  []*entities.Ghost
	actors  []mover
	pellets *entities.PelletRegistry
	scoring entities.Scoring

	collisionFactor float64
	frightenTicks   int

	tick    int
	combo   int
	outcome Outcome
	log     *log.Entry
}

// NewWorld sets up a session on lvl. rng drives every ghost decision; logger may be nil.
func NewWorld(cfg *config.Config, lvl *level.Level, rng *rand.Rand, logger *log.Entry) *World {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	g := lvl.Graph
	cell := cfg.Engine.CellSize

	player := entities.NewPlayer(g, lvl.Spawn, cfg.Units(cfg.Player.Speed), cfg.Player.Radius, cfg.Player.Lives)
	player.Tolerance = cfg.Engine.ReachTolerance

	tuning := entities.GhostTuning{
		Speed:             cfg.Units(cfg.Ghost.Speed),
		RegularSpeed:      cfg.Ghost.RegularSpeed,
		FrightenSpeed:     cfg.Ghost.FrightenSpeed,
		EatenSpeed:        cfg.Ghost.EatenSpeed,
		FrightenTicks:     cfg.Ghost.FrightenTicks,
		GreedyChance:      cfg.Ghost.GreedyChance,
		Noise:             float64(cfg.Ghost.NoiseCells) * cell,
		ReverseOnFrighten: cfg.Ghost.ReverseOnFrighten,
		NoReverse:         cfg.Ghost.NoReverse,
	}

	w := &World{
		graph:   g,
		width:   lvl.Width,
		height:  lvl.Height,
		player:  player,
		pellets: entities.NewPelletRegistry(lvl.Pellets, cell, cfg.Pellets.SmallRadius, cfg.Pellets.BigRadius),
		scoring: entities.Scoring{
			Small:     cfg.Scoring.Small,
			Big:       cfg.Scoring.Big,
			GhostBase: cfg.Scoring.GhostBase,
			GhostMax:  cfg.Scoring.GhostMax,
		},
		collisionFactor: cfg.Engine.CollisionFactor,
		frightenTicks:   cfg.Ghost.FrightenTicks,
		log:             logger,
	}
	w.actors = append(w.actors, player)
	for i, start := range lvl.Starts {
		gh := entities.NewGhost(i, g, start, lvl.Home, cfg.Ghost.Radius, tuning, rng)
		gh.Tolerance = cfg.Engine.ReachTolerance
		w.ghosts = append(w.ghosts, gh)
		w.actors = append(w.actors, gh)
	}

	w.log.WithFields(log.Fields{
		"nodes":   g.Len(),
		"pellets": w.pellets.Len(),
		"ghosts":  len(w.ghosts),
	}).Info("session started")
	return w
}

// Steer forwards a direction request to the player.
func (w *World) Steer(d geom.Direction) {
	if w.outcome != OutcomeRunning {
		return
	}
	w.player.Steer(d)
}

// Update runs one tick of dt seconds and returns what happened in it. Once the session is
// over it does nothing.
func (w *World) Update(dt float64) []Event {
	if w.outcome != OutcomeRunning {
		return nil
	}
	w.tick++

	for _, gh := range w.ghosts {
		gh.Chase(w.player.Position)
	}
	for _, a := range w.actors {
		a.Update(dt)
	}

	var events []Event
	events = w.consume(events)
	events = w.collide(events)
	return w.settle(events)
}

func (w *World) consume(events []Event) []Event {
	for _, p := range w.player.Eat(w.pellets, w.scoring) {
		if p.Kind != entities.PelletBig {
			events = append(events, Event{Kind: EventPellet, Points: w.scoring.Small, At: p.Position})
			continue
		}
		w.combo = 0
		frightened := 0
		for _, gh := range w.ghosts {
			gh.Apply(entities.EventPowerPellet)
			if gh.Mode == entities.ModeFrighten {
				frightened++
			}
		}
		w.log.WithFields(log.Fields{"tick": w.tick, "frightened": frightened}).Debug("power pellet")
		events = append(events, Event{Kind: EventPowerPellet, Points: w.scoring.Big, At: p.Position})
	}
	return events
}

// collide resolves player and ghost contacts. A regular ghost ends the check for this tick.
func (w *World) collide(events []Event) []Event {
	for _, gh := range w.ghosts {
		if !entities.Collides(&w.player.Actor, &gh.Actor, w.collisionFactor) {
			continue
		}
		switch gh.Mode {
		case entities.ModeRegular:
			at := w.player.Position
			w.player.LoseLife()
			w.log.WithFields(log.Fields{
				"tick":  w.tick,
				"ghost": gh.Name,
				"lives": w.player.Lives,
			}).Info("life lost")
			return append(events, Event{Kind: EventLifeLost, Actor: gh.Name, At: at})
		case entities.ModeFrighten:
			gh.Apply(entities.EventEatenByPlayer)
			points := w.scoring.GhostPoints(w.combo)
			w.combo++
			w.player.Score += points
			w.log.WithFields(log.Fields{
				"tick":   w.tick,
				"ghost":  gh.Name,
				"points": points,
			}).Debug("ghost eaten")
			events = append(events, Event{Kind: EventGhostEaten, Actor: gh.Name, Points: points, At: gh.Position})
		}
	}
	return events
}

// settle checks for the end of the session.
func (w *World) settle(events []Event) []Event {
	switch {
	case w.pellets.Remaining() == 0:
		w.outcome = OutcomeWon
		events = append(events, Event{Kind: EventWon})
	case !w.player.Alive():
		w.outcome = OutcomeLost
		events = append(events, Event{Kind: EventLost})
	default:
		return events
	}
	w.log.WithFields(log.Fields{
		"tick":    w.tick,
		"score":   w.player.Score,
		"outcome": w.outcome,
	}).Info("session over")
	return events
}

func (w *World) Outcome() Outcome { return w.outcome }

func (w *World) Score() int { return w.player.Score }

func (w *World) Tick() int { return w.tick }

func (w *World) Graph() *maze.Graph { return w.graph }

// ActorView is the drawable state of one actor.
type ActorView struct {
	Name      string
	Color     color.RGBA
	Position  geom.Vector2
	Radius    float64
	Direction geom.Direction
	Mode      entities.GhostMode
	ModeTimer int
}

// Snapshot is a copy of the world for the renderer.
type Snapshot struct {
	Tick    int
	Score   int
	Lives   int
	Outcome Outcome
	Player  ActorView
	Ghosts  []ActorView
	Pellets []entities.Pellet
	Nodes   []maze.Node
	// FrightenTicks is the full length of a frighten period.
	FrightenTicks int
	CellSize      float64
	Width         int
	Height        int
}

func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          w.tick,
		Score:         w.player.Score,
		Lives:         w.player.Lives,
		Outcome:       w.outcome,
		Player:        actorView(&w.player.Actor),
		Pellets:       w.pellets.Pellets(),
		Nodes:         w.graph.Nodes(),
		FrightenTicks: w.frightenTicks,
		CellSize:      w.graph.CellSize(),
		Width:         w.width,
		Height:        w.height,
	}
	s.Ghosts = make([]ActorView, 0, len(w.ghosts))
	for _, gh := range w.ghosts {
		v := actorView(&gh.Actor)
		v.Mode = gh.Mode
		v.ModeTimer = gh.ModeTimer
		s.Ghosts = append(s.Ghosts, v)
	}
	return s
}

func actorView(a *entities.Actor) ActorView {
	return ActorView{
		Name:      a.Name,
		Color:     a.Color,
		Position:  a.Position,
		Radius:    a.Radius,
		Direction: a.Direction,
	}
}
