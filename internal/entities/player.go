package entities

import (
	"image/color"

	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/maze"
)

var PlayerColor = color.RGBA{R: 255, G: 221, B: 0, A: 255}

type Player struct {
	Actor
	// Queued is the turn waiting for the next arrival.
	Queued geom.Direction
	Lives  int
	Score  int
	Spawn  maze.NodeID
}

func NewPlayer(g *maze.Graph, spawn maze.NodeID, speed, radius float64, lives int) *Player {
	p := &Player{
		Actor:  newActor(g, spawn, speed, radius, false),
		Queued: geom.DirNone,
		Lives:  lives,
		Spawn:  spawn,
	}
	p.Name = "pacman"
	p.Color = PlayerColor
	return p
}

// Steer handles a direction request. At a node the request is checked against the current
// node and takes effect at once; mid-edge it is checked against the target node and queued.
// Requests that lead into a wall are ignored.
func (p *Player) Steer(d geom.Direction) {
	if d == geom.DirNone {
		return
	}
	if p.Reached() || p.AtNode() {
		if p.CanLeave(p.Current, d) {
			p.Direction = d
			p.Queued = geom.DirNone
		}
		return
	}
	if p.CanLeave(p.Target(), d) {
		p.Queued = d
	}
}

// Update advances the player by dt seconds.
func (p *Player) Update(dt float64) {
	if p.step(dt) {
		p.commitQueued()
		return
	}
	if p.Queued != geom.DirNone && geom.IsReverse(p.Direction, p.Queued) {
		if p.reverse() {
			p.Queued = geom.DirNone
		}
	}
}

func (p *Player) commitQueued() {
	if p.Queued == geom.DirNone {
		return
	}
	if p.CanLeave(p.Current, p.Queued) {
		p.Direction = p.Queued
	}
	p.Queued = geom.DirNone
}

// Eat consumes every pellet the player is touching and returns them. Score is awarded once
// per pellet.
func (p *Player) Eat(r *PelletRegistry, s Scoring) []Pellet {
	eaten := r.ConsumeAt(p.Position)
	for _, pl := range eaten {
		p.Score += s.PelletPoints(pl.Kind)
	}
	return eaten
}

// LoseLife takes a life and sends the player back to its spawn node.
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
	p.Respawn()
}

func (p *Player) Respawn() {
	p.placeAt(p.Spawn)
	p.Queued = geom.DirNone
}

func (p *Player) Alive() bool { return p.Lives > 0 }
