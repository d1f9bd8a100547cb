// Package game runs a maze-chase session. World is the engine; Game hosts it in Ebiten and
// adds input, drawing, audio and the leaderboard.
package game

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/curer13/mazechase/internal/config"
	"github.com/curer13/mazechase/internal/level"
)

const (
	hudHeight  = 16
	maxNameLen = 12
	boardSize  = 10
	pulseTime  = 0.4
	pulseLow   = 0.6
)

type Game struct {
	cfg    *config.Config
	world  *World
	audio  *AudioManager
	scores *Scoreboard
	log    *log.Entry

	highScore          int
	highScoreName      string
	board              []HighScoreRecord
	playerName         string
	enteringName       bool
	showingLeaderboard bool
	saved              bool
	fullscreen         bool
	paused             bool
	quit               bool
	scale              float64

	// big pellets breathe between pulseLow and 1
	pulse      *gween.Tween
	pulseValue float32
	pulseUp    bool

	off *ebiten.Image
}

// New builds a host around a fresh World. scores may be nil to disable persistence.
func New(cfg *config.Config, lvl *level.Level, rng *rand.Rand, logger *log.Entry, scores *Scoreboard) *Game {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	g := &Game{
		cfg:        cfg,
		world:      NewWorld(cfg, lvl, rng, logger),
		audio:      NewAudioManager("", cfg.Display.Audio),
		scores:     scores,
		log:        logger,
		playerName: cfg.Display.PlayerName,
		scale:      cfg.Display.Scale,
		pulseValue: 1,
	}
	g.enteringName = g.playerName == ""
	g.pulse = gween.New(1, pulseLow, pulseTime, ease.InOutQuad)

	if scores != nil {
		if rec := scores.Best(); rec != nil {
			g.highScore = rec.Score
			g.highScoreName = rec.Name
		}
	}
	return g
}

func (g *Game) World() *World { return g.world }

func (g *Game) nativeWidth() int {
	return int(float64(g.world.width+1) * g.world.graph.CellSize())
}

func (g *Game) nativeHeight() int {
	return int(float64(g.world.height+1)*g.world.graph.CellSize()) + hudHeight
}

func (g *Game) ScreenWidth() int {
	return int(float64(g.nativeWidth()) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(g.nativeHeight()) * g.scale)
}

func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		g.finish()
		return ebiten.Termination
	}
	if g.showingLeaderboard || g.enteringName {
		return nil
	}
	g.animate()
	if g.paused {
		return nil
	}

	events := g.world.Update(g.cfg.TickDuration())
	g.audio.Play(events)
	if score := g.world.Score(); score > g.highScore {
		g.highScore = score
		g.highScoreName = g.playerName
	}
	if g.world.Outcome() != OutcomeRunning {
		g.finish()
		g.showLeaderboard()
	}
	return nil
}

// animate advances the pellet pulse by one tick.
func (g *Game) animate() {
	v, done := g.pulse.Update(float32(g.cfg.TickDuration()))
	g.pulseValue = v
	if !done {
		return
	}
	g.pulseUp = !g.pulseUp
	if g.pulseUp {
		g.pulse = gween.New(pulseLow, 1, pulseTime, ease.InOutQuad)
	} else {
		g.pulse = gween.New(1, pulseLow, pulseTime, ease.InOutQuad)
	}
}

// finish persists the session score once.
func (g *Game) finish() {
	if g.saved || g.scores == nil {
		return
	}
	g.saved = true
	score := g.world.Score()
	if score == 0 {
		return
	}
	rec := HighScoreRecord{Name: g.playerName, Score: score}
	if err := g.scores.Save(rec); err != nil {
		g.log.WithError(err).Warn("could not save high score")
		return
	}
	g.log.WithFields(log.Fields{"name": rec.Name, "score": rec.Score}).Info("score saved")
}

func (g *Game) showLeaderboard() {
	g.showingLeaderboard = true
	if g.scores != nil {
		g.board = g.scores.Top(boardSize)
	}
}

// toggleLeaderboard flips the board during play. A finished or quit session keeps it open.
func (g *Game) toggleLeaderboard() {
	if g.saved || g.world.Outcome() != OutcomeRunning {
		return
	}
	if g.showingLeaderboard {
		g.showingLeaderboard = false
		return
	}
	g.showLeaderboard()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}
