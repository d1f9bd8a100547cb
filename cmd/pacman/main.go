package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/curer13/mazechase/internal/config"
	"github.com/curer13/mazechase/internal/game"
	"github.com/curer13/mazechase/internal/level"
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	applyFlags(cfg)
	setupLogging(cfg.Log)

	lvl, err := level.Load(cfg.Level.MazeFile, cfg.Level.PelletFile, cfg.Engine.CellSize)
	if err != nil {
		log.WithError(err).Fatal("load level")
	}

	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entry := log.WithFields(log.Fields{
		"session": uuid.NewString(),
		"seed":    seed,
	})

	scores, err := game.DefaultScoreboard()
	if err != nil {
		entry.WithError(err).Warn("high scores disabled")
		scores = nil
	}

	g := game.New(cfg, lvl, rand.New(rand.NewSource(seed)), entry, scores)
	ebiten.SetWindowTitle("Pacman (Go + Ebiten)")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	ebiten.SetTPS(cfg.Engine.TPS)
	if err := ebiten.RunGame(g); err != nil {
		entry.WithError(err).Fatal("game stopped")
	}
}

func setupLogging(c config.Log) {
	if c.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	lvl, err := log.ParseLevel(c.Level)
	if err != nil {
		log.WithField("level", c.Level).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
