package main

import (
	"flag"

	"github.com/curer13/mazechase/internal/config"
)

// Command-line flags. Every flag except -config overrides the matching config value, and only
// when it is given.
var (
	// configFlag points at a YAML file laid over the built-in defaults.
	configFlag = flag.String("config", "", "path to a YAML config file")

	seedFlag = flag.Int64("seed", 0, "ghost random seed (0 picks one from the clock)")

	// mazeFlag and pelletsFlag replace the built-in level.
	mazeFlag    = flag.String("maze", "", "maze description file")
	pelletsFlag = flag.String("pellets", "", "pellet description file")

	// debugFlag draws the waypoint graph and turns on debug logging.
	debugFlag = flag.Bool("debug", false, "draw the waypoint graph and log at debug level")

	nameFlag = flag.String("name", "", "player name for the leaderboard (skips the prompt)")
)

// applyFlags copies the flags the user set onto cfg.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Engine.Seed = *seedFlag
		case "maze":
			cfg.Level.MazeFile = *mazeFlag
		case "pellets":
			cfg.Level.PelletFile = *pelletsFlag
		case "debug":
			cfg.Display.ShowGraph = *debugFlag
			if *debugFlag {
				cfg.Log.Level = "debug"
			}
		case "name":
			cfg.Display.PlayerName = *nameFlag
		}
	})
}
