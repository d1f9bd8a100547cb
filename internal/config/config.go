// Package config holds the tunable constants of a session and loads them from YAML.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Engine  Engine  `yaml:"engine"`
	Player  Player  `yaml:"player"`
	Ghost   Ghost   `yaml:"ghost"`
	Pellets Pellets `yaml:"pellets"`
	Scoring Scoring `yaml:"scoring"`
	Level   Level   `yaml:"level"`
	Log     Log     `yaml:"log"`
	Display Display `yaml:"display"`
}

type Engine struct {
	// CellSize is the distance in units between two adjacent grid cells.
	CellSize float64 `yaml:"cell_size"`
	// TPS is the number of ticks per second.
	TPS             int     `yaml:"tps"`
	ReachTolerance  float64 `yaml:"reach_tolerance"`
	CollisionFactor float64 `yaml:"collision_factor"`
	// Seed feeds the ghost random source. Zero picks a seed from the clock.
	Seed int64 `yaml:"seed"`
}

type Player struct {
	// Speed in cells per second.
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
	Lives  int     `yaml:"lives"`
}

type Ghost struct {
	// Speed in cells per second, scaled by the multiplier of the current mode.
	Speed             float64 `yaml:"speed"`
	Radius            float64 `yaml:"radius"`
	RegularSpeed      float64 `yaml:"regular_speed"`
	FrightenSpeed     float64 `yaml:"frighten_speed"`
	EatenSpeed        float64 `yaml:"eaten_speed"`
	FrightenTicks     int     `yaml:"frighten_ticks"`
	GreedyChance      float64 `yaml:"greedy_chance"`
	NoiseCells        int     `yaml:"noise_cells"`
	ReverseOnFrighten bool    `yaml:"reverse_on_frighten"`
	NoReverse         bool    `yaml:"no_reverse"`
}

type Pellets struct {
	SmallRadius float64 `yaml:"small_radius"`
	BigRadius   float64 `yaml:"big_radius"`
}

type Scoring struct {
	Small     int `yaml:"small"`
	Big       int `yaml:"big"`
	GhostBase int `yaml:"ghost_base"`
	GhostMax  int `yaml:"ghost_max"`
}

// Level points at the maze and pellet files. Empty paths select the built-in level.
type Level struct {
	MazeFile   string `yaml:"maze_file"`
	PelletFile string `yaml:"pellet_file"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Display struct {
	Scale      float64 `yaml:"scale"`
	ShowGraph  bool    `yaml:"show_graph"`
	PlayerName string  `yaml:"player_name"`
	Audio      bool    `yaml:"audio"`
}

func Default() *Config {
	return &Config{
		Engine: Engine{
			CellSize:        16,
			TPS:             60,
			ReachTolerance:  1e-6,
			CollisionFactor: 1.5,
		},
		Player: Player{Speed: 8, Radius: 6, Lives: 3},
		Ghost: Ghost{
			Speed:             7,
			Radius:            6,
			RegularSpeed:      1,
			FrightenSpeed:     0.5,
			EatenSpeed:        2,
			FrightenTicks:     360,
			GreedyChance:      0.5,
			NoiseCells:        2,
			ReverseOnFrighten: true,
			NoReverse:         true,
		},
		Pellets: Pellets{SmallRadius: 3, BigRadius: 6},
		Scoring: Scoring{Small: 10, Big: 50, GhostBase: 200, GhostMax: 1600},
		Log:     Log{Level: "info"},
		Display: Display{Scale: 2},
	}
}

// Load reads path over the defaults. An empty path returns the defaults. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document leaves the defaults in place.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Engine.CellSize <= 0:
		return errors.New("engine.cell_size must be positive")
	case c.Engine.TPS <= 0:
		return errors.New("engine.tps must be positive")
	case c.Engine.ReachTolerance < 0:
		return errors.New("engine.reach_tolerance must not be negative")
	case c.Engine.CollisionFactor <= 0:
		return errors.New("engine.collision_factor must be positive")
	case c.Player.Speed <= 0 || c.Ghost.Speed <= 0:
		return errors.New("player.speed and ghost.speed must be positive")
	case c.Player.Lives <= 0:
		return errors.New("player.lives must be positive")
	case c.Player.Radius <= 0 || c.Ghost.Radius <= 0:
		return errors.New("actor radius must be positive")
	case c.Ghost.RegularSpeed <= 0 || c.Ghost.FrightenSpeed <= 0 || c.Ghost.EatenSpeed <= 0:
		return errors.New("ghost speed multipliers must be positive")
	case c.Ghost.FrightenTicks <= 0:
		return errors.New("ghost.frighten_ticks must be positive")
	case c.Ghost.GreedyChance < 0 || c.Ghost.GreedyChance > 1:
		return errors.Errorf("ghost.greedy_chance %v is outside [0,1]", c.Ghost.GreedyChance)
	case c.Ghost.NoiseCells < 0:
		return errors.New("ghost.noise_cells must not be negative")
	case c.Pellets.SmallRadius <= 0 || c.Pellets.BigRadius <= 0:
		return errors.New("pellet radius must be positive")
	case c.Scoring.Small < 0 || c.Scoring.Big < 0 || c.Scoring.GhostBase < 0 || c.Scoring.GhostMax < 0:
		return errors.New("scores must not be negative")
	case c.Display.Scale <= 0:
		return errors.New("display.scale must be positive")
	}
	return nil
}

// Units converts a speed in cells per second to units per second.
func (c *Config) Units(cellsPerSecond float64) float64 {
	return cellsPerSecond * c.Engine.CellSize
}

// TickDuration is the simulated time of one tick in seconds.
func (c *Config) TickDuration() float64 {
	return 1 / float64(c.Engine.TPS)
}
