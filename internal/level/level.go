// Package level loads maze and pellet descriptions.
//
// A maze is drawn on a character grid. Markers are nodes: '+' regular, 'P' portal, 'S' the
// player spawn, 'n' ghost-only, 'H' the ghost home and 'G' a ghost start (both ghost-only).
// '-' links the markers at both ends of a run on a row and '|' does the same on a column;
// markers that touch are linked directly. The pellet grid is drawn over the same cells with
// '.' for small pellets and 'o' for big ones.
package level

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"

	"github.com/curer13/mazechase/internal/entities"
)

var (
	//go:embed default/maze.txt
	defaultMaze string
	//go:embed default/pellets.txt
	defaultPellets string
)

// Level is a maze together with its pellets.
type Level struct {
	*Layout
	Pellets []entities.PelletSpec
}

// Default returns the embedded level.
func Default(cellSize float64) (*Level, error) {
	return Parse(defaultMaze, defaultPellets, cellSize)
}

// Load reads a level from disk. An empty path selects the embedded description for that part.
func Load(mazePath, pelletPath string, cellSize float64) (*Level, error) {
	mazeText, err := readOr(mazePath, defaultMaze)
	if err != nil {
		return nil, errors.Wrapf(err, "read maze %s", mazePath)
	}
	pelletText, err := readOr(pelletPath, defaultPellets)
	if err != nil {
		return nil, errors.Wrapf(err, "read pellets %s", pelletPath)
	}
	lvl, err := Parse(mazeText, pelletText, cellSize)
	if err != nil {
		return nil, errors.Wrapf(err, "load level %q", mazePath)
	}
	return lvl, nil
}

// Parse builds a level from its two text descriptions. Pellets outside the maze grid are an
// error.
func Parse(mazeText, pelletText string, cellSize float64) (*Level, error) {
	lay, err := ParseMaze(mazeText, cellSize)
	if err != nil {
		return nil, err
	}
	pellets := ParsePellets(pelletText)
	for _, p := range pellets {
		if p.Coord.X >= lay.Width || p.Coord.Y >= lay.Height {
			return nil, errors.Errorf("pellet at (%d,%d) is outside the %dx%d maze", p.Coord.X, p.Coord.Y, lay.Width, lay.Height)
		}
	}
	return &Level{Layout: lay, Pellets: pellets}, nil
}

func readOr(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
