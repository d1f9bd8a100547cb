package level

import (
	"github.com/curer13/mazechase/internal/entities"
	"github.com/curer13/mazechase/internal/maze"
)

const (
	pelletSmall = '.'
	pelletBig   = 'o'
)

// ParsePellets reads a pellet grid. Any character other than a pellet mark is empty space.
func ParsePellets(text string) []entities.PelletSpec {
	var specs []entities.PelletSpec
	for y, row := range grid(text) {
		for x, r := range row {
			c := maze.Coord{X: x, Y: y}
			switch r {
			case pelletSmall:
				specs = append(specs, entities.PelletSpec{Coord: c, Kind: entities.PelletSmall})
			case pelletBig:
				specs = append(specs, entities.PelletSpec{Coord: c, Kind: entities.PelletBig})
			}
		}
	}
	return specs
}
