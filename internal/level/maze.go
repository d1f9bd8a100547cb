package level

import (
	"strings"

	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/maze"
)

// Maze markers. Every marker is a node; connectors link the markers at both of their ends.
const (
	markRegular   = '+'
	markPortal    = 'P'
	markSpawn     = 'S'
	markGhostOnly = 'n'
	markHome      = 'H'
	markGhost     = 'G'

	connRow    = '-'
	connColumn = '|'
)

// Layout is a parsed maze description.
type Layout struct {
	Graph  *maze.Graph
	Spawn  maze.NodeID
	Home   maze.NodeID
	Starts []maze.NodeID
	Width  int
	Height int
}

// grid splits text into equal-width rows. Trailing blank lines are dropped and short rows
// are padded with spaces.
func grid(text string) [][]rune {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	rows := make([][]rune, len(lines))
	for y, l := range lines {
		row := []rune(l)
		for len(row) < width {
			row = append(row, ' ')
		}
		rows[y] = row
	}
	return rows
}

func isMarker(r rune) bool {
	switch r {
	case markRegular, markPortal, markSpawn, markGhostOnly, markHome, markGhost:
		return true
	}
	return false
}

// ParseMaze builds the waypoint graph described by text.
func ParseMaze(text string, cellSize float64) (*Layout, error) {
	rows := grid(text)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &maze.MalformedMazeError{Reason: "empty maze"}
	}
	lay := &Layout{
		Spawn:  maze.NoNode,
		Home:   maze.NoNode,
		Width:  len(rows[0]),
		Height: len(rows),
	}

	b := maze.NewBuilder(cellSize)
	var spawn, home *maze.Coord
	var starts []maze.Coord
	for y, row := range rows {
		for x, r := range row {
			if !isMarker(r) {
				continue
			}
			c := maze.Coord{X: x, Y: y}
			spec := maze.NodeSpec{Coord: c}
			switch r {
			case markPortal:
				spec.Kind = maze.KindPortal
			case markSpawn:
				if spawn != nil {
					return nil, &maze.MalformedMazeError{Reason: "second player spawn", At: &c}
				}
				spawn = &c
			case markHome:
				if home != nil {
					return nil, &maze.MalformedMazeError{Reason: "second ghost home", At: &c}
				}
				home = &c
				spec.GhostOnly = true
			case markGhost:
				starts = append(starts, c)
				spec.GhostOnly = true
			case markGhostOnly:
				spec.GhostOnly = true
			}
			b.AddNode(spec)
		}
	}
	if spawn == nil {
		return nil, &maze.MalformedMazeError{Reason: "no player spawn"}
	}
	if home == nil {
		return nil, &maze.MalformedMazeError{Reason: "no ghost home"}
	}
	if len(starts) == 0 {
		return nil, &maze.MalformedMazeError{Reason: "no ghost start"}
	}

	if err := link(rows, b); err != nil {
		return nil, err
	}
	g, err := b.Build()
	if err != nil {
		return nil, err
	}

	lay.Graph = g
	lay.Spawn, _ = g.Lookup(*spawn)
	lay.Home, _ = g.Lookup(*home)
	for _, c := range starts {
		id, _ := g.Lookup(c)
		lay.Starts = append(lay.Starts, id)
	}
	return lay, nil
}

// link scans rows then columns. A connector run must start right after a marker and end on
// one.
func link(rows [][]rune, b *maze.Builder) error {
	w, h := len(rows[0]), len(rows)
	horizontal := func(i, line int) maze.Coord { return maze.Coord{X: i, Y: line} }
	if err := scan(rows, w, h, connRow, geom.DirRight, horizontal, b); err != nil {
		return err
	}
	vertical := func(i, line int) maze.Coord { return maze.Coord{X: line, Y: i} }
	return scan(rows, h, w, connColumn, geom.DirDown, vertical, b)
}

// scan walks lines of n cells each; coord maps a position on a line to a grid coordinate.
func scan(rows [][]rune, n, lines int, conn rune, d geom.Direction, coord func(i, line int) maze.Coord, b *maze.Builder) error {
	at := func(i, line int) rune {
		c := coord(i, line)
		return rows[c.Y][c.X]
	}
	for line := 0; line < lines; line++ {
		for i := 0; i < n; i++ {
			r := at(i, line)
			if r == conn {
				c := coord(i, line)
				return &maze.MalformedMazeError{Reason: "connector without a start marker", At: &c}
			}
			if !isMarker(r) || i+1 >= n {
				continue
			}
			next := at(i+1, line)
			if isMarker(next) {
				b.Connect(coord(i, line), coord(i+1, line), d)
				continue
			}
			if next != conn {
				continue
			}
			end := i + 1
			for end < n && at(end, line) == conn {
				end++
			}
			if end >= n || !isMarker(at(end, line)) {
				c := coord(i, line)
				return &maze.MalformedMazeError{Reason: "unterminated connector", At: &c}
			}
			b.Connect(coord(i, line), coord(end, line), d)
			// resume on the closing marker
			i = end - 1
		}
	}
	return nil
}
