package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/curer13/mazechase/internal/entities"
	"github.com/curer13/mazechase/internal/geom"
	"github.com/curer13/mazechase/internal/maze"
)

var (
	wallBlue     = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	doorPink     = color.RGBA{R: 255, G: 184, B: 222, A: 255}
	pelletColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	frightBlue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	frightWhite  = color.RGBA{R: 222, G: 222, B: 255, A: 255}
	graphGreen   = color.RGBA{R: 0, G: 255, B: 128, A: 255}
	portalOrange = color.RGBA{R: 255, G: 160, B: 0, A: 255}
	hintGrey     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	titleGold    = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	timerCyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// glyphWidth is the advance of basicfont.Face7x13.
const glyphWidth = 7

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Draw at native resolution then scale up
	nw, nh := g.nativeWidth(), g.nativeHeight()
	if g.off == nil {
		g.off = ebiten.NewImage(nw, nh)
	}
	off := g.off
	off.Clear()

	s := g.world.Snapshot()
	origin := geom.Vector2{X: s.CellSize / 2, Y: s.CellSize/2 + hudHeight}

	drawCorridors(off, s, origin)
	if g.cfg.Display.ShowGraph {
		drawGraph(off, s, origin)
	}
	drawPellets(off, s, origin, g.pulseValue)
	drawPlayer(off, s.Player, origin)
	for _, gh := range s.Ghosts {
		drawGhost(off, gh, origin, s.Tick, g.cfg.Engine.TPS)
	}
	g.drawHUD(off, s, nw, nh)

	if g.enteringName {
		prompt := "Enter name: " + g.playerName + "_"
		centerText(off, prompt, nw, nh/2, color.White)
	}
	if g.showingLeaderboard {
		g.drawLeaderboard(off, s, nw, nh)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)
}

func at(origin, p geom.Vector2) (float32, float32) {
	q := origin.Add(p)
	return float32(q.X), float32(q.Y)
}

// drawCorridors strokes every link once. Links touching a ghost-only node form the house.
func drawCorridors(dst *ebiten.Image, s Snapshot, origin geom.Vector2) {
	width := float32(s.CellSize * 0.8)
	for _, n := range s.Nodes {
		for _, d := range []geom.Direction{geom.DirRight, geom.DirDown} {
			to := n.Neighbour(d)
			if to == maze.NoNode {
				continue
			}
			m := s.Nodes[to]
			c := wallBlue
			if n.GhostOnly || m.GhostOnly {
				c = doorPink
			}
			x0, y0 := at(origin, n.Position)
			x1, y1 := at(origin, m.Position)
			vector.StrokeLine(dst, x0, y0, x1, y1, width, c, false)
			vector.DrawFilledCircle(dst, x0, y0, width/2, c, true)
			vector.DrawFilledCircle(dst, x1, y1, width/2, c, true)
		}
	}
	// Carve the floor so the blue band reads as two walls
	for _, n := range s.Nodes {
		for _, d := range []geom.Direction{geom.DirRight, geom.DirDown} {
			to := n.Neighbour(d)
			if to == maze.NoNode {
				continue
			}
			x0, y0 := at(origin, n.Position)
			x1, y1 := at(origin, s.Nodes[to].Position)
			vector.StrokeLine(dst, x0, y0, x1, y1, width-2, color.Black, false)
		}
	}
}

// drawGraph overlays the waypoint graph: nodes, links and the portal pairing.
func drawGraph(dst *ebiten.Image, s Snapshot, origin geom.Vector2) {
	for _, n := range s.Nodes {
		x, y := at(origin, n.Position)
		for _, d := range geom.Directions {
			to := n.Neighbour(d)
			if to == maze.NoNode {
				continue
			}
			x1, y1 := at(origin, s.Nodes[to].Position)
			vector.StrokeLine(dst, x, y, x1, y1, 1, graphGreen, false)
		}
		c := graphGreen
		if n.Kind == maze.KindPortal {
			c = portalOrange
			px, py := at(origin, s.Nodes[n.Pair].Position)
			vector.StrokeLine(dst, x, y, px, py, 1, portalOrange, false)
		}
		vector.DrawFilledCircle(dst, x, y, 2, c, true)
	}
}

func drawPellets(dst *ebiten.Image, s Snapshot, origin geom.Vector2, pulse float32) {
	for _, p := range s.Pellets {
		if p.Consumed {
			continue
		}
		x, y := at(origin, p.Position)
		r := float32(p.Radius)
		if p.Kind == entities.PelletBig {
			r *= pulse
		} else {
			// small pellets read better smaller than their pickup radius
			r /= 2
		}
		vector.DrawFilledCircle(dst, x, y, r, pelletColor, true)
	}
}

func drawPlayer(dst *ebiten.Image, p ActorView, origin geom.Vector2) {
	x, y := at(origin, p.Position)
	r := float32(p.Radius)
	vector.DrawFilledCircle(dst, x, y, r, p.Color, true)
	if p.Direction == geom.DirNone {
		return
	}
	// mouth
	v := p.Direction.Vector()
	vector.StrokeLine(dst, x, y, x+float32(v.X)*r, y+float32(v.Y)*r, r/2, color.Black, true)
}

func drawGhost(dst *ebiten.Image, gh ActorView, origin geom.Vector2, tick, tps int) {
	x, y := at(origin, gh.Position)
	r := float32(gh.Radius)
	switch gh.Mode {
	case entities.ModeEaten:
		// eyes only
	case entities.ModeFrighten:
		c := frightBlue
		// blink during the last two seconds
		if gh.ModeTimer < 2*tps && (tick/8)%2 == 0 {
			c = frightWhite
		}
		vector.DrawFilledCircle(dst, x, y, r, c, true)
		return
	default:
		vector.DrawFilledCircle(dst, x, y, r, gh.Color, true)
	}
	v := gh.Direction.Vector()
	for _, side := range []float32{-1, 1} {
		ex, ey := x+side*r/2.5, y-r/4
		vector.DrawFilledCircle(dst, ex, ey, r/3.5, color.White, true)
		vector.DrawFilledCircle(dst, ex+float32(v.X)*r/8, ey+float32(v.Y)*r/8, r/7, frightBlue, true)
	}
}

func (g *Game) drawHUD(dst *ebiten.Image, s Snapshot, nw, nh int) {
	hiLabel := "High"
	if g.highScoreName != "" {
		hiLabel = fmt.Sprintf("High(%s)", g.highScoreName)
	}
	name := g.playerName
	if name == "" {
		name = "Player"
	}
	line := fmt.Sprintf("%s  Score: %d  %s: %d  Lives: %d", name, s.Score, hiLabel, g.highScore, s.Lives)
	if g.paused {
		line += "  PAUSED"
	}
	text.Draw(dst, line, basicfont.Face7x13, 4, 12, color.White)

	// Frighten timer in the bottom right corner
	left := 0
	for _, gh := range s.Ghosts {
		if gh.Mode == entities.ModeFrighten && gh.ModeTimer > left {
			left = gh.ModeTimer
		}
	}
	if left > 0 {
		timer := fmt.Sprintf("Frightened: %.1fs", float64(left)/float64(g.cfg.Engine.TPS))
		text.Draw(dst, timer, basicfont.Face7x13, nw-len(timer)*glyphWidth-4, nh-4, timerCyan)
	}
}

func (g *Game) drawLeaderboard(dst *ebiten.Image, s Snapshot, nw, nh int) {
	y := nh/2 - 40
	switch s.Outcome {
	case OutcomeWon:
		centerText(dst, "YOU WIN!", nw, y-20, titleGold)
	case OutcomeLost:
		centerText(dst, "GAME OVER", nw, y-20, color.RGBA{R: 255, A: 255})
	}
	centerText(dst, "High Scores", nw, y, titleGold)
	y += 14
	for i, rec := range g.board {
		centerText(dst, fmt.Sprintf("%2d. %-12s  %6d", i+1, rec.Name, rec.Score), nw, y, color.White)
		y += 14
	}
	centerText(dst, "Press Q to exit", nw, nh-8, hintGrey)
}

func centerText(dst *ebiten.Image, s string, nw, y int, c color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, (nw-len(s)*glyphWidth)/2, y, c)
}
