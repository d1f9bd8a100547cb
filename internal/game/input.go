package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/curer13/mazechase/internal/geom"
)

var directionKeys = []struct {
	keys []ebiten.Key
	dir  geom.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, geom.DirUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, geom.DirDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, geom.DirLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, geom.DirRight},
}

// keyDirection maps the held keys to a direction. The first match in UP, DOWN, LEFT, RIGHT
// order wins.
func keyDirection(pressed func(ebiten.Key) bool) geom.Direction {
	for _, b := range directionKeys {
		for _, k := range b.keys {
			if pressed(k) {
				return b.dir
			}
		}
	}
	return geom.DirNone
}

// validNameRune limits names to what the HUD font can draw.
func validNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' || r == '_' || r == '-'
}

func (g *Game) handleInput() {
	// Allow fullscreen and quitting from every screen
	if inpututil.IsKeyJustPressed(ebiten.KeyF) && !g.enteringName {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
		return
	}

	if g.enteringName {
		g.handleNameEntry()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		// First Q ends the session and shows the board, the second one exits
		if g.showingLeaderboard {
			g.quit = true
			return
		}
		g.finish()
		g.showLeaderboard()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggleLeaderboard()
		return
	}
	if g.showingLeaderboard {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.cfg.Display.ShowGraph = !g.cfg.Display.ShowGraph
	}
	if g.paused {
		return
	}
	if d := keyDirection(ebiten.IsKeyPressed); d != geom.DirNone {
		g.world.Steer(d)
	}
}

func (g *Game) handleNameEntry() {
	var chars []rune
	chars = ebiten.AppendInputChars(chars)
	for _, r := range chars {
		if len([]rune(g.playerName)) >= maxNameLen {
			break
		}
		if validNameRune(r) {
			g.playerName += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		rs := []rune(g.playerName)
		if len(rs) > 0 {
			g.playerName = string(rs[:len(rs)-1])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		if len([]rune(g.playerName)) > 0 {
			g.enteringName = false
		}
	}
}
