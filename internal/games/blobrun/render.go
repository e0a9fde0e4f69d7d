package blobrun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blobrun/internal/actor"
	"github.com/vovakirdan/blobrun/internal/core"
)

// Parallax factors: how fast each backdrop layer scrolls relative to the
// camera.
const (
	BackdropFactor = 0.1
	TreesFactor    = 0.3
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Visual characters for rendering
const (
	GroundChar = '█'
	FloorChar  = '▀'
	LiftChar   = '═'
	PlayerChar = '●'
	EnemyLeft  = '◀'
	EnemyRight = '▶'
	StarChar   = '.'
	TreeChar   = '♣'
)

// groundGlyphs are the decorative ground variants.
var groundGlyphs = [...]rune{'█', '▓', '▒', '█', '▙', '▟', '▓'}

// Backdrop layers repeat these strips.
var (
	starStrip = []rune("  .      *        .   .          +     .       .    ")
	treeStrip = []rune("  ♣♣   ♣     ♣♣♣      ♣    ♣♣         ♣   ♣♣♣   ♣    ")
)

// viewSize returns the playfield size in world pixels.
func (g *Game) viewSize() (w, h float64) {
	rows := max(g.runtime.ScreenH-hudRows, 1)
	return float64(g.runtime.ScreenW) * g.cfg.Render.CellWidth, float64(rows) * g.cfg.Render.CellHeight
}

// updateCamera centers the view on the player, clamped to the world.
func (g *Game) updateCamera() {
	vw, vh := g.viewSize()
	c := g.player.Body.Center()
	b := g.world.Bounds

	g.camera.X = core.ClampF(c.X-vw/2, 0, math.Max(b.W-vw, 0))
	g.camera.Y = core.ClampF(c.Y-vh/2, 0, math.Max(b.H-vh, 0))
}

// Camera returns the top-left corner of the view in world pixels.
func (g *Game) Camera() core.Vec2 {
	return g.camera
}

// ParallaxOffsets returns the horizontal pixel offsets of the two backdrop
// layers for the current camera.
func (g *Game) ParallaxOffsets() (backdrop, trees float64) {
	return -(g.camera.X * BackdropFactor), -(g.camera.X * TreesFactor)
}

// toScreen converts a world point to a screen cell.
func (g *Game) toScreen(x, y float64) (int, int) {
	cx := int(math.Floor((x - g.camera.X) / g.cfg.Render.CellWidth))
	cy := int(math.Floor((y-g.camera.Y)/g.cfg.Render.CellHeight)) + hudRows
	return cx, cy
}

// fillBox paints every cell a world box covers, at least one cell.
func (g *Game) fillBox(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0 := g.toScreen(r.X, r.Y)
	x1, y1 := g.toScreen(r.Right()-1, r.Bottom()-1)
	for y := y0; y <= y1; y++ {
		if y < hudRows {
			continue
		}
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawBackdrop(dst)
	g.drawTiles(dst)

	for _, l := range g.lifts {
		color := core.ColorCyan
		if l.Carrying {
			color = core.ColorBrightCyan
		}
		g.fillBox(dst, l.Bounds(), LiftChar, color)
	}

	for _, e := range g.enemies {
		ch := EnemyRight
		if e.Facing == actor.FacingLeft {
			ch = EnemyLeft
		}
		g.fillBox(dst, e.Body.Bounds(), ch, core.ColorBrightRed)
	}

	playerColor := core.ColorBrightYellow
	if g.gameOver {
		playerColor = core.ColorGray
	}
	c := g.player.Body.Center()
	px, py := g.toScreen(c.X, c.Y)
	dst.SetColored(px, py, PlayerChar, playerColor)

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "CAUGHT!", fmt.Sprintf("Survived %s  |  Press R to restart", formatScore(g.score)))
	}
}

// drawBackdrop draws the two parallax layers behind the level.
func (g *Game) drawBackdrop(dst *core.Screen) {
	bgOff, treeOff := g.ParallaxOffsets()
	cw := g.cfg.Render.CellWidth
	w, h := dst.Width(), dst.Height()

	for x := 0; x < w; x++ {
		// Stars across the upper half.
		i := stripIndex(float64(x)*cw-bgOff, cw, len(starStrip))
		for y := hudRows; y < h/2; y += 3 {
			j := (i + y*7) % len(starStrip)
			if starStrip[j] != ' ' {
				dst.SetColored(x, y, starStrip[j], core.ColorGray)
			}
		}

		// One row of trees above the bottom edge of the view.
		k := stripIndex(float64(x)*cw-treeOff, cw, len(treeStrip))
		if treeStrip[k] != ' ' && h > hudRows+2 {
			dst.SetColored(x, h-2, TreeChar, core.ColorGreen)
		}
	}
}

func stripIndex(u, cellW float64, n int) int {
	i := int(math.Floor(u/cellW)) % n
	if i < 0 {
		i += n
	}
	return i
}

// drawTiles draws every visible tile.
func (g *Game) drawTiles(dst *core.Screen) {
	grid := g.level.Grid
	ts := grid.TileSize()
	vw, vh := g.viewSize()
	ground := g.level.Params.LowestY()

	c0 := max(int(g.camera.X/ts), 0)
	c1 := min(int((g.camera.X+vw)/ts), grid.Cols()-1)

	for _, y := range grid.RowYs() {
		if y+ts < g.camera.Y || y > g.camera.Y+vh {
			continue
		}
		// A tile is one cell row high on screen, the row holding its middle.
		_, sy := g.toScreen(0, y+ts/2)
		if sy < hudRows {
			continue
		}
		for col := c0; col <= c1; col++ {
			if !grid.Solid(col, y) {
				continue
			}
			x := float64(col) * ts
			x0, _ := g.toScreen(x, y)
			x1, _ := g.toScreen(x+ts-1, y)

			ch, color := FloorChar, core.ColorGreen
			if y == ground {
				ch, color = g.groundGlyph(col), core.ColorBrown
			}
			dst.DrawHLine(x0, sy, x1-x0+1, ch, color)
		}
	}
}

// groundGlyph returns the glyph for ground column col. Ground tiles sit in
// the first pool slots in column order.
func (g *Game) groundGlyph(col int) rune {
	if !g.level.Params.DecorateGround || col >= g.level.Pool.Cap() {
		return GroundChar
	}
	t := g.level.Pool.Tile(col)
	if !t.Active || !t.Ground {
		return GroundChar
	}
	return groundGlyphs[t.Variant%len(groundGlyphs)]
}

// drawHUD draws the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, g.Title(), core.ColorBrightCyan)

	status := fmt.Sprintf("Time: %s  Enemies: %d", formatScore(g.score), len(g.enemies))
	if g.player.Locked {
		status += "  [LIFT]"
	}
	dst.DrawText(len(g.Title())+3, 0, status)
}

// formatScore renders tenths of a second as seconds.
func formatScore(score int) string {
	return fmt.Sprintf("%d.%ds", score/10, score%10)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
