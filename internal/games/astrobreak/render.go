package astrobreak

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/astrobreak/internal/core"
	"github.com/vovakirdan/astrobreak/internal/effects"
	"github.com/vovakirdan/astrobreak/internal/entity"
	"github.com/vovakirdan/astrobreak/internal/session"
)

// Visual characters for rendering
const (
	ShipChar      = '='
	DroneChar     = '●'
	StarChar      = '·'
	VignetteChar  = '░'
	DeathLineChar = '─'
	LifeChar      = '♥'
)

// Colors for elements the effects don't drive.
const (
	ShipColor  = "#00d4ff"
	DroneColor = "#ffffff"
	HUDColor   = "#a0a0b0"
)

// vignetteBase is the edge color with no vignette applied.
var vignetteBase = colorful.Color{R: 0.08, G: 0.08, B: 0.12}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	fx := g.director.Effects()

	// Row 0 is the HUD, the rest is the canvas
	vp := core.NewViewport(g.cfg.Canvas.Width, g.cfg.Canvas.Height,
		core.NewRect(0, 1, dst.Width(), dst.Height()-1))
	shake := shakeOffset(fx.MicroShake, g.frame)

	g.renderStars(dst, vp)
	g.renderVignette(dst, vp, fx)
	g.renderDeathLine(dst, vp, fx)
	g.renderField(dst, vp, shake)
	g.renderShip(dst, vp, shake)
	g.renderDrone(dst, vp, shake)
	g.renderPopups(dst, vp, shake)
	g.renderHUD(dst, fx)
	g.renderOverlay(dst)
}

// renderStars draws the scrolling background.
func (g *Game) renderStars(dst *core.Screen, vp core.Viewport) {
	for _, s := range g.stars.Stars {
		x, y := vp.ToCell(s.X, s.Y)
		dst.SetColored(x, y, StarChar, starColor(s.Depth))
	}
}

// renderVignette tints the left and right edges of the playfield.
func (g *Game) renderVignette(dst *core.Screen, vp core.Viewport, fx effects.Effects) {
	if fx.VignetteAlpha < 0.01 {
		return
	}
	color := vignetteColor(fx)
	r := vp.Region
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColored(r.X, y, VignetteChar, color)
		dst.SetColored(r.Right()-1, y, VignetteChar, color)
	}
}

// renderDeathLine draws the line the drone must not cross.
func (g *Game) renderDeathLine(dst *core.Screen, vp core.Viewport, fx effects.Effects) {
	_, y := vp.ToCell(0, g.cfg.Canvas.Height)
	y = min(y, vp.Region.Bottom()-1)
	dst.DrawHLine(vp.Region.X, y, vp.Region.W, DeathLineChar, deathLineColor(fx))
}

// renderField draws every alive asteroid, glyph by size.
func (g *Game) renderField(dst *core.Screen, vp core.Viewport, shake int) {
	for _, a := range g.field.Cells() {
		if !a.Alive {
			continue
		}
		x, y := vp.ToCell(a.X, a.Y)
		w := vp.SpanX(a.Width)
		h := vp.SpanY(a.Height)
		dst.DrawRect(core.NewRect(x+shake, y, w, h), asteroidGlyph(a.Size), a.Color)
	}
}

// renderShip draws the player's ship.
func (g *Game) renderShip(dst *core.Screen, vp core.Viewport, shake int) {
	x, y := vp.ToCell(g.ship.X, g.ship.Y)
	dst.DrawHLine(x+shake, y, vp.SpanX(g.ship.Width), ShipChar, ShipColor)
}

// renderDrone draws the drone unless it has left the canvas.
func (g *Game) renderDrone(dst *core.Screen, vp core.Viewport, shake int) {
	if g.drone.Y-g.drone.Radius > g.cfg.Canvas.Height {
		return
	}
	x, y := vp.ToCell(g.drone.X, g.drone.Y)
	dst.SetColored(x+shake, y, DroneChar, DroneColor)
}

// renderPopups draws floating score labels.
func (g *Game) renderPopups(dst *core.Screen, vp core.Viewport, shake int) {
	for _, p := range g.popups {
		x, y := vp.ToCell(p.X, p.Y)
		dst.DrawTextColored(x+shake-len(p.Text)/2, y, p.Text, p.Color)
	}
}

// renderHUD draws score, remaining asteroids and lives.
func (g *Game) renderHUD(dst *core.Screen, fx effects.Effects) {
	score := fmt.Sprintf("SCORE %d", g.session.Score())
	for i, r := range score {
		dst.SetCell(1+i, 0, core.Cell{Rune: r, Color: fx.ScoreColor, Bold: fx.ScoreGlow > 0})
	}

	remaining := fmt.Sprintf("ASTEROIDS %d", g.field.Remaining())
	dst.DrawTextColored((dst.Width()-len(remaining))/2, 0, remaining, HUDColor)

	lives := strings.Repeat(string(LifeChar), max(0, g.session.Lives()))
	dst.DrawTextColored(dst.Width()-g.session.Lives()-1, 0, lives, "#ff5e7e")
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.session.State() {
	case session.StateMenu:
		g.drawCenteredBox(dst, "A S T R O B R E A K", "Press ENTER to launch")

	case session.StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case session.StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case session.StateWon:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.session.Score())
		g.drawCenteredBox(dst, "FIELD CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', "")
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

func asteroidGlyph(s entity.Size) rune {
	switch s {
	case entity.SizeLarge:
		return '█'
	case entity.SizeMedium:
		return '▓'
	default:
		return '▒'
	}
}

// shakeOffset turns the shake amplitude into a whole-cell jitter.
func shakeOffset(amplitude float64, frame int) int {
	if amplitude <= 0 {
		return 0
	}
	return int(math.Round(amplitude * math.Sin(float64(frame)*2.3)))
}

// rgb converts a 0..255 triple to a color.
func rgb(v [3]float64) colorful.Color {
	return colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}.Clamped()
}

// vignetteColor blends the edge base toward the vignette hue.
func vignetteColor(fx effects.Effects) string {
	t := core.ClampF(fx.VignetteAlpha*4, 0, 1)
	return vignetteBase.BlendRgb(rgb(fx.VignetteHue), t).Clamped().Hex()
}

// deathLineColor brightens the death line toward white by its glow.
func deathLineColor(fx effects.Effects) string {
	t := core.ClampF(fx.DeathLineGlow*2, 0, 1)
	white := colorful.Color{R: 1, G: 1, B: 1}
	return rgb(fx.DeathLine).BlendRgb(white, t).Clamped().Hex()
}

// starColor dims far stars.
func starColor(depth float64) string {
	v := core.ClampF(0.3+0.6*depth, 0, 1)
	return colorful.Color{R: v, G: v, B: v * 1.05}.Clamped().Hex()
}
