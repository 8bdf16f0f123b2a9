// Package astrobreak drives a match: it moves the ship and drone, runs the
// session checks in order, turns events into popups and sound cues, feeds
// gameplay tension to the effect director and renders the result.
package astrobreak

import (
	"fmt"

	"github.com/vovakirdan/astrobreak/internal/config"
	"github.com/vovakirdan/astrobreak/internal/core"
	"github.com/vovakirdan/astrobreak/internal/effects"
	"github.com/vovakirdan/astrobreak/internal/entity"
	"github.com/vovakirdan/astrobreak/internal/session"
)

// Popup lifetime and drift, in ticks and canvas units per tick.
const (
	PopupTTL   = 45
	PopupDrift = 0.6
)

// Minimum terminal size the playfield needs.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// CueWall is sent when the drone bounces off a wall. Every other cue is
// named after the session event that caused it.
const CueWall = "wall"

// CueSink receives sound cues. Playback is the embedding's job.
type CueSink interface {
	Cue(name string)
}

// Popup is a short-lived score label drawn where an asteroid died.
type Popup struct {
	Text  string
	X, Y  float64
	TTL   int
	Color string
}

// Game is one player's astrobreak instance.
type Game struct {
	cfg     config.AstrobreakConfig
	runtime core.RuntimeConfig

	session    *session.GameSession
	director   *effects.Director
	difficulty *config.DifficultyManager

	field *entity.Field
	ship  *entity.Ship
	drone *entity.Drone
	stars *Starfield

	level     int // Last intensity level sent to the director
	tickCount int // Ticks spent playing
	frame     int // Steps taken in any state
	events    []session.Event
	popups    []Popup
	cues      CueSink

	screenTooSmall bool
}

// New creates a game from a loaded configuration. Call Reset before Step.
func New(cfg config.AstrobreakConfig) *Game {
	return &Game{cfg: cfg}
}

// SetCueSink routes sound cues to s. Nil disables cues.
func (g *Game) SetCueSink(s CueSink) {
	g.cues = s
}

// Reset initializes the game in the menu with a fresh field.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	g.session = session.New(session.Config{
		Canvas: session.Canvas{Height: g.cfg.Canvas.Height},
		Lives:  g.cfg.Gameplay.Lives,
	})
	g.director = effects.NewWithRate(g.cfg.Effects.Rate)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.stars = NewStarfield(runtime.Seed, starCount, g.cfg.Canvas.Width, g.cfg.Canvas.Height)

	g.level = effects.LevelCalm
	g.tickCount = 0
	g.frame = 0
	g.events = g.events[:0]
	g.popups = g.popups[:0]

	g.newRound()
}

// Resize adapts to a new terminal size without restarting the match.
// The simulation runs in canvas units, so only the viewport changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// newRound lays out a fresh field, ship and drone.
func (g *Game) newRound() {
	c := g.cfg
	g.field = entity.NewField(entity.FieldLayout{
		CanvasWidth: c.Canvas.Width,
		Rows:        c.Field.Rows,
		Cols:        c.Field.Cols,
		Top:         c.Field.Top,
		RowHeight:   c.Field.RowHeight,
		Gap:         c.Field.Gap,
		Palette:     c.Field.Palette,
	})
	g.ship = &entity.Ship{
		X:      (c.Canvas.Width - c.Ship.Width) / 2,
		Y:      c.Canvas.Height - c.Ship.BottomOffset,
		Width:  c.Ship.Width,
		Height: c.Ship.Height,
		Speed:  c.Ship.Speed,
	}
	g.drone = entity.NewDrone(c.Drone.Radius, c.Drone.Speed, g.ship)
	g.popups = g.popups[:0]
	g.tickCount = 0
}

// start begins a fresh match.
func (g *Game) start() {
	g.session.Start()
	g.newRound()
	g.cue("start")
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	g.frame++

	g.handleInput(in)

	if g.session.State() == session.StatePlaying {
		g.tickCount++
		g.updateShip(in)
		g.updateDrone()
		g.updatePopups()
	}

	// The backdrop keeps drifting on the title and result screens
	if g.session.State() != session.StatePaused {
		g.stars.Advance(g.director.Effects().StarSpeed)
	}
	g.updateIntensity()
	g.director.Update()

	return core.StepResult{State: g.State()}
}

// handleInput applies state transitions requested this tick.
func (g *Game) handleInput(in core.InputFrame) {
	state := g.session.State()

	switch {
	case in.Has(core.ActionBack) && state != session.StateMenu:
		g.session.BackToMenu()
	case in.Has(core.ActionConfirm) && state == session.StateMenu:
		g.start()
	case in.Has(core.ActionRestart) && (state == session.StateGameOver || state == session.StateWon):
		g.start()
	case in.Has(core.ActionPause):
		if state == session.StatePaused {
			g.session.Resume()
		} else {
			g.session.Pause()
		}
	}
}

// updateShip steers the ship.
func (g *Game) updateShip(in core.InputFrame) {
	dir := entity.DirNone
	if in.Has(core.ActionLeft) {
		dir += entity.DirLeft
	}
	if in.Has(core.ActionRight) {
		dir += entity.DirRight
	}
	g.ship.Move(dir, g.cfg.Canvas.Width)
}

// updateDrone moves the drone and runs the session checks in order:
// ship, asteroid, lost, win. A ship bounce skips the asteroid check for
// the tick, and the win check only runs while the match is still live.
func (g *Game) updateDrone() {
	g.scaleDroneSpeed(g.difficulty.Speed(g.cfg.Drone.Speed, g.session.Score(), g.tickCount))

	d := g.drone
	d.Move()
	if d.BounceWalls(g.cfg.Canvas.Width) {
		g.cue(CueWall)
	}

	bounced := false
	if ev := g.session.CheckShipCollision(d, g.ship); ev != nil {
		g.emit(ev)
		bounced = true
	}
	if !bounced {
		if ev := g.session.CheckAsteroidCollision(d, g.field); ev != nil {
			g.emit(ev)
		}
	}
	if ev := g.session.CheckDroneLost(d, g.ship); ev != nil {
		g.emit(ev)
	}
	if g.session.State() == session.StatePlaying {
		if ev := g.session.CheckWin(g.field); ev != nil {
			g.emit(ev)
		}
	}
}

// scaleDroneSpeed keeps the drone's direction while changing its speed.
func (g *Game) scaleDroneSpeed(speed float64) {
	d := g.drone
	if speed <= 0 || speed == d.Speed {
		return
	}
	if d.Speed > 0 {
		k := speed / d.Speed
		d.DX *= k
		d.DY *= k
	}
	d.Speed = speed
}

// emit records an event and turns it into side effects.
func (g *Game) emit(ev session.Event) {
	g.events = append(g.events, ev)

	switch e := ev.(type) {
	case session.AsteroidHit:
		g.addPopup(e.Points, e.X, e.Y, e.Color)
	case session.AsteroidFragment:
		g.addPopup(e.Points, e.X, e.Y, e.Color)
	}

	g.cue(string(ev.Type()))
}

func (g *Game) addPopup(points int, x, y float64, color string) {
	g.popups = append(g.popups, Popup{
		Text:  fmt.Sprintf("+%d", points),
		X:     x,
		Y:     y,
		TTL:   PopupTTL,
		Color: color,
	})
}

// updatePopups ages popups and drops expired ones.
func (g *Game) updatePopups() {
	alive := g.popups[:0]
	for _, p := range g.popups {
		p.TTL--
		if p.TTL <= 0 {
			continue
		}
		p.Y -= PopupDrift
		alive = append(alive, p)
	}
	g.popups = alive
}

// updateIntensity sends the tension level to the director when it changes.
func (g *Game) updateIntensity() {
	level := IntensityLevel(g.session.State(), g.field.Progress(), g.field.Remaining(), g.session.Lives())
	if level != g.level {
		g.level = level
		g.director.SetIntensity(level)
	}
}

func (g *Game) cue(name string) {
	if g.cues != nil {
		g.cues.Cue(name)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Phase:    string(st),
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		GameOver: st == session.StateGameOver || st == session.StateWon,
		Won:      st == session.StateWon,
		Paused:   st == session.StatePaused,
	}
}

// Events returns the events emitted during the last Step.
// The slice is reused by the next Step.
func (g *Game) Events() []session.Event {
	return g.events
}

// Popups returns the live score popups.
func (g *Game) Popups() []Popup {
	return g.popups
}

// Session returns the match state machine.
func (g *Game) Session() *session.GameSession { return g.session }

// Director returns the effect director.
func (g *Game) Director() *effects.Director { return g.director }

// Field returns the asteroid field.
func (g *Game) Field() *entity.Field { return g.field }

// Ship returns the player's ship.
func (g *Game) Ship() *entity.Ship { return g.ship }

// Drone returns the drone.
func (g *Game) Drone() *entity.Drone { return g.drone }

// StateName returns the session state as a string.
func (g *Game) StateName() string { return string(g.session.State()) }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.session.Lives() }

// Score returns the current score.
func (g *Game) Score() int { return g.session.Score() }

// Remaining returns the number of asteroids left.
func (g *Game) Remaining() int { return g.field.Remaining() }

// IntensityLevel returns the level last sent to the director.
func (g *Game) IntensityLevel() int { return g.level }

// ForceWin clears the field. The win check fires on the next playing tick.
func (g *Game) ForceWin() { g.field.ForceClear() }
