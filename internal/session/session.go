// Package session implements the match state machine of astrobreak: lives,
// score, and the per-tick collision and outcome checks.
//
// A GameSession never owns entities. Each check borrows the drone, ship or
// field for the duration of the call and writes only the fields listed in
// its doc comment. There is no I/O, no clock and no package state, so the
// same inputs always produce the same outputs.
package session

import "github.com/vovakirdan/astrobreak/internal/entity"

// State is the match state.
type State string

const (
	StateMenu     State = "menu"
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateGameOver State = "gameOver"
	StateWon      State = "won"
)

// Point awards per asteroid size.
const (
	PointsLarge  = 40
	PointsMedium = 20
	PointsSmall  = 10
)

// Canvas holds the playfield dimensions the session cares about.
type Canvas struct {
	Height float64
}

// Config is the construction-time configuration of a session.
type Config struct {
	Canvas Canvas
	Lives  int // Values below 1 are raised to 1
}

// Field is the asteroid field as seen by the session.
type Field interface {
	// Cells returns the grid in stored order. Order is the hit tie-break.
	Cells() []*entity.Asteroid
	// Remaining returns how many asteroids are left in play.
	Remaining() int
	// Fragment splits a destroyed asteroid at the impact point and returns
	// the new fragments, or none for the smallest size.
	Fragment(a *entity.Asteroid, x, y float64) []*entity.Asteroid
}

// GameSession tracks one player's match.
type GameSession struct {
	state        State
	lives        int
	score        int
	maxLives     int
	canvasHeight float64
}

// New creates a session in the menu state.
func New(cfg Config) *GameSession {
	lives := max(cfg.Lives, 1)
	return &GameSession{
		state:        StateMenu,
		lives:        lives,
		maxLives:     lives,
		canvasHeight: cfg.Canvas.Height,
	}
}

// State returns the current match state.
func (s *GameSession) State() State { return s.state }

// Lives returns the remaining lives.
func (s *GameSession) Lives() int { return s.lives }

// Score returns the current score.
func (s *GameSession) Score() int { return s.score }

// MaxLives returns the configured life count.
func (s *GameSession) MaxLives() int { return s.maxLives }

// CanvasHeight returns the configured canvas height.
func (s *GameSession) CanvasHeight() float64 { return s.canvasHeight }

// Start begins a fresh match from any state.
func (s *GameSession) Start() {
	s.lives = s.maxLives
	s.score = 0
	s.state = StatePlaying
}

// Pause pauses a running match. No-op in any other state.
func (s *GameSession) Pause() {
	if s.state == StatePlaying {
		s.state = StatePaused
	}
}

// Resume continues a paused match. No-op in any other state.
func (s *GameSession) Resume() {
	if s.state == StatePaused {
		s.state = StatePlaying
	}
}

// BackToMenu returns to the menu from any state.
func (s *GameSession) BackToMenu() {
	s.state = StateMenu
}

// CheckShipCollision bounces a falling drone off the ship. The horizontal
// velocity is steered by where on the ship the drone lands: left edge sends
// it left, right edge right, center straight up. A ship without width
// bounces the drone straight up.
//
// Writes: d.DX, d.DY.
func (s *GameSession) CheckShipCollision(d *entity.Drone, ship *entity.Ship) Event {
	if d.DY <= 0 {
		return nil
	}
	if d.Y+d.Radius < ship.Y {
		return nil
	}
	if d.X < ship.X || d.X > ship.X+ship.Width {
		return nil
	}

	hit := 0.5
	if ship.Width > 0 {
		hit = (d.X - ship.X) / ship.Width
	}
	d.DY = -d.DY
	d.DX = d.Speed * (hit - 0.5) * 2

	return Bounce{}
}

// CheckAsteroidCollision resolves the first alive asteroid, in grid order,
// that overlaps the drone's bounding box. At most one asteroid is resolved
// per call.
//
// Writes: d.DY, the asteroid's Alive flag, and the field (via Fragment).
func (s *GameSession) CheckAsteroidCollision(d *entity.Drone, f Field) Event {
	for _, a := range f.Cells() {
		if !a.Alive || !overlaps(d, a) {
			continue
		}

		d.DY = -d.DY

		points := PointsFor(a.Size)
		s.score += points

		a.Alive = false
		x, y := a.Center()
		frags := f.Fragment(a, d.X, d.Y)

		if anyAlive(frags) {
			return AsteroidFragment{Points: points, X: x, Y: y, Color: a.Color, Fragments: frags}
		}
		return AsteroidHit{Points: points, X: x, Y: y, Color: a.Color, Fragments: []*entity.Asteroid{}}
	}

	return nil
}

// CheckDroneLost takes a life once the drone has fallen fully below the
// canvas. The last life ends the match and leaves the drone where it is;
// otherwise the drone is put back on the ship.
//
// Writes: lives, state, and the drone's position and velocity (via Reset).
func (s *GameSession) CheckDroneLost(d *entity.Drone, ship *entity.Ship) Event {
	if d.Y-d.Radius <= s.canvasHeight {
		return nil
	}

	s.lives--
	if s.lives <= 0 {
		s.state = StateGameOver
		return GameOver{}
	}

	d.Reset(ship)
	return LoseLife{LivesLeft: s.lives}
}

// CheckWin ends the match as won once no asteroids remain.
//
// Writes: state.
func (s *GameSession) CheckWin(f Field) Event {
	if f.Remaining() != 0 {
		return nil
	}
	s.state = StateWon
	return Win{}
}

// PointsFor returns the award for destroying an asteroid of the given size.
func PointsFor(size entity.Size) int {
	switch size {
	case entity.SizeLarge:
		return PointsLarge
	case entity.SizeMedium:
		return PointsMedium
	case entity.SizeSmall:
		return PointsSmall
	default:
		return 0
	}
}

func anyAlive(as []*entity.Asteroid) bool {
	for _, a := range as {
		if a.Alive {
			return true
		}
	}
	return false
}

// overlaps tests the drone's bounding box against the asteroid's rectangle.
func overlaps(d *entity.Drone, a *entity.Asteroid) bool {
	return d.X+d.Radius > a.X &&
		d.X-d.Radius < a.X+a.Width &&
		d.Y+d.Radius > a.Y &&
		d.Y-d.Radius < a.Y+a.Height
}
