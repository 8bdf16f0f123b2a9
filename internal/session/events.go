package session

import "github.com/vovakirdan/astrobreak/internal/entity"

// EventType is the tag consumers switch on (audio, particles, HUD).
type EventType string

const (
	EventBounce           EventType = "bounce"
	EventAsteroidHit      EventType = "asteroidHit"
	EventAsteroidFragment EventType = "asteroidFragment"
	EventLoseLife         EventType = "loseLife"
	EventGameOver         EventType = "gameOver"
	EventWin              EventType = "win"
)

// Event is the closed set of outcomes a per-tick check can report.
type Event interface {
	Type() EventType
	sessionEvent()
}

// Bounce is emitted when the drone comes off the ship.
type Bounce struct{}

func (Bounce) Type() EventType { return EventBounce }
func (Bounce) sessionEvent()   {}

// AsteroidHit is emitted when an asteroid is destroyed without leaving
// fragments. Fragments is always empty.
type AsteroidHit struct {
	Points    int
	X, Y      float64 // Center of the destroyed asteroid
	Color     string
	Fragments []*entity.Asteroid
}

func (AsteroidHit) Type() EventType { return EventAsteroidHit }
func (AsteroidHit) sessionEvent()   {}

// AsteroidFragment is emitted when a hit asteroid breaks into smaller ones.
type AsteroidFragment struct {
	Points    int
	X, Y      float64
	Color     string
	Fragments []*entity.Asteroid
}

func (AsteroidFragment) Type() EventType { return EventAsteroidFragment }
func (AsteroidFragment) sessionEvent()   {}

// LoseLife is emitted when the drone is lost but lives remain.
type LoseLife struct {
	LivesLeft int
}

func (LoseLife) Type() EventType { return EventLoseLife }
func (LoseLife) sessionEvent()   {}

// GameOver is emitted when the last life is lost.
type GameOver struct{}

func (GameOver) Type() EventType { return EventGameOver }
func (GameOver) sessionEvent()   {}

// Win is emitted when the field is cleared.
type Win struct{}

func (Win) Type() EventType { return EventWin }
func (Win) sessionEvent()   {}
