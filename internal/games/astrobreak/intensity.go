package astrobreak

import (
	"github.com/vovakirdan/astrobreak/internal/effects"
	"github.com/vovakirdan/astrobreak/internal/session"
)

// ClimaxRemaining is the asteroid count at or below which a live match
// goes straight to the climax preset.
const ClimaxRemaining = 3

// IntensityLevel maps gameplay tension to an effect preset level.
// progress is the cleared fraction of the field in [0, 1].
func IntensityLevel(state session.State, progress float64, remaining, lives int) int {
	if state != session.StatePlaying && state != session.StatePaused {
		return effects.LevelCalm
	}
	if remaining <= ClimaxRemaining {
		return effects.LevelClimax
	}

	var level int
	switch {
	case progress < 0.25:
		level = effects.LevelCalm
	case progress < 0.50:
		level = effects.LevelCruise
	case progress < 0.80:
		level = effects.LevelAction
	default:
		level = effects.LevelIntense
	}

	if lives == 1 {
		level++
	}

	return min(level, effects.LevelClimax)
}
