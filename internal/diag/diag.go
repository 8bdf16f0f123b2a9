// Package diag exposes a process-wide diagnostic handle on the running
// game and the developer flags read at startup.
//
// The handle lets tooling (the dev panel overlay, tests, the SSH server
// logs) inspect the match and force a win without reaching into the
// game's internals.
package diag

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Target is the running game as seen by diagnostics.
type Target interface {
	StateName() string
	Lives() int
	Remaining() int
	Score() int
	IntensityLevel() int
	// ForceWin clears the field so the next tick's win check fires.
	ForceWin()
}

// Handle wraps a Target.
type Handle struct {
	target Target
}

// NewHandle creates a handle for a game.
func NewHandle(t Target) *Handle {
	return &Handle{target: t}
}

// State returns the current match state.
func (h *Handle) State() string { return h.target.StateName() }

// Lives returns the remaining lives.
func (h *Handle) Lives() int { return h.target.Lives() }

// Remaining returns the number of asteroids left.
func (h *Handle) Remaining() int { return h.target.Remaining() }

// ForceWin ends the match as won on the next tick.
func (h *Handle) ForceWin() { h.target.ForceWin() }

// Report captures the handle's values at one instant.
func (h *Handle) Report() Report {
	return Report{
		State:     h.target.StateName(),
		Lives:     h.target.Lives(),
		Remaining: h.target.Remaining(),
		Score:     h.target.Score(),
		Level:     h.target.IntensityLevel(),
	}
}

// Report is a plain snapshot for display.
type Report struct {
	State     string
	Lives     int
	Remaining int
	Score     int
	Level     int
}

// String formats the report as a single status line.
func (r Report) String() string {
	return fmt.Sprintf("state=%s lives=%d remaining=%d score=%d level=%d",
		r.State, r.Lives, r.Remaining, r.Score, r.Level)
}

var (
	mu      sync.RWMutex
	current *Handle
)

// Publish makes h the process-wide handle. Passing nil withdraws it.
func Publish(h *Handle) {
	mu.Lock()
	defer mu.Unlock()
	current = h
}

// Current returns the published handle, or nil.
func Current() *Handle {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Flags are the developer switches read once at startup.
type Flags struct {
	DevPanel bool
	MusicLab bool
}

// ParseFlags reads devPanel and musicLab from a URL query string such as
// "devPanel=1&musicLab". A leading '?' is allowed. A flag is on when it is
// present with no value, or with value "1" or "true".
func ParseFlags(rawQuery string) (Flags, error) {
	q, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return Flags{}, fmt.Errorf("diag: invalid query %q: %w", rawQuery, err)
	}
	return Flags{
		DevPanel: flagOn(q, "devPanel"),
		MusicLab: flagOn(q, "musicLab"),
	}, nil
}

func flagOn(q url.Values, name string) bool {
	if !q.Has(name) {
		return false
	}
	switch strings.ToLower(q.Get(name)) {
	case "", "1", "true":
		return true
	default:
		return false
	}
}
