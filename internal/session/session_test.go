package session

import (
	"math"
	"testing"

	"github.com/vovakirdan/astrobreak/internal/entity"
)

// stubField is a field whose Fragment returns a fixed set of pieces.
type stubField struct {
	cells     []*entity.Asteroid
	remaining int
	fragCalls int
	frags     []*entity.Asteroid
}

func (f *stubField) Cells() []*entity.Asteroid { return f.cells }
func (f *stubField) Remaining() int            { return f.remaining }

func (f *stubField) Fragment(a *entity.Asteroid, x, y float64) []*entity.Asteroid {
	f.fragCalls++
	f.remaining--
	return f.frags
}

func newTestSession() *GameSession {
	return New(Config{Canvas: Canvas{Height: 600}, Lives: 3})
}

func TestNewSessionStartsInMenu(t *testing.T) {
	s := newTestSession()

	if s.State() != StateMenu {
		t.Errorf("New session should be in menu, got %s", s.State())
	}
	if s.MaxLives() != 3 || s.CanvasHeight() != 600 {
		t.Errorf("Config not captured: maxLives=%d canvasHeight=%v", s.MaxLives(), s.CanvasHeight())
	}
}

func TestNonPositiveLivesRaisedToOne(t *testing.T) {
	for _, lives := range []int{0, -2} {
		s := New(Config{Canvas: Canvas{Height: 600}, Lives: lives})
		s.Start()
		if s.Lives() != 1 || s.MaxLives() != 1 {
			t.Errorf("Lives %d should be raised to 1, got lives=%d max=%d", lives, s.Lives(), s.MaxLives())
		}

		d := &entity.Drone{X: 50, Y: 700, DY: 4, Radius: 6, Speed: 5}
		ev := s.CheckDroneLost(d, &entity.Ship{X: 360, Y: 560, Width: 80})
		if _, ok := ev.(GameOver); !ok {
			t.Errorf("Losing the only life should end the match, got %#v", ev)
		}
		if s.Lives() != 0 {
			t.Errorf("Lives should stop at 0, got %d", s.Lives())
		}
	}
}

func TestStartResetsFromAnyState(t *testing.T) {
	prepare := map[string]func(s *GameSession){
		"menu":     func(s *GameSession) {},
		"playing":  func(s *GameSession) { s.Start() },
		"paused":   func(s *GameSession) { s.Start(); s.Pause() },
		"gameOver": func(s *GameSession) { s.Start(); s.state = StateGameOver; s.lives = 0 },
		"won":      func(s *GameSession) { s.Start(); s.state = StateWon; s.score = 900 },
	}

	for name, prep := range prepare {
		t.Run(name, func(t *testing.T) {
			s := newTestSession()
			prep(s)
			s.score = 123
			s.lives = 1

			s.Start()

			if s.State() != StatePlaying {
				t.Errorf("Start should set playing, got %s", s.State())
			}
			if s.Lives() != 3 {
				t.Errorf("Start should restore lives to 3, got %d", s.Lives())
			}
			if s.Score() != 0 {
				t.Errorf("Start should clear score, got %d", s.Score())
			}
		})
	}
}

func TestPauseResume(t *testing.T) {
	s := newTestSession()

	// Outside playing, pause is a no-op
	s.Pause()
	if s.State() != StateMenu {
		t.Errorf("Pause in menu should be a no-op, got %s", s.State())
	}

	s.Start()

	// Resume without pause is a no-op
	s.Resume()
	if s.State() != StatePlaying {
		t.Errorf("Resume while playing should be a no-op, got %s", s.State())
	}

	s.Pause()
	s.Pause()
	if s.State() != StatePaused {
		t.Errorf("Repeated pause should stay paused, got %s", s.State())
	}

	s.Resume()
	s.Resume()
	if s.State() != StatePlaying {
		t.Errorf("Pause then resume should return to playing, got %s", s.State())
	}

	s.state = StateGameOver
	s.Pause()
	s.Resume()
	if s.State() != StateGameOver {
		t.Errorf("Pause/resume after game over should be no-ops, got %s", s.State())
	}
}

func TestBackToMenu(t *testing.T) {
	for _, st := range []State{StateMenu, StatePlaying, StatePaused, StateGameOver, StateWon} {
		s := newTestSession()
		s.state = st
		s.BackToMenu()
		if s.State() != StateMenu {
			t.Errorf("BackToMenu from %s should reach menu, got %s", st, s.State())
		}
	}
}

func TestShipCollisionSteering(t *testing.T) {
	ship := &entity.Ship{X: 100, Y: 550, Width: 100}

	tests := []struct {
		name   string
		x      float64
		wantDX float64
	}{
		{"left edge", 100, -5},
		{"center", 150, 0},
		{"right edge", 200, 5},
		{"quarter", 125, -2.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession()
			s.Start()
			d := &entity.Drone{X: tc.x, Y: 545, DX: 1, DY: 4, Radius: 6, Speed: 5}

			ev := s.CheckShipCollision(d, ship)
			if ev == nil || ev.Type() != EventBounce {
				t.Fatalf("Expected bounce event, got %v", ev)
			}
			if d.DY != -4 {
				t.Errorf("DY should be reflected to -4, got %v", d.DY)
			}
			if math.Abs(d.DX-tc.wantDX) > 1e-9 {
				t.Errorf("DX should be %v, got %v", tc.wantDX, d.DX)
			}
			if s.Score() != 0 {
				t.Errorf("Bounce should not change score, got %d", s.Score())
			}
		})
	}
}

func TestShipCollisionMisses(t *testing.T) {
	ship := &entity.Ship{X: 100, Y: 550, Width: 100}

	tests := []struct {
		name  string
		drone entity.Drone
	}{
		{"moving up", entity.Drone{X: 150, Y: 548, DY: -4, Radius: 6, Speed: 5}},
		{"above ship", entity.Drone{X: 150, Y: 500, DY: 4, Radius: 6, Speed: 5}},
		{"left of ship", entity.Drone{X: 99, Y: 548, DY: 4, Radius: 6, Speed: 5}},
		{"right of ship", entity.Drone{X: 201, Y: 548, DY: 4, Radius: 6, Speed: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession()
			d := tc.drone
			if ev := s.CheckShipCollision(&d, ship); ev != nil {
				t.Errorf("Expected no collision, got %v", ev)
			}
			if d.DY != tc.drone.DY || d.DX != tc.drone.DX {
				t.Error("Drone velocity should be untouched on a miss")
			}
		})
	}
}

func TestShipCollisionZeroWidth(t *testing.T) {
	s := newTestSession()
	ship := &entity.Ship{X: 100, Y: 550}
	d := &entity.Drone{X: 100, Y: 548, DX: 3, DY: 4, Radius: 6, Speed: 5}

	if _, ok := s.CheckShipCollision(d, ship).(Bounce); !ok {
		t.Fatal("Drone on a zero-width ship should bounce")
	}
	if math.IsNaN(d.DX) || d.DX != 0 {
		t.Errorf("Zero-width ship should send the drone straight up, got DX=%v", d.DX)
	}
	if d.DY != -4 {
		t.Errorf("DY should flip to -4, got %v", d.DY)
	}
}

func TestAsteroidHitAndWin(t *testing.T) {
	s := newTestSession()
	s.Start()

	a := &entity.Asteroid{X: 100, Y: 100, Width: 60, Height: 20, Alive: true, Size: entity.SizeLarge, Color: "#ff6b6b"}
	f := &stubField{cells: []*entity.Asteroid{a}, remaining: 1}
	d := &entity.Drone{X: 130, Y: 125, DY: -4, Radius: 6, Speed: 5}

	ev := s.CheckAsteroidCollision(d, f)
	hit, ok := ev.(AsteroidHit)
	if !ok {
		t.Fatalf("Expected AsteroidHit, got %T", ev)
	}
	if hit.Type() != EventAsteroidHit {
		t.Errorf("Expected type asteroidHit, got %s", hit.Type())
	}
	if hit.Points != 40 || s.Score() != 40 {
		t.Errorf("Large asteroid should award 40, got points=%d score=%d", hit.Points, s.Score())
	}
	if hit.Fragments == nil || len(hit.Fragments) != 0 {
		t.Errorf("AsteroidHit should carry an empty fragment list, got %v", hit.Fragments)
	}
	if hit.Color != "#ff6b6b" || hit.X != 130 || hit.Y != 110 {
		t.Errorf("Event should carry asteroid center and color, got %+v", hit)
	}
	if d.DY != 4 {
		t.Errorf("DY should be reflected, got %v", d.DY)
	}
	if a.Alive {
		t.Error("Hit asteroid should be dead")
	}
	if f.fragCalls != 1 {
		t.Errorf("Field should be asked to fragment once, got %d", f.fragCalls)
	}

	ev = s.CheckWin(f)
	if ev == nil || ev.Type() != EventWin {
		t.Fatalf("Expected win event, got %v", ev)
	}
	if s.State() != StateWon {
		t.Errorf("State should be won, got %s", s.State())
	}
}

func TestAsteroidCollisionFirstMatchWins(t *testing.T) {
	s := newTestSession()
	s.Start()

	dead := &entity.Asteroid{X: 100, Y: 100, Width: 40, Height: 20, Alive: false, Size: entity.SizeLarge}
	first := &entity.Asteroid{X: 100, Y: 100, Width: 40, Height: 20, Alive: true, Size: entity.SizeSmall}
	second := &entity.Asteroid{X: 110, Y: 100, Width: 40, Height: 20, Alive: true, Size: entity.SizeMedium}
	f := &stubField{cells: []*entity.Asteroid{dead, first, second}, remaining: 2}
	d := &entity.Drone{X: 125, Y: 110, DY: -4, Radius: 6}

	ev := s.CheckAsteroidCollision(d, f)
	hit, ok := ev.(AsteroidHit)
	if !ok {
		t.Fatalf("Expected AsteroidHit, got %T", ev)
	}
	if hit.Points != 10 {
		t.Errorf("First alive overlapping cell is small (10), got %d", hit.Points)
	}
	if !second.Alive {
		t.Error("Only one asteroid should be resolved per call")
	}
	if f.fragCalls != 1 {
		t.Errorf("Expected one fragment call, got %d", f.fragCalls)
	}
}

func TestAsteroidCollisionFragments(t *testing.T) {
	s := newTestSession()
	s.Start()

	field := entity.NewField(entity.FieldLayout{CanvasWidth: 200, Rows: 1, Cols: 1, RowHeight: 40})
	a := field.Cells()[0]
	d := &entity.Drone{X: 50, Y: 45, DY: -4, Radius: 6}

	ev := s.CheckAsteroidCollision(d, field)
	frag, ok := ev.(AsteroidFragment)
	if !ok {
		t.Fatalf("Expected AsteroidFragment, got %T", ev)
	}
	if len(frag.Fragments) != 2 {
		t.Errorf("Expected 2 fragments, got %d", len(frag.Fragments))
	}
	if frag.Points != 40 {
		t.Errorf("Expected 40 points, got %d", frag.Points)
	}
	if a.Alive {
		t.Error("Parent asteroid should be dead")
	}
	if field.Remaining() != 2 {
		t.Errorf("Expected 2 remaining, got %d", field.Remaining())
	}
	if ev := s.CheckWin(field); ev != nil {
		t.Errorf("Field with fragments should not be won, got %v", ev)
	}
}

func TestAsteroidCollisionDeadFragmentsAreAHit(t *testing.T) {
	s := newTestSession()
	s.Start()

	a := &entity.Asteroid{X: 0, Y: 0, Width: 100, Height: 40, Alive: true, Size: entity.SizeLarge}
	field := &stubField{
		cells:     []*entity.Asteroid{a},
		remaining: 1,
		frags:     []*entity.Asteroid{{Size: entity.SizeMedium}, {Size: entity.SizeMedium}},
	}
	d := &entity.Drone{X: 50, Y: 45, DY: -4, Radius: 6}

	ev := s.CheckAsteroidCollision(d, field)
	hit, ok := ev.(AsteroidHit)
	if !ok {
		t.Fatalf("Only dead fragments should yield AsteroidHit, got %T", ev)
	}
	if len(hit.Fragments) != 0 {
		t.Errorf("AsteroidHit should carry no fragments, got %d", len(hit.Fragments))
	}
}

func TestAsteroidCollisionMiss(t *testing.T) {
	s := newTestSession()
	a := &entity.Asteroid{X: 100, Y: 100, Width: 40, Height: 20, Alive: true, Size: entity.SizeLarge}
	f := &stubField{cells: []*entity.Asteroid{a}, remaining: 1}

	// Touching edges do not overlap
	d := &entity.Drone{X: 94, Y: 110, DY: -4, Radius: 6}
	if ev := s.CheckAsteroidCollision(d, f); ev != nil {
		t.Errorf("Expected no collision, got %v", ev)
	}
	if d.DY != -4 || !a.Alive || s.Score() != 0 {
		t.Error("A miss should not mutate anything")
	}
}

func TestDroneLostScenario(t *testing.T) {
	s := newTestSession()
	s.Start()
	if s.Lives() != 3 {
		t.Fatalf("Expected 3 lives, got %d", s.Lives())
	}

	ship := &entity.Ship{X: 360, Y: 560, Width: 80}
	want := []Event{LoseLife{LivesLeft: 2}, LoseLife{LivesLeft: 1}, GameOver{}}

	for i, w := range want {
		d := &entity.Drone{X: 50, Y: 700, DX: 3, DY: 4, Radius: 6, Speed: 5}
		ev := s.CheckDroneLost(d, ship)
		if ev != w {
			t.Fatalf("Call %d: expected %#v, got %#v", i+1, w, ev)
		}

		if _, over := w.(GameOver); over {
			if d.X != 50 || d.Y != 700 {
				t.Error("Drone should be left in place on game over")
			}
		} else if d.X != 400 || d.DY != -5 {
			t.Errorf("Drone should be reset onto the ship, got X=%v DY=%v", d.X, d.DY)
		}
	}

	if s.State() != StateGameOver {
		t.Errorf("Expected gameOver, got %s", s.State())
	}
	if s.Lives() != 0 {
		t.Errorf("Expected 0 lives, got %d", s.Lives())
	}
}

func TestDroneLostThreshold(t *testing.T) {
	s := newTestSession()
	s.Start()
	ship := &entity.Ship{X: 360, Y: 560, Width: 80}

	// Upper edge exactly at the canvas bottom is still in play
	d := &entity.Drone{X: 50, Y: 606, Radius: 6}
	if ev := s.CheckDroneLost(d, ship); ev != nil {
		t.Errorf("Drone touching the bottom should not be lost, got %v", ev)
	}
	if s.Lives() != 3 {
		t.Errorf("Lives should be untouched, got %d", s.Lives())
	}
}

func TestCheckWinRequiresEmptyField(t *testing.T) {
	s := newTestSession()
	s.Start()

	if ev := s.CheckWin(&stubField{remaining: 2}); ev != nil {
		t.Errorf("Expected no win with asteroids left, got %v", ev)
	}
	if s.State() != StatePlaying {
		t.Errorf("State should stay playing, got %s", s.State())
	}
}

func TestPointsFor(t *testing.T) {
	tests := map[entity.Size]int{
		entity.SizeLarge:  40,
		entity.SizeMedium: 20,
		entity.SizeSmall:  10,
		entity.Size("x"):  0,
	}
	for size, want := range tests {
		if got := PointsFor(size); got != want {
			t.Errorf("PointsFor(%q) = %d, expected %d", size, got, want)
		}
	}
}

func TestEventTypes(t *testing.T) {
	events := map[EventType]Event{
		"bounce":           Bounce{},
		"asteroidHit":      AsteroidHit{},
		"asteroidFragment": AsteroidFragment{},
		"loseLife":         LoseLife{},
		"gameOver":         GameOver{},
		"win":              Win{},
	}
	for want, ev := range events {
		if ev.Type() != want {
			t.Errorf("%T.Type() = %q, expected %q", ev, ev.Type(), want)
		}
	}
}
