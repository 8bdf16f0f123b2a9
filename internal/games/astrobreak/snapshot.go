package astrobreak

import "math"

// Snapshot captures the match for determinism checks and diagnostics.
// Floats are stored as their IEEE bits so equal states hash equally.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	Lives     int
	Remaining int
	Level     int

	ShipX   uint64
	DroneX  uint64
	DroneY  uint64
	DroneDX uint64
	DroneDY uint64

	// Each asteroid is 5 values: Alive, X, Y, Width, Height
	AsteroidCount int
	AsteroidData  []uint64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	cells := g.field.Cells()
	data := make([]uint64, 0, len(cells)*5)
	for _, a := range cells {
		var alive uint64
		if a.Alive {
			alive = 1
		}
		data = append(data, alive,
			math.Float64bits(a.X), math.Float64bits(a.Y),
			math.Float64bits(a.Width), math.Float64bits(a.Height))
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:     string(g.session.State()),
		Score:     g.session.Score(),
		Lives:     g.session.Lives(),
		Remaining: g.field.Remaining(),
		Level:     g.level,

		ShipX:   math.Float64bits(g.ship.X),
		DroneX:  math.Float64bits(g.drone.X),
		DroneY:  math.Float64bits(g.drone.Y),
		DroneDX: math.Float64bits(g.drone.DX),
		DroneDY: math.Float64bits(g.drone.DY),

		AsteroidCount: len(cells),
		AsteroidData:  data,

		RNGState: g.stars.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AsteroidCount) //#nosec G115 -- hash computation

	h = h*31 + snap.ShipX
	h = h*31 + snap.DroneX
	h = h*31 + snap.DroneY
	h = h*31 + snap.DroneDX
	h = h*31 + snap.DroneDY

	for _, v := range snap.AsteroidData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}
