// Package entity holds the moving pieces of an astrobreak match: the drone,
// the ship that bounces it, and the asteroid field.
//
// Entities are plain mutable structs. The session package borrows pointers
// to them for the duration of a check and writes only the fields each check
// documents.
package entity

// Drone is the ball. Coordinates are canvas units, velocity is per tick.
type Drone struct {
	X, Y   float64 // Center position
	DX, DY float64 // Velocity per tick
	Radius float64
	Speed  float64 // Base speed used for launches and paddle steering
}

// NewDrone creates a drone resting above the ship.
func NewDrone(radius, speed float64, ship *Ship) *Drone {
	d := &Drone{Radius: radius, Speed: speed}
	d.Reset(ship)
	return d
}

// Move advances the drone by its velocity.
func (d *Drone) Move() {
	d.X += d.DX
	d.Y += d.DY
}

// BounceWalls reflects the drone off the left, right and top walls.
// The bottom of the canvas is open; losing the drone is the session's call.
func (d *Drone) BounceWalls(width float64) bool {
	bounced := false

	if d.X-d.Radius < 0 {
		d.X = d.Radius
		d.DX = abs(d.DX)
		bounced = true
	} else if d.X+d.Radius > width {
		d.X = width - d.Radius
		d.DX = -abs(d.DX)
		bounced = true
	}

	if d.Y-d.Radius < 0 {
		d.Y = d.Radius
		d.DY = abs(d.DY)
		bounced = true
	}

	return bounced
}

// Reset puts the drone back on top of the ship, heading up and to the right.
func (d *Drone) Reset(ship *Ship) {
	d.X = ship.CenterX()
	d.Y = ship.Y - d.Radius - 1
	d.DX = d.Speed / 2
	d.DY = -d.Speed
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
