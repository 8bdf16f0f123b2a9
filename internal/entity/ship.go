package entity

// Direction is a horizontal steering input for the ship.
type Direction int

const (
	DirNone  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Ship is the paddle. X is the left edge, Y the top edge.
type Ship struct {
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64 // Canvas units per tick
}

// CenterX returns the horizontal center of the ship.
func (s *Ship) CenterX() float64 {
	return s.X + s.Width/2
}

// Right returns the x-coordinate of the right edge.
func (s *Ship) Right() float64 {
	return s.X + s.Width
}

// Move steers the ship and keeps it inside [0, canvasWidth].
func (s *Ship) Move(dir Direction, canvasWidth float64) {
	s.X += float64(dir) * s.Speed

	if s.X < 0 {
		s.X = 0
	}
	if maxX := canvasWidth - s.Width; s.X > maxX {
		s.X = maxX
	}
}
