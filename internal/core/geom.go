// Package core provides the platform types shared by the game and the
// terminal front-end. It has no external dependencies (especially no
// Bubble Tea) so game code stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Viewport maps canvas coordinates onto a region of the screen.
// The canvas is the simulation's coordinate space (e.g. 800x600); the
// region is where it lands in terminal cells.
type Viewport struct {
	CanvasW, CanvasH float64
	Region           Rect
}

// NewViewport fits a canvas into the given screen region.
func NewViewport(canvasW, canvasH float64, region Rect) Viewport {
	return Viewport{CanvasW: canvasW, CanvasH: canvasH, Region: region}
}

// ToCell converts a canvas point to a screen cell (truncated).
func (v Viewport) ToCell(x, y float64) (int, int) {
	if v.CanvasW <= 0 || v.CanvasH <= 0 {
		return v.Region.X, v.Region.Y
	}
	cx := v.Region.X + int(math.Floor(x/v.CanvasW*float64(v.Region.W)))
	cy := v.Region.Y + int(math.Floor(y/v.CanvasH*float64(v.Region.H)))
	return cx, cy
}

// SpanX converts a canvas width to a cell count, at least 1.
func (v Viewport) SpanX(w float64) int {
	if v.CanvasW <= 0 {
		return 1
	}
	return max(1, int(math.Round(w/v.CanvasW*float64(v.Region.W))))
}

// SpanY converts a canvas height to a cell count, at least 1.
func (v Viewport) SpanY(h float64) int {
	if v.CanvasH <= 0 {
		return 1
	}
	return max(1, int(math.Round(h/v.CanvasH*float64(v.Region.H))))
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
