package entity

// Size is the size class of an asteroid. Point awards and fragmentation
// both key off it.
type Size string

const (
	SizeLarge  Size = "large"
	SizeMedium Size = "medium"
	SizeSmall  Size = "small"
)

// Smaller returns the size fragments of this size break into.
// Returns false for the smallest size.
func (s Size) Smaller() (Size, bool) {
	switch s {
	case SizeLarge:
		return SizeMedium, true
	case SizeMedium:
		return SizeSmall, true
	default:
		return "", false
	}
}

// hitsToClear is how many hits it takes to remove an asteroid of this size
// and every fragment it spawns.
func (s Size) hitsToClear() int {
	switch s {
	case SizeLarge:
		return 7
	case SizeMedium:
		return 3
	case SizeSmall:
		return 1
	default:
		return 0
	}
}

// Asteroid is one cell of the field. X, Y is the top-left corner.
type Asteroid struct {
	X, Y          float64
	Width, Height float64
	Alive         bool
	Size          Size
	Color         string // Hex color, e.g. "#ff6b6b"
}

// Center returns the center point of the asteroid.
func (a *Asteroid) Center() (float64, float64) {
	return a.X + a.Width/2, a.Y + a.Height/2
}

// FieldLayout describes the initial grid of large asteroids.
type FieldLayout struct {
	CanvasWidth float64
	Rows        int
	Cols        int
	Top         float64  // Y of the first row
	RowHeight   float64  // Height of a large asteroid
	Gap         float64  // Spacing between cells and around the grid
	Palette     []string // Row colors, cycled
}

// Field is the asteroid field. The grid keeps insertion order: the
// session resolves the first overlapping cell, so order is a tie-break.
type Field struct {
	grid      []*Asteroid
	remaining int
	hits      int
	totalHits int
}

// NewField builds a field of large asteroids from the layout.
func NewField(layout FieldLayout) *Field {
	f := &Field{}
	if layout.Rows <= 0 || layout.Cols <= 0 {
		return f
	}

	cellW := (layout.CanvasWidth - layout.Gap*float64(layout.Cols+1)) / float64(layout.Cols)
	f.grid = make([]*Asteroid, 0, layout.Rows*layout.Cols)

	for row := range layout.Rows {
		color := "#ffffff"
		if len(layout.Palette) > 0 {
			color = layout.Palette[row%len(layout.Palette)]
		}
		for col := range layout.Cols {
			f.Add(&Asteroid{
				X:      layout.Gap + float64(col)*(cellW+layout.Gap),
				Y:      layout.Top + float64(row)*(layout.RowHeight+layout.Gap),
				Width:  cellW,
				Height: layout.RowHeight,
				Alive:  true,
				Size:   SizeLarge,
				Color:  color,
			})
		}
	}

	return f
}

// Add appends an asteroid to the grid. Alive asteroids count toward Remaining.
func (f *Field) Add(a *Asteroid) {
	f.grid = append(f.grid, a)
	if a.Alive {
		f.remaining++
		f.totalHits += a.Size.hitsToClear()
	}
}

// Cells returns the grid in stored order.
func (f *Field) Cells() []*Asteroid {
	return f.grid
}

// Remaining returns the number of asteroids still in play.
func (f *Field) Remaining() int {
	return f.remaining
}

// Progress returns the fraction of hits needed to clear the field that
// have already landed, in [0, 1].
func (f *Field) Progress() float64 {
	if f.totalHits == 0 {
		return 1
	}
	p := float64(f.hits) / float64(f.totalHits)
	if p > 1 {
		return 1
	}
	return p
}

// Fragment removes a hit asteroid from play and splits it into two
// fragments of the next size down. Small asteroids leave no fragments.
//
// Fragments are half the parent's size, inherit its color, sit flush with
// the parent's left and right edges, and are pushed vertically away from
// the impact point. They are appended to the grid left first.
// Fragment must be called once per destroyed asteroid.
func (f *Field) Fragment(a *Asteroid, _, y float64) []*Asteroid {
	a.Alive = false
	if f.remaining > 0 {
		f.remaining--
	}
	f.hits++

	next, ok := a.Size.Smaller()
	if !ok {
		return nil
	}

	w := a.Width / 2
	h := a.Height / 2

	// Impact in the lower half pushes debris up, and vice versa.
	fy := a.Y + a.Height - h
	if y >= a.Y+a.Height/2 {
		fy = a.Y
	}

	frags := []*Asteroid{
		{X: a.X, Y: fy, Width: w, Height: h, Alive: true, Size: next, Color: a.Color},
		{X: a.X + a.Width - w, Y: fy, Width: w, Height: h, Alive: true, Size: next, Color: a.Color},
	}
	for _, frag := range frags {
		f.grid = append(f.grid, frag)
		f.remaining++
	}

	return frags
}

// AliveCount recounts alive cells. Remaining is authoritative for win
// checks; this is for diagnostics.
func (f *Field) AliveCount() int {
	count := 0
	for _, a := range f.grid {
		if a.Alive {
			count++
		}
	}
	return count
}

// ForceClear marks the field as cleared without touching the grid.
// Diagnostic hook: the next win check fires naturally.
func (f *Field) ForceClear() {
	f.remaining = 0
}
