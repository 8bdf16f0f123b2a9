package astrobreak

// starCount is the number of background stars.
const starCount = 60

// BaseStarSpeed is how far the nearest star falls per tick at StarSpeed 1.
const BaseStarSpeed = 0.8

// Star is one background point. Depth in (0, 1] scales speed and brightness.
type Star struct {
	X, Y  float64
	Depth float64
}

// Starfield is a vertically scrolling background. It is seeded so replays
// and determinism tests see the same sky.
type Starfield struct {
	Stars         []Star
	rng           *SimpleRNG
	width, height float64
}

// NewStarfield scatters count stars over a canvas.
func NewStarfield(seed int64, count int, width, height float64) *Starfield {
	sf := &Starfield{
		Stars:  make([]Star, count),
		rng:    NewSimpleRNG(seed),
		width:  width,
		height: height,
	}
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			X:     sf.rng.Float64() * width,
			Y:     sf.rng.Float64() * height,
			Depth: 0.25 + 0.75*sf.rng.Float64(),
		}
	}
	return sf
}

// Advance scrolls every star down. Stars leaving the bottom wrap to the
// top at a new column.
func (sf *Starfield) Advance(speed float64) {
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.Y += speed * BaseStarSpeed * s.Depth
		if s.Y >= sf.height {
			s.Y -= sf.height
			s.X = sf.rng.Float64() * sf.width
		}
	}
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG for speed and reproducibility.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// State returns the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
