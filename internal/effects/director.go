// Package effects animates screen-wide visual intensity (star speed,
// vignette, shake, color grading) toward discrete presets.
//
// A Director holds the current effect vector and a target preset. Setting
// an intensity only changes the target; every Update moves the current
// vector a fixed fraction of the remaining distance, so transitions are
// always animated and converge geometrically.
package effects

// DefaultRate is the per-update smoothing factor.
const DefaultRate = 0.06

// Director smooths the current effects toward the selected preset.
type Director struct {
	level   int
	rate    float64
	current Effects
	target  Effects
}

// New creates a director resting at the calm preset.
func New() *Director {
	return NewWithRate(DefaultRate)
}

// NewWithRate creates a director with a custom smoothing rate.
// Rates outside (0, 1] fall back to DefaultRate.
func NewWithRate(rate float64) *Director {
	if !(rate > 0 && rate <= 1) {
		rate = DefaultRate
	}
	calm := PresetAt(LevelCalm).Effects
	return &Director{
		level:   LevelCalm,
		rate:    rate,
		current: calm,
		target:  calm,
	}
}

// SetIntensity selects the target preset. Out-of-range levels select calm.
// The current effects are left alone until the next Update.
func (d *Director) SetIntensity(level int) {
	d.level = level
	d.target = PresetAt(level).Effects
}

// Update moves every numeric field a rate-sized step toward the target.
// ScoreColor snaps to the target immediately.
func (d *Director) Update() {
	c, t, k := &d.current, &d.target, d.rate

	c.StarSpeed = approach(c.StarSpeed, t.StarSpeed, k)
	c.VignetteAlpha = approach(c.VignetteAlpha, t.VignetteAlpha, k)
	c.MicroShake = approach(c.MicroShake, t.MicroShake, k)
	c.DeathLineGlow = approach(c.DeathLineGlow, t.DeathLineGlow, k)
	c.ScoreGlow = approach(c.ScoreGlow, t.ScoreGlow, k)
	for i := range c.VignetteHue {
		c.VignetteHue[i] = approach(c.VignetteHue[i], t.VignetteHue[i], k)
	}
	for i := range c.DeathLine {
		c.DeathLine[i] = approach(c.DeathLine[i], t.DeathLine[i], k)
	}

	c.ScoreColor = t.ScoreColor
}

// Effects returns a copy of the current effects.
func (d *Director) Effects() Effects {
	return d.current
}

// Target returns a copy of the effects being approached.
func (d *Director) Target() Effects {
	return d.target
}

// Level returns the last level passed to SetIntensity, as given.
func (d *Director) Level() int {
	return d.level
}

// Rate returns the smoothing factor.
func (d *Director) Rate() float64 {
	return d.rate
}

func approach(cur, target, k float64) float64 {
	return cur + (target-cur)*k
}
