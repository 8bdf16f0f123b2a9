package effects

// Effects is the vector of visual parameters read by the renderer each frame.
type Effects struct {
	StarSpeed     float64
	VignetteAlpha float64    // 0..1
	VignetteHue   [3]float64 // RGB-ish tint of the vignette
	MicroShake    float64    // Jitter amplitude
	DeathLine     [3]float64 // RGB, 0..255
	DeathLineGlow float64
	ScoreGlow     float64
	ScoreColor    string // Hex color, switched not blended
}

// Preset is a named intensity level.
type Preset struct {
	Name string
	Effects
}

// Intensity levels, in table order.
const (
	LevelCalm = iota
	LevelCruise
	LevelAction
	LevelIntense
	LevelClimax
)

// PresetCount is the number of intensity levels.
const PresetCount = 5

// presets is indexed by intensity level. Order and values are fixed.
var presets = [PresetCount]Preset{
	{Name: "calm", Effects: Effects{
		StarSpeed: 1.0, VignetteAlpha: 0, VignetteHue: [3]float64{0, 100, 180},
		MicroShake: 0, DeathLine: [3]float64{0, 212, 255}, DeathLineGlow: 0.07,
		ScoreGlow: 0, ScoreColor: "#ffffff",
	}},
	{Name: "cruise", Effects: Effects{
		StarSpeed: 1.2, VignetteAlpha: 0, VignetteHue: [3]float64{0, 100, 180},
		MicroShake: 0, DeathLine: [3]float64{0, 212, 255}, DeathLineGlow: 0.08,
		ScoreGlow: 0, ScoreColor: "#ffffff",
	}},
	{Name: "action", Effects: Effects{
		StarSpeed: 1.5, VignetteAlpha: 0.05, VignetteHue: [3]float64{40, 60, 160},
		MicroShake: 0.3, DeathLine: [3]float64{80, 220, 200}, DeathLineGlow: 0.10,
		ScoreGlow: 4, ScoreColor: "#ffffff",
	}},
	{Name: "intense", Effects: Effects{
		StarSpeed: 2.0, VignetteAlpha: 0.12, VignetteHue: [3]float64{120, 40, 160},
		MicroShake: 0.8, DeathLine: [3]float64{255, 160, 40}, DeathLineGlow: 0.15,
		ScoreGlow: 8, ScoreColor: "#ffcc66",
	}},
	{Name: "climax", Effects: Effects{
		StarSpeed: 2.5, VignetteAlpha: 0.20, VignetteHue: [3]float64{200, 30, 30},
		MicroShake: 1.5, DeathLine: [3]float64{255, 50, 30}, DeathLineGlow: 0.20,
		ScoreGlow: 12, ScoreColor: "#ffaa44",
	}},
}

// PresetAt returns the preset for a level. Levels outside the table fall
// back to calm.
func PresetAt(level int) Preset {
	if level < 0 || level >= PresetCount {
		return presets[LevelCalm]
	}
	return presets[level]
}

// Presets returns a copy of the preset table in level order.
func Presets() []Preset {
	out := make([]Preset, PresetCount)
	copy(out, presets[:])
	return out
}
