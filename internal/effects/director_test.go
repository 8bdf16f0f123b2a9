package effects

import (
	"math"
	"testing"
)

// scalars flattens every interpolated field for comparison.
func scalars(e Effects) []float64 {
	return []float64{
		e.StarSpeed, e.VignetteAlpha, e.MicroShake, e.DeathLineGlow, e.ScoreGlow,
		e.VignetteHue[0], e.VignetteHue[1], e.VignetteHue[2],
		e.DeathLine[0], e.DeathLine[1], e.DeathLine[2],
	}
}

func TestNewDirectorEqualsCalm(t *testing.T) {
	d := New()
	e := d.Effects()

	if e != PresetAt(0).Effects {
		t.Errorf("Fresh director should equal preset 0, got %+v", e)
	}
	if e.StarSpeed != 1.0 || e.VignetteAlpha != 0 || e.ScoreColor != "#ffffff" {
		t.Errorf("Unexpected calm values: %+v", e)
	}
	if d.Rate() != DefaultRate {
		t.Errorf("Default rate should be %v, got %v", DefaultRate, d.Rate())
	}
}

func TestPresetTable(t *testing.T) {
	names := []string{"calm", "cruise", "action", "intense", "climax"}
	starSpeeds := []float64{1.0, 1.2, 1.5, 2.0, 2.5}
	colors := []string{"#ffffff", "#ffffff", "#ffffff", "#ffcc66", "#ffaa44"}

	all := Presets()
	if len(all) != PresetCount {
		t.Fatalf("Expected %d presets, got %d", PresetCount, len(all))
	}
	for i, p := range all {
		if p.Name != names[i] || p.StarSpeed != starSpeeds[i] || p.ScoreColor != colors[i] {
			t.Errorf("Preset %d mismatch: %+v", i, p)
		}
	}

	climax := PresetAt(LevelClimax)
	if climax.DeathLine != [3]float64{255, 50, 30} || climax.VignetteHue != [3]float64{200, 30, 30} {
		t.Errorf("Climax vectors mismatch: %+v", climax)
	}

	// The copy must not alias the table
	all[0].StarSpeed = 99
	if PresetAt(0).StarSpeed != 1.0 {
		t.Error("Presets() should return a copy")
	}
}

func TestSetIntensityDefersChange(t *testing.T) {
	d := New()
	d.SetIntensity(LevelClimax)

	if d.Effects() != PresetAt(0).Effects {
		t.Error("SetIntensity should not change current effects before Update")
	}
	if d.Level() != LevelClimax {
		t.Errorf("Level should be %d, got %d", LevelClimax, d.Level())
	}
}

func TestUpdateConvergesGeometrically(t *testing.T) {
	for level := 1; level < PresetCount; level++ {
		d := New()
		initial := scalars(d.Effects())
		target := scalars(PresetAt(level).Effects)

		d.SetIntensity(level)
		for n := 1; n <= 60; n++ {
			d.Update()
			cur := scalars(d.Effects())
			factor := math.Pow(1-DefaultRate, float64(n))
			for i := range cur {
				gap := math.Abs(initial[i] - target[i])
				want := gap * factor
				got := math.Abs(cur[i] - target[i])
				if math.Abs(got-want) > 1e-9*(1+gap) {
					t.Fatalf("level %d, n=%d, field %d: error %v, expected %v", level, n, i, got, want)
				}
			}
		}
	}
}

func TestUpdateReachesTarget(t *testing.T) {
	d := New()
	d.SetIntensity(LevelIntense)
	for range 500 {
		d.Update()
	}

	cur := scalars(d.Effects())
	target := scalars(PresetAt(LevelIntense).Effects)
	for i := range cur {
		if math.Abs(cur[i]-target[i]) > 1e-10 {
			t.Errorf("Field %d should converge, got %v want %v", i, cur[i], target[i])
		}
	}
}

func TestScoreColorSnaps(t *testing.T) {
	d := New()
	d.SetIntensity(LevelIntense)
	d.Update()

	e := d.Effects()
	if e.ScoreColor != "#ffcc66" {
		t.Errorf("ScoreColor should snap after one update, got %s", e.ScoreColor)
	}
	if e.StarSpeed == 2.0 {
		t.Error("StarSpeed should still be approaching its target")
	}

	d.SetIntensity(LevelCalm)
	d.Update()
	if d.Effects().ScoreColor != "#ffffff" {
		t.Errorf("ScoreColor should snap back, got %s", d.Effects().ScoreColor)
	}
}

func TestOutOfRangeFallsBackToCalm(t *testing.T) {
	for _, level := range []int{-1, 5, 42, math.MinInt, math.MaxInt} {
		ref := New()
		ref.SetIntensity(LevelClimax)
		ref.Update()
		ref.SetIntensity(0)

		d := New()
		d.SetIntensity(LevelClimax)
		d.Update()
		d.SetIntensity(level)

		if d.Target() != PresetAt(0).Effects {
			t.Errorf("Level %d should target calm", level)
		}

		for range 300 {
			ref.Update()
			d.Update()
		}
		if d.Effects() != ref.Effects() {
			t.Errorf("Level %d should behave like level 0", level)
		}
	}
}

func TestEffectsReturnsCopy(t *testing.T) {
	d := New()
	e := d.Effects()
	e.StarSpeed = 50
	e.DeathLine[0] = 1

	if d.Effects().StarSpeed != 1.0 || d.Effects().DeathLine[0] != 0 {
		t.Error("Mutating the returned effects should not affect the director")
	}
}

func TestNewWithRate(t *testing.T) {
	if got := NewWithRate(0.5).Rate(); got != 0.5 {
		t.Errorf("Expected rate 0.5, got %v", got)
	}
	for _, bad := range []float64{0, -1, 1.5, math.NaN()} {
		if got := NewWithRate(bad).Rate(); got != DefaultRate {
			t.Errorf("Rate %v should fall back to default, got %v", bad, got)
		}
	}

	d := NewWithRate(1)
	d.SetIntensity(LevelAction)
	d.Update()
	cur := scalars(d.Effects())
	target := scalars(PresetAt(LevelAction).Effects)
	for i := range cur {
		if math.Abs(cur[i]-target[i]) > 1e-12 {
			t.Errorf("Rate 1 should reach the target in one update, field %d = %v", i, cur[i])
		}
	}
}
