package analysis

import "testing"

func TestAnalyzePureTonePitch(t *testing.T) {
	p := NewProsodyAnalyzer(DefaultProsodyConfig())
	profile := p.Analyze(sineWave(220, 0.5, 2), testRate, "en")

	if profile.PitchMean < 210 || profile.PitchMean > 235 {
		t.Errorf("pitch mean = %.1f, want close to 220", profile.PitchMean)
	}
	// A steady tone has almost no pitch movement.
	if profile.PitchVariance > 30 {
		t.Errorf("pitch variance = %.1f, want small for a steady tone", profile.PitchVariance)
	}
	if profile.Monotony != "high (monotonous)" {
		t.Errorf("monotony = %q, want monotonous for a steady tone", profile.Monotony)
	}
}

func TestAnalyzeSteadyToneDynamics(t *testing.T) {
	p := NewProsodyAnalyzer(DefaultProsodyConfig())
	profile := p.Analyze(sineWave(220, 0.5, 2), testRate, "en")

	if profile.EnergyMean < 0.3 || profile.EnergyMean > 0.4 {
		t.Errorf("energy mean = %.4f, want close to 0.354", profile.EnergyMean)
	}
	if profile.Dynamics != "flat (almost no volume changes)" {
		t.Errorf("dynamics = %q, want flat for constant amplitude", profile.Dynamics)
	}
}

func TestAnalyzeSilence(t *testing.T) {
	p := NewProsodyAnalyzer(DefaultProsodyConfig())
	profile := p.Analyze(silence(2), testRate, "en")

	if profile.PitchMean != 0 || profile.PitchVariance != 0 {
		t.Errorf("pitch stats = (%.1f, %.1f), want zeros for silence",
			profile.PitchMean, profile.PitchVariance)
	}
	if profile.EnergyMean != 0 || profile.EnergyVariance != 0 {
		t.Errorf("energy stats = (%.4f, %.4f), want zeros for silence",
			profile.EnergyMean, profile.EnergyVariance)
	}
}

func TestMonotonyLabelBoundaries(t *testing.T) {
	cases := []struct {
		variance float64
		lang     string
		want     string
	}{
		{60.1, "en", "very low (lively sound)"},
		{60, "en", "moderate"},
		{30.1, "en", "moderate"},
		{30, "en", "high (monotonous)"},
		{0, "en", "high (monotonous)"},
		{70, "ru", "очень низкая (живое звучание)"},
		{10, "ru", "высокая (монотонно)"},
	}
	for _, c := range cases {
		if got := MonotonyLabel(c.variance, c.lang); got != c.want {
			t.Errorf("MonotonyLabel(%v, %q) = %q, want %q", c.variance, c.lang, got, c.want)
		}
	}
}

func TestDynamicsLabelBoundaries(t *testing.T) {
	cases := []struct {
		variance float64
		lang     string
		want     string
	}{
		{0.031, "en", "pronounced dynamics"},
		{0.03, "en", "medium dynamics"},
		{0.016, "en", "medium dynamics"},
		{0.015, "en", "flat (almost no volume changes)"},
		{0, "en", "flat (almost no volume changes)"},
		{0.05, "ru", "ярко выраженная динамика"},
		{0.02, "ru", "средняя динамика"},
	}
	for _, c := range cases {
		if got := DynamicsLabel(c.variance, c.lang); got != c.want {
			t.Errorf("DynamicsLabel(%v, %q) = %q, want %q", c.variance, c.lang, got, c.want)
		}
	}
}

func TestCorrectOctaveJumps(t *testing.T) {
	pitch := []float64{200, 201, 199, 400, 200, 202, 198, 100, 200, 201, 199, 200}
	out := correctOctaveJumps(pitch)

	if out[3] > 250 {
		t.Errorf("doubled observation kept: %.1f", out[3])
	}
	if out[7] < 150 {
		t.Errorf("halved observation kept: %.1f", out[7])
	}
	if out[0] != 200 || out[5] != 202 {
		t.Errorf("genuine observations changed: %v", out)
	}
}
