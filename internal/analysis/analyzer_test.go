package analysis

import (
	"errors"
	"strings"
	"testing"
)

func TestAnalyzeTempoOptimal(t *testing.T) {
	a := newTestAnalyzer()

	transcript := strings.TrimSpace(strings.Repeat("word ", 130))
	m, err := a.Analyze(silence(60), testRate, transcript, "en")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if m.DurationSec != 60.0 {
		t.Errorf("duration = %.2f, want 60.00", m.DurationSec)
	}
	if m.WordCount != 130 {
		t.Errorf("word count = %d, want 130", m.WordCount)
	}
	if m.WordsPerMinute != 130.0 {
		t.Errorf("wpm = %.1f, want 130.0", m.WordsPerMinute)
	}
	if m.TempoRating != "optimal" {
		t.Errorf("tempo = %q, want optimal", m.TempoRating)
	}
}

func TestAnalyzeSlowTempo(t *testing.T) {
	a := newTestAnalyzer()

	m, err := a.Analyze(silence(10), testRate, "", "en")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if m.WordsPerMinute != 0 {
		t.Errorf("wpm = %.1f, want 0 for empty transcript", m.WordsPerMinute)
	}
	if m.TempoRating != "too slow" {
		t.Errorf("tempo = %q, want too slow", m.TempoRating)
	}
}

func TestAnalyzeTempoRatedBeforeRounding(t *testing.T) {
	a := newTestAnalyzer()

	// 200 words over 79.9875s is 150.02 wpm, which rounds down to the
	// 150.0 boundary but is still rated above it.
	transcript := strings.TrimSpace(strings.Repeat("word ", 200))
	m, err := a.Analyze(make([]float64, 1279800), testRate, transcript, "en")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if m.WordsPerMinute != 150.0 {
		t.Errorf("wpm = %.1f, want 150.0", m.WordsPerMinute)
	}
	if m.TempoRating != "too fast" {
		t.Errorf("tempo = %q, want too fast", m.TempoRating)
	}
}

func TestAnalyzePauseClassification(t *testing.T) {
	a := newTestAnalyzer()

	// One 0.7s gap lands in the short bucket, one 2s gap in the long
	// bucket. The speech segments keep the dynamic threshold honest.
	samples := concat(
		sineWave(440, 0.5, 3),
		silence(0.7),
		sineWave(440, 0.5, 3),
		silence(2),
		sineWave(440, 0.5, 3),
	)

	m, err := a.Analyze(samples, testRate, "some words were spoken here", "en")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if m.ShortPauses != 1 {
		t.Errorf("short pauses = %d, want 1", m.ShortPauses)
	}
	if m.LongPauses != 1 {
		t.Errorf("long pauses = %d, want 1", m.LongPauses)
	}
}

func TestAnalyzeEmptyAudio(t *testing.T) {
	a := newTestAnalyzer()

	m, err := a.Analyze(nil, testRate, "um this still counts like text", "en")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if m.DurationSec != 0 {
		t.Errorf("duration = %.2f, want 0", m.DurationSec)
	}
	if m.WordsPerMinute != 0 {
		t.Errorf("wpm = %.1f, want 0 when duration is 0", m.WordsPerMinute)
	}
	// Text metrics still run without audio.
	if m.Fillers.Total != 2 {
		t.Errorf("fillers = %d, want 2", m.Fillers.Total)
	}
}

func TestAnalyzeInvalidSampleRate(t *testing.T) {
	a := newTestAnalyzer()

	_, err := a.Analyze(sineWave(220, 0.5, 1), 0, "text", "en")
	if !errors.Is(err, ErrNumeric) {
		t.Errorf("err = %v, want ErrNumeric", err)
	}
}
