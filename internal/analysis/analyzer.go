package analysis

import (
	"errors"
	"fmt"

	"github.com/speechlens/speechlens/internal/analysis/vocab"
)

// ErrNumeric reports invalid numeric input such as a non-positive
// sample rate.
var ErrNumeric = errors.New("analysis: invalid numeric input")

// SpeechMetrics is the aggregate result of one analysis pass over a
// recording and its transcript.
type SpeechMetrics struct {
	DurationSec    float64        `json:"duration_sec"`
	WordCount      int            `json:"word_count"`
	WordsPerMinute float64        `json:"words_per_minute"`
	TempoRating    string         `json:"tempo_rating"`
	ShortPauses    int            `json:"short_pauses"`
	LongPauses     int            `json:"long_pauses"`
	Fillers        FillerReport   `json:"fillers"`
	Prosody        ProsodyProfile `json:"prosody"`
}

// Pause classification bounds in seconds. Spans between the short
// upper bound and the long lower bound fall into neither bucket.
const (
	shortPauseMin = 0.3
	shortPauseMax = 1.0
	longPauseMin  = 1.5
)

// Analyzer runs the full metrics pipeline: pauses, prosody, fillers
// and tempo over a decoded recording.
type Analyzer struct {
	vocab   *vocab.Store
	pause   *PauseDetector
	prosody *ProsodyAnalyzer
}

// New builds an Analyzer with default detector settings. The vocab
// store supplies the filler word sets and may be shared across
// analyzers.
func New(vocabStore *vocab.Store) *Analyzer {
	return &Analyzer{
		vocab:   vocabStore,
		pause:   NewPauseDetector(DefaultPauseConfig()),
		prosody: NewProsodyAnalyzer(DefaultProsodyConfig()),
	}
}

// Analyze computes speech metrics for the given samples and transcript.
// Degenerate audio (empty or silent) produces zero-valued acoustic
// metrics without an error; the text metrics still run. A non-positive
// sample rate is rejected with ErrNumeric.
func (a *Analyzer) Analyze(samples []float64, sampleRate int, transcript, lang string) (*SpeechMetrics, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrNumeric, sampleRate)
	}

	m := &SpeechMetrics{}

	durationSec := float64(len(samples)) / float64(sampleRate)
	m.DurationSec = roundTo(durationSec, 2)

	m.WordCount = len(tokenize(transcript))
	var wpm float64
	if durationSec > 0 {
		wpm = float64(m.WordCount) / durationSec * 60
	}
	// Rate against the exact value; rounding is display only.
	m.WordsPerMinute = roundTo(wpm, 1)
	m.TempoRating = TempoLabel(wpm, lang)

	for _, span := range a.pause.Detect(samples, sampleRate) {
		switch {
		case span >= shortPauseMin && span <= shortPauseMax:
			m.ShortPauses++
		case span > longPauseMin:
			m.LongPauses++
		}
	}

	m.Fillers = a.CountFillers(transcript, lang)
	m.Prosody = a.prosody.Analyze(samples, sampleRate, lang)

	return m, nil
}
