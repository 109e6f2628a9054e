package analysis

// PauseConfig holds pause detection parameters.
type PauseConfig struct {
	FrameLength int     // samples per analysis frame
	HopLength   int     // samples between frame starts
	Percentile  float64 // energy percentile used as the silence threshold
	MinSpanSec  float64 // spans at or below this duration are discarded
}

// DefaultPauseConfig returns the standard grid for 16kHz speech.
func DefaultPauseConfig() PauseConfig {
	return PauseConfig{
		FrameLength: defaultFrameLength,
		HopLength:   defaultHopLength,
		Percentile:  15,
		MinSpanSec:  0.25,
	}
}

// PauseDetector segments a waveform into silence spans using a dynamic
// energy threshold, so detection adapts to the recording's loudness
// instead of relying on an absolute cutoff.
type PauseDetector struct {
	cfg PauseConfig
}

// NewPauseDetector creates a pause detector.
func NewPauseDetector(cfg PauseConfig) *PauseDetector {
	if cfg.FrameLength <= 0 {
		cfg.FrameLength = defaultFrameLength
	}
	if cfg.HopLength <= 0 {
		cfg.HopLength = defaultHopLength
	}
	if cfg.Percentile <= 0 {
		cfg.Percentile = 15
	}
	if cfg.MinSpanSec <= 0 {
		cfg.MinSpanSec = 0.25
	}
	return &PauseDetector{cfg: cfg}
}

// Detect returns silence span durations in seconds, ordered by time.
// A frame is silent when its RMS energy is at or below the configured
// percentile of all frame energies. Runs of consecutive silent frame
// indices merge into one span; a gap of more than one index breaks the
// run. The trailing run is evaluated under the same minimum-duration
// rule as the rest.
func (d *PauseDetector) Detect(samples []float64, sampleRate int) []float64 {
	if sampleRate <= 0 {
		return nil
	}

	energy := frameRMS(samples, d.cfg.FrameLength, d.cfg.HopLength)
	if len(energy) == 0 {
		return nil
	}

	// The comparison is inclusive so a degenerate all-equal-energy signal
	// (an entirely silent recording included) still marks frames silent.
	threshold := percentile(energy, d.cfg.Percentile)

	var silent []int
	for i, e := range energy {
		if e <= threshold {
			silent = append(silent, i)
		}
	}
	if len(silent) == 0 {
		return nil
	}

	frameDur := float64(d.cfg.HopLength) / float64(sampleRate)

	var spans []float64
	start, prev := silent[0], silent[0]
	for _, f := range silent[1:] {
		if f-prev > 1 {
			if dur := float64(prev-start) * frameDur; dur > d.cfg.MinSpanSec {
				spans = append(spans, dur)
			}
			start = f
		}
		prev = f
	}
	if dur := float64(prev-start) * frameDur; dur > d.cfg.MinSpanSec {
		spans = append(spans, dur)
	}
	return spans
}
