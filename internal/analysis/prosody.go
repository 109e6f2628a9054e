package analysis

import "math"

// ProsodyProfile summarizes pitch and loudness contour statistics for
// one utterance. Pitch values are rounded to 1 decimal and energy values
// to 4 decimals so repeated analysis of the same audio reports stably.
type ProsodyProfile struct {
	PitchMean      float64 `json:"pitch_mean"`
	PitchVariance  float64 `json:"pitch_variance"`
	EnergyMean     float64 `json:"energy_mean"`
	EnergyVariance float64 `json:"energy_variance"`
	Monotony       string  `json:"monotony"`
	Dynamics       string  `json:"dynamics"`
}

// ProsodyConfig holds pitch and energy extraction parameters.
type ProsodyConfig struct {
	FrameLength int
	HopLength   int
	PitchMinHz  float64 // lower bound of the voice band
	PitchMaxHz  float64 // upper bound of the voice band
	MinVoicing  float64 // minimum normalized autocorrelation to accept a frame as voiced
}

// DefaultProsodyConfig returns parameters tuned for 16kHz speech,
// with the pitch search restricted to the human voice band.
func DefaultProsodyConfig() ProsodyConfig {
	return ProsodyConfig{
		FrameLength: defaultFrameLength,
		HopLength:   defaultHopLength,
		PitchMinHz:  75,
		PitchMaxHz:  350,
		MinVoicing:  0.5,
	}
}

// ProsodyAnalyzer extracts a ProsodyProfile from a waveform.
type ProsodyAnalyzer struct {
	cfg ProsodyConfig
}

// NewProsodyAnalyzer creates a prosody analyzer.
func NewProsodyAnalyzer(cfg ProsodyConfig) *ProsodyAnalyzer {
	if cfg.FrameLength <= 0 {
		cfg.FrameLength = defaultFrameLength
	}
	if cfg.HopLength <= 0 {
		cfg.HopLength = defaultHopLength
	}
	if cfg.PitchMinHz <= 0 {
		cfg.PitchMinHz = 75
	}
	if cfg.PitchMaxHz <= cfg.PitchMinHz {
		cfg.PitchMaxHz = 350
	}
	if cfg.MinVoicing <= 0 {
		cfg.MinVoicing = 0.5
	}
	return &ProsodyAnalyzer{cfg: cfg}
}

// Analyze computes pitch and energy statistics. Pitch statistics cover
// voiced frames only; with fewer than 2 voiced observations both pitch
// mean and variance are 0. Energy statistics cover every frame.
func (p *ProsodyAnalyzer) Analyze(samples []float64, sampleRate int, lang string) ProsodyProfile {
	var profile ProsodyProfile
	if sampleRate > 0 {
		pitch := p.trackPitch(samples, sampleRate)
		if len(pitch) > 10 {
			pitch = correctOctaveJumps(pitch)
		}
		if len(pitch) > 1 {
			profile.PitchMean = roundTo(mean(pitch), 1)
			profile.PitchVariance = roundTo(stddev(pitch), 1)
		}

		energy := frameRMS(samples, p.cfg.FrameLength, p.cfg.HopLength)
		profile.EnergyMean = roundTo(mean(energy), 4)
		profile.EnergyVariance = roundTo(stddev(energy), 4)
	}

	profile.Monotony = MonotonyLabel(profile.PitchVariance, lang)
	profile.Dynamics = DynamicsLabel(profile.EnergyVariance, lang)
	return profile
}

// trackPitch estimates one fundamental frequency per frame via normalized
// autocorrelation over the configured voice band, keeping only frames
// with a sufficiently confident candidate.
func (p *ProsodyAnalyzer) trackPitch(samples []float64, sampleRate int) []float64 {
	minLag := int(float64(sampleRate) / p.cfg.PitchMaxHz)
	maxLag := int(float64(sampleRate) / p.cfg.PitchMinHz)
	if minLag < 1 {
		minLag = 1
	}

	var pitch []float64
	for start := 0; start+p.cfg.FrameLength <= len(samples); start += p.cfg.HopLength {
		frame := samples[start : start+p.cfg.FrameLength]
		if f0 := framePitch(frame, sampleRate, minLag, maxLag, p.cfg.MinVoicing); f0 > 0 {
			pitch = append(pitch, f0)
		}
	}
	return pitch
}

// framePitch returns the fundamental frequency of one frame, or 0 for an
// unvoiced/silent frame. The best-scoring lag wins; a subharmonic check
// then prefers an integer fraction of that lag when it scores nearly as
// well, so a doubled or tripled period never masks the true octave.
func framePitch(frame []float64, sampleRate, minLag, maxLag int, minVoicing float64) float64 {
	if maxLag >= len(frame) {
		maxLag = len(frame) - 1
	}
	if maxLag < minLag {
		return 0
	}

	var frameEnergy float64
	for _, s := range frame {
		frameEnergy += s * s
	}
	if frameEnergy == 0 {
		return 0
	}

	scores := make([]float64, maxLag-minLag+1)
	best := 0.0
	bestLag := 0
	for lag := minLag; lag <= maxLag; lag++ {
		var cross, e0, e1 float64
		for i := 0; i < len(frame)-lag; i++ {
			cross += frame[i] * frame[i+lag]
			e0 += frame[i] * frame[i]
			e1 += frame[i+lag] * frame[i+lag]
		}
		if e0 == 0 || e1 == 0 {
			continue
		}
		score := cross / math.Sqrt(e0*e1)
		scores[lag-minLag] = score
		if score > best {
			best = score
			bestLag = lag
		}
	}
	if bestLag == 0 || best < minVoicing {
		return 0
	}

	chosen := bestLag
	for div := 2; div <= 4; div++ {
		cand := bestLag / div
		for lag := cand - 1; lag <= cand+1; lag++ {
			if lag >= minLag && lag <= maxLag && scores[lag-minLag] >= best*0.95 && lag < chosen {
				chosen = lag
			}
		}
	}

	return float64(sampleRate) / float64(chosen)
}

// correctOctaveJumps replaces pitch observations that deviate from their
// local moving median by more than an octave-ish factor with the median
// itself. This smooths the halving/doubling glitches autocorrelation
// trackers produce without touching genuine intonation movement.
func correctOctaveJumps(pitch []float64) []float64 {
	const window = 5
	const factor = 1.8

	out := make([]float64, len(pitch))
	for i := range pitch {
		lo := i - window/2
		if lo < 0 {
			lo = 0
		}
		hi := i + window/2 + 1
		if hi > len(pitch) {
			hi = len(pitch)
		}
		med := percentile(pitch[lo:hi], 50)

		if med > 0 && (pitch[i] > med*factor || pitch[i] < med/factor) {
			out[i] = med
		} else {
			out[i] = pitch[i]
		}
	}
	return out
}
