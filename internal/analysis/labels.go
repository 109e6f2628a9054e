package analysis

import "math"

// Speaking-rate bounds in words per minute. Both are inclusive on the
// optimal side.
const (
	OptimalWPMMin = 120
	OptimalWPMMax = 150
)

// ratingBand pairs an exclusive lower bound with localized label text.
// Bands are evaluated in order, so the numeric cutoffs live in exactly
// one place and only the display text varies per language.
type ratingBand struct {
	min    float64
	labels map[string]string
}

var monotonyBands = []ratingBand{
	{min: 60, labels: map[string]string{
		"en": "very low (lively sound)",
		"ru": "очень низкая (живое звучание)",
	}},
	{min: 30, labels: map[string]string{
		"en": "moderate",
		"ru": "умеренная",
	}},
	{min: math.Inf(-1), labels: map[string]string{
		"en": "high (monotonous)",
		"ru": "высокая (монотонно)",
	}},
}

var dynamicsBands = []ratingBand{
	{min: 0.03, labels: map[string]string{
		"en": "pronounced dynamics",
		"ru": "ярко выраженная динамика",
	}},
	{min: 0.015, labels: map[string]string{
		"en": "medium dynamics",
		"ru": "средняя динамика",
	}},
	{min: math.Inf(-1), labels: map[string]string{
		"en": "flat (almost no volume changes)",
		"ru": "плоская (почти нет изменений громкости)",
	}},
}

var tempoLabels = map[string]map[string]string{
	"optimal": {"en": "optimal", "ru": "оптимальный"},
	"slow":    {"en": "too slow", "ru": "слишком медленный"},
	"fast":    {"en": "too fast", "ru": "слишком быстрый"},
}

func labelLang(lang string) string {
	if lang == "ru" {
		return "ru"
	}
	return "en"
}

func classify(bands []ratingBand, value float64, lang string) string {
	l := labelLang(lang)
	for _, b := range bands {
		if value > b.min {
			return b.labels[l]
		}
	}
	return bands[len(bands)-1].labels[l]
}

// MonotonyLabel classifies pitch variability (Hz) into an expressiveness
// rating. Higher variability never yields a worse rating.
func MonotonyLabel(pitchVariance float64, lang string) string {
	return classify(monotonyBands, pitchVariance, lang)
}

// DynamicsLabel classifies energy variability into a loudness-dynamics
// rating. Higher variability never yields a worse rating.
func DynamicsLabel(energyVariance float64, lang string) string {
	return classify(dynamicsBands, energyVariance, lang)
}

// TempoLabel classifies words-per-minute against the optimal band.
// The bounds 120 and 150 are both rated optimal.
func TempoLabel(wpm float64, lang string) string {
	l := labelLang(lang)
	switch {
	case wpm >= OptimalWPMMin && wpm <= OptimalWPMMax:
		return tempoLabels["optimal"][l]
	case wpm < OptimalWPMMin:
		return tempoLabels["slow"][l]
	default:
		return tempoLabels["fast"][l]
	}
}
