package analysis

import "unicode"

// DetectLanguage guesses between Russian and English by script mix.
// Cyrillic must both outnumber Latin and make up over 30% of the whole
// text, spaces and digits included, before "ru" is chosen; everything
// else defaults to "en".
func DetectLanguage(text string) string {
	var cyrillic, latin, total int
	for _, r := range text {
		total++
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}
	if cyrillic > latin && float64(cyrillic) > 0.3*float64(total) {
		return "ru"
	}
	return "en"
}
