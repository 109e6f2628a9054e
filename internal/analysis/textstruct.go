package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TextStructureReport captures sentence-level statistics of a transcript.
type TextStructureReport struct {
	SentenceCount     int            `json:"sentence_count"`
	AvgSentenceLength float64        `json:"avg_sentence_length"`
	LongSentences     []string       `json:"long_sentences"`
	Repetitions       map[string]int `json:"repetitions"`
}

const (
	longSentenceWords = 20
	repeatMinLength   = 4 // words must be strictly longer than this
	repeatMinCount    = 3
)

// Abbreviations that end in a period without terminating a sentence.
var abbreviations = map[string]map[string]struct{}{
	"en": toLowerSet("mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "vs", "etc", "e.g", "i.e", "inc", "dept", "approx"),
	"ru": toLowerSet("т", "д", "п", "др", "пр", "г", "гг", "им", "ул", "стр", "см", "напр", "тыс", "млн"),
}

func toLowerSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// AnalyzeTextStructure segments the transcript into sentences using
// language-aware rules and reports length and repetition statistics.
// Empty input yields a zero-valued report, never an error.
func (a *Analyzer) AnalyzeTextStructure(text, lang string) TextStructureReport {
	report := TextStructureReport{Repetitions: make(map[string]int)}

	sentences := splitSentences(text, lang)
	report.SentenceCount = len(sentences)

	if len(sentences) > 0 {
		totalWords := 0
		for _, s := range sentences {
			n := len(strings.Fields(s))
			totalWords += n
			if n > longSentenceWords {
				report.LongSentences = append(report.LongSentences, s)
			}
		}
		report.AvgSentenceLength = float64(totalWords) / float64(len(sentences))
	}

	counts := make(map[string]int)
	for _, w := range tokenize(text) {
		if utf8.RuneCountInString(w) > repeatMinLength {
			counts[w]++
		}
	}
	for w, c := range counts {
		if c >= repeatMinCount {
			report.Repetitions[w] = c
		}
	}
	return report
}

// splitSentences breaks text into sentences on terminal punctuation,
// keeping periods that belong to known abbreviations, initials and
// decimal numbers inside the current sentence.
func splitSentences(text, lang string) []string {
	abbrevs, ok := abbreviations[lang]
	if !ok {
		abbrevs = abbreviations["en"]
	}

	runes := []rune(text)
	var sentences []string
	var current []rune

	flush := func() {
		s := strings.TrimSpace(string(current))
		if s != "" {
			sentences = append(sentences, s)
		}
		current = current[:0]
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current = append(current, r)

		if r != '.' && r != '!' && r != '?' && r != '…' {
			continue
		}

		// Swallow the rest of a terminator run ("?!", "...").
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			current = append(current, runes[i])
		}

		if r == '.' {
			// Decimal point: digit on both sides.
			if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) && i >= 1 && unicode.IsDigit(runes[i-1]) {
				continue
			}
			if w := trailingWord(current[:len(current)-1]); w != "" {
				if _, isAbbrev := abbrevs[strings.ToLower(w)]; isAbbrev || utf8.RuneCountInString(w) == 1 {
					continue
				}
			}
		}

		// A sentence ends only at end of text or before whitespace.
		if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) {
			flush()
		}
	}
	flush()

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

// trailingWord returns the run of letters immediately before the
// terminator, used for abbreviation and initial detection.
func trailingWord(runes []rune) string {
	end := len(runes)
	start := end
	for start > 0 && unicode.IsLetter(runes[start-1]) {
		start--
	}
	return string(runes[start:end])
}
