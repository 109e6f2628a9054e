package analysis

import (
	"regexp"
	"strings"
)

// wordPattern matches word tokens: runs of letters, digits and
// underscores in any script. Punctuation is a separator.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// tokenize lower-cases text and splits it into word tokens.
func tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// FillerReport maps detected filler tokens to occurrence counts.
// Total always equals the sum of the breakdown values.
type FillerReport struct {
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
}

// CountFillers counts occurrences of the language's filler vocabulary in
// the transcript. Matching is case-insensitive and whole-word; multi-word
// vocabulary entries never match at the token level.
func (a *Analyzer) CountFillers(text, lang string) FillerReport {
	set := a.vocab.Set(lang)

	report := FillerReport{Breakdown: make(map[string]int)}
	for _, w := range tokenize(text) {
		if _, ok := set[w]; ok {
			report.Breakdown[w]++
			report.Total++
		}
	}
	return report
}
