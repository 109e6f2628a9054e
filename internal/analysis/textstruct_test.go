package analysis

import (
	"strings"
	"testing"
)

func TestAnalyzeTextStructureBasics(t *testing.T) {
	a := newTestAnalyzer()
	report := a.AnalyzeTextStructure("First point here. Second point there. Third one closes.", "en")

	if report.SentenceCount != 3 {
		t.Errorf("sentence count = %d, want 3", report.SentenceCount)
	}
	if report.AvgSentenceLength != 3 {
		t.Errorf("avg length = %.1f, want 3.0", report.AvgSentenceLength)
	}
	if len(report.LongSentences) != 0 {
		t.Errorf("long sentences = %v, want none", report.LongSentences)
	}
}

func TestAnalyzeTextStructureLongSentence(t *testing.T) {
	a := newTestAnalyzer()

	exactly20 := strings.Repeat("alpha ", 19) + "omega."
	over20 := strings.Repeat("alpha ", 24) + "omega."

	if report := a.AnalyzeTextStructure(exactly20, "en"); len(report.LongSentences) != 0 {
		t.Errorf("a 20-word sentence flagged as long: %v", report.LongSentences)
	}
	report := a.AnalyzeTextStructure(over20, "en")
	if len(report.LongSentences) != 1 {
		t.Fatalf("long sentences = %d, want 1", len(report.LongSentences))
	}
}

func TestAnalyzeTextStructureRepetitions(t *testing.T) {
	a := newTestAnalyzer()
	text := "Because practice matters. Because practice builds habits. Because habits last. Practice now."

	report := a.AnalyzeTextStructure(text, "en")

	if report.Repetitions["because"] != 3 {
		t.Errorf("because = %d, want 3", report.Repetitions["because"])
	}
	if report.Repetitions["practice"] != 3 {
		t.Errorf("practice = %d, want 3", report.Repetitions["practice"])
	}
	// "habits" appears only twice and should not be reported.
	if _, ok := report.Repetitions["habits"]; ok {
		t.Errorf("habits reported with fewer than 3 occurrences")
	}
	// "now" is too short to ever count.
	if _, ok := report.Repetitions["now"]; ok {
		t.Errorf("short word reported: %v", report.Repetitions)
	}
}

func TestSplitSentencesAbbreviations(t *testing.T) {
	cases := []struct {
		text string
		lang string
		want int
	}{
		{"Dr. Smith arrived late. He apologized.", "en", 2},
		{"The value rose to 3.5 percent. Impressive.", "en", 2},
		{"Она живёт на ул. Ленина. Это центр.", "ru", 2},
		{"What happened?! Nobody knows...", "en", 2},
		{"J. K. Rowling wrote it.", "en", 1},
	}
	for _, c := range cases {
		got := splitSentences(c.text, c.lang)
		if len(got) != c.want {
			t.Errorf("splitSentences(%q) = %d sentences %v, want %d", c.text, len(got), got, c.want)
		}
	}
}

func TestAnalyzeTextStructureEmpty(t *testing.T) {
	a := newTestAnalyzer()
	report := a.AnalyzeTextStructure("", "en")

	if report.SentenceCount != 0 || report.AvgSentenceLength != 0 {
		t.Errorf("report = %+v, want zeros for empty text", report)
	}
	if len(report.Repetitions) != 0 {
		t.Errorf("repetitions = %v, want empty", report.Repetitions)
	}
}
