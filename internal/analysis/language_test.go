package analysis

import "testing"

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Привет, как дела сегодня?", "ru"},
		{"Hello there, how are you today?", "en"},
		{"Сижу и debug весь день", "ru"},
		{"mostly english с парой слов", "en"},
		{"", "en"},
		{"12345 !!!", "en"},
		// Digits and punctuation dilute the Cyrillic share.
		{"да 12345678", "en"},
	}
	for _, c := range cases {
		if got := DetectLanguage(c.text); got != c.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}
