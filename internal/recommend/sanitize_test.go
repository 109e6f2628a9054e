package recommend

import "testing"

func TestSanitizeHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<b>bold</b> stays", "<b>bold</b> stays"},
		{"<script>alert(1)</script>", "alert(1)"},
		{"<div class=\"x\">text</div>", "text"},
		{"<B>upper</B>", "<b>upper</b>"},
		{"<b class=\"x\">attrs stripped</b>", "<b>attrs stripped</b>"},
		{"<a href=\"https://example.com\">link</a>", "<a href=\"https://example.com\">link</a>"},
		{"<a href=\"https://example.com\" onclick=\"x()\">link</a>", "<a href=\"https://example.com\">link</a>"},
		{"<a onclick=\"x()\">no href</a>", "<a>no href</a>"},
		{"plain text", "plain text"},
		{"<blockquote>quote</blockquote>", "<blockquote>quote</blockquote>"},
		{"<img src=\"x\">", ""},
	}
	for _, c := range cases {
		if got := SanitizeHTML(c.in); got != c.want {
			t.Errorf("SanitizeHTML(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
