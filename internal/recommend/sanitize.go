package recommend

import (
	"regexp"
	"strings"
)

// Tags permitted in recommendation output. Everything else is
// stripped, including its attributes.
var allowedTags = map[string]bool{
	"b": true, "i": true, "u": true,
	"code": true, "pre": true,
	"a": true, "blockquote": true,
}

var (
	tagPattern  = regexp.MustCompile(`(?i)</?[a-zA-Z0-9]+[^>]*>`)
	tagName     = regexp.MustCompile(`(?i)^</?([a-zA-Z0-9]+)`)
	hrefPattern = regexp.MustCompile(`(?i)\shref="[^"]+"`)
)

// SanitizeHTML removes every HTML tag except the allowed formatting
// set. Allowed tags lose their attributes, except href on anchors.
func SanitizeHTML(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(tag string) string {
		m := tagName.FindStringSubmatch(tag)
		if m == nil {
			return ""
		}
		name := strings.ToLower(m[1])
		if !allowedTags[name] {
			return ""
		}

		closing := strings.HasPrefix(tag, "</")
		if closing {
			return "</" + name + ">"
		}
		if name == "a" {
			if href := hrefPattern.FindString(tag); href != "" {
				return "<a" + href + ">"
			}
		}
		return "<" + name + ">"
	})
}
