package tally

import (
	"regexp"
	"strings"
)

var markupPattern = regexp.MustCompile(`<[^>]*>`)

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
)

// Sanitize strips embedded markup, decodes the &amp; &lt; &gt; &quot;
// entities and trims whitespace. Decoding can expose new markup
// ("&lt;b&gt;"), so the step repeats until the value is stable; every step
// that changes the value shortens it, which bounds the loop and makes
// Sanitize idempotent.
func Sanitize(s string) string {
	for {
		next := sanitizeStep(s)
		if next == s {
			return s
		}
		s = next
	}
}

func sanitizeStep(s string) string {
	s = markupPattern.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	return strings.TrimSpace(s)
}

// field returns the first non-empty sanitized value among the alternative
// tags, or "" when none is present.
func field(body string, tags ...string) string {
	for _, tag := range tags {
		raw, ok := ExtractTag(body, tag)
		if !ok {
			continue
		}
		if v := Sanitize(raw); v != "" {
			return v
		}
	}
	return ""
}

// fieldOr is field with a default for the absent case.
func fieldOr(body, def string, tags ...string) string {
	if v := field(body, tags...); v != "" {
		return v
	}
	return def
}
