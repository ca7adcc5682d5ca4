// Package tally reads Tally backup exports (.xml/.tsf) into flat records.
//
// The export has no fixed schema and is often not well-formed, so nothing here
// builds a document tree. A small scanner finds elements by name: the first
// close tag after an opening tag ends the element, same-named nesting is not
// tracked, and when a tag repeats only the first occurrence is used.
package tally

import "strings"

// Element is a matched <TAG ...>body</TAG> occurrence.
type Element struct {
	// Attrs is the raw attribute text of the opening tag.
	Attrs string
	// Body is the raw text between the opening and closing tag.
	Body string
}

// ExtractTag returns the body of the first tag element in markup. Tag names
// match case-insensitively and attributes on the opening tag are ignored.
// A path such as "GSTDETAILS.LIST/HSNCODE" is resolved one segment at a time.
func ExtractTag(markup, tag string) (string, bool) {
	body := markup
	for _, segment := range strings.Split(tag, "/") {
		el, _, ok := nextElement(body, asciiLower(body), asciiLower(segment), 0)
		if !ok {
			return "", false
		}
		body = el.Body
	}
	return body, true
}

// Blocks returns every tag element in markup, in document order. Scanning
// resumes after each element's close tag, so elements never overlap.
func Blocks(markup, tag string) []Element {
	lower := asciiLower(markup)
	name := asciiLower(tag)

	var out []Element
	for pos := 0; pos < len(markup); {
		el, end, ok := nextElement(markup, lower, name, pos)
		if !ok {
			break
		}
		out = append(out, el)
		pos = end
	}
	return out
}

// nextElement finds the first complete name element at or after pos. lower
// must be the ASCII-lowered markup so byte offsets line up. It returns the
// element and the offset just past its close tag.
func nextElement(markup, lower, name string, pos int) (Element, int, bool) {
	if name == "" {
		return Element{}, 0, false
	}
	open := "<" + name
	closeTag := "</" + name + ">"

	for pos < len(lower) {
		i := strings.Index(lower[pos:], open)
		if i < 0 {
			return Element{}, 0, false
		}
		start := pos + i
		after := start + len(open)
		if after >= len(lower) {
			return Element{}, 0, false
		}

		switch c := lower[after]; {
		case c == '>':
			bodyStart := after + 1
			j := strings.Index(lower[bodyStart:], closeTag)
			if j < 0 {
				return Element{}, 0, false
			}
			return Element{Body: markup[bodyStart : bodyStart+j]}, bodyStart + j + len(closeTag), true

		case isSpace(c) || c == '/':
			k := strings.IndexByte(lower[after:], '>')
			if k < 0 {
				return Element{}, 0, false
			}
			gt := after + k
			attrs := markup[after:gt]
			if strings.HasSuffix(strings.TrimRight(attrs, " \t\r\n"), "/") {
				attrs = strings.TrimSuffix(strings.TrimRight(attrs, " \t\r\n"), "/")
				return Element{Attrs: strings.TrimSpace(attrs)}, gt + 1, true
			}
			bodyStart := gt + 1
			j := strings.Index(lower[bodyStart:], closeTag)
			if j < 0 {
				return Element{}, 0, false
			}
			return Element{
				Attrs: strings.TrimSpace(attrs),
				Body:  markup[bodyStart : bodyStart+j],
			}, bodyStart + j + len(closeTag), true

		default:
			// Longer tag name sharing the prefix, e.g. <LEDGERNAME> while looking for <LEDGER>.
			pos = after
		}
	}
	return Element{}, 0, false
}

// Attr returns the value of a quoted attribute in an opening tag's attribute
// text. Keys match case-insensitively.
func Attr(attrs, key string) (string, bool) {
	lower := asciiLower(attrs)
	key = asciiLower(key)

	for pos := 0; pos < len(lower); {
		i := strings.Index(lower[pos:], key)
		if i < 0 {
			return "", false
		}
		start := pos + i
		pos = start + len(key)
		if start > 0 && !isSpace(lower[start-1]) {
			continue
		}

		rest := strings.TrimLeft(attrs[pos:], " \t\r\n")
		if !strings.HasPrefix(rest, "=") {
			continue
		}
		rest = strings.TrimLeft(rest[1:], " \t\r\n")
		if rest == "" {
			return "", false
		}
		quote := rest[0]
		if quote != '"' && quote != '\'' {
			continue
		}
		end := strings.IndexByte(rest[1:], quote)
		if end < 0 {
			return "", false
		}
		return rest[1 : end+1], true
	}
	return "", false
}

// asciiLower lowers A-Z only, keeping byte offsets identical to s.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
