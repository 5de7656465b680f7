package pofile

import "strings"

// escape renders a field value as a quoted PO string: double quotes become
// \" and real newlines become the two-character sequence \n.
func escape(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}

// unescape decodes a quoted PO field value. The raw text is trimmed; when
// it opens with a double quote, the leading quote and the final character
// (the expected closing quote) are dropped before \" and \n sequences are
// decoded. Malformed quoting is not an error.
func unescape(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `"`) {
		s = s[1:]
		if len(s) > 0 {
			s = s[:len(s)-1]
		}
	}
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	return s
}
