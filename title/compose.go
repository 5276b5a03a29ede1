package title

import (
	"strings"
	"unicode"
)

// FormatName formats a title that has no leading annotation. A version
// clause found anywhere is split off and canonicalized, otherwise the first
// parenthesized group is formatted recursively as a title of its own.
func (f *Formatter) FormatName(s string) string {
	return f.formatName(s, 0)
}

func (f *Formatter) formatName(s string, depth int) string {
	if loc := versionRgx.FindStringIndex(s); loc != nil {
		version := formatVersion(s[loc[0]:])
		head := strings.TrimRightFunc(s[:loc[0]], unicode.IsSpace)
		if head == "" {
			return s[:loc[0]] + version
		}
		return f.Case(head) + " " + version
	}

	if depth >= maxDepth {
		return f.Case(s)
	}

	open, end := firstGroup(s)
	if open < 0 {
		return f.Case(s)
	}
	return f.Case(s[:open]) + "(" + f.format(s[open+1:end], depth+1) + ")" + f.Case(s[end+1:])
}

// firstGroup returns the offsets of the first '(' and its matching ')', or
// -1, -1 when there is no '(' or it is never closed.
func firstGroup(s string) (open, end int) {
	open = strings.IndexByte(s, '(')
	if open < 0 {
		return -1, -1
	}

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return open, i
			}
		}
	}
	return -1, -1
}
