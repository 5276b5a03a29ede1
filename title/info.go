package title

import (
	"regexp"
	"strings"
	"unicode"
)

var andRgx = regexp.MustCompile(`\band\b`)

// FormatInfo canonicalizes the annotation part of a title: featuring clauses
// become "(ft. Names)" with "and" replaced by "&", version clauses become
// "(Label Remix)" and clauses glued together get a separating space.
func (f *Formatter) FormatInfo(s string) string {
	return separateClauses(formatVersion(formatFeaturing(s)))
}

func formatFeaturing(s string) string {
	matches := featuringRgx.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		names := s[m[2]:m[3]]
		closed := m[5] > m[4]

		b.WriteString(s[last:m[0]])
		if closed {
			b.WriteString("(ft." + names + ")")
		} else {
			// keep whitespace that trailed an unbracketed list outside the clause
			trimmed := strings.TrimRightFunc(names, unicode.IsSpace)
			b.WriteString("(ft." + trimmed + ")")
			b.WriteString(names[len(trimmed):])
		}
		last = m[1]
	}
	b.WriteString(s[last:])

	return andRgx.ReplaceAllString(b.String(), "&")
}

func formatVersion(s string) string {
	return versionRgx.ReplaceAllString(s, "($1$2)")
}

func separateClauses(s string) string {
	return strings.ReplaceAll(s, ")(", ") (")
}
