package title

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var lowerUpperRgx = regexp.MustCompile(`[a-z][A-Z]`)

// Case lowercases minor words that are neither first nor last. Titles with
// fewer than three words, without Latin letters or with a casing that looks
// deliberate are returned as given.
func (f *Formatter) Case(s string) string {
	if !hasLatinLetters(s) || hasStrangeCapitalization(s) {
		return s
	}

	words := strings.Fields(s)
	if len(words) <= 2 {
		return s
	}

	for i := 1; i < len(words)-1; i++ {
		lower := strings.ToLower(words[i])
		if _, ok := f.minorWords[lower]; ok {
			words[i] = lower
		}
	}

	lead := s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsSpace))]
	trail := s[len(strings.TrimRightFunc(s, unicode.IsSpace)):]
	return lead + strings.Join(words, " ") + trail
}

func letterCounts(s string) (upper, lower int) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'A' && c <= 'Z':
			upper++
		case c >= 'a' && c <= 'z':
			lower++
		}
	}
	return upper, lower
}

func hasLatinLetters(s string) bool {
	upper, lower := letterCounts(s)
	return upper > 0 || lower > 0
}

func hasStrangeCapitalization(s string) bool {
	if lowerUpperRgx.MatchString(s) {
		return true
	}

	upper, lower := letterCounts(s)
	if upper == 0 || lower == 0 || upper > lower {
		return true
	}

	for _, w := range strings.Fields(s) {
		if utf8.RuneCountInString(w) > 1 && !strings.Contains(w, ".") && strings.ToUpper(w) == w {
			return true
		}
	}
	return false
}
