// Package title normalizes music track titles: title casing, a canonical
// "(ft. Artist)" featuring notation and a canonical "(Label Remix)" version
// notation. Every function in this package is total and never fails.
package title

import "strings"

const maxDepth = 32

var defaultMinorWords = []string{
	// articles
	"the", "a", "an",
	// conjunctions
	"if", "and", "but", "for", "nor", "or", "yet",
	// prepositions
	"in", "on", "at", "to", "by", "from", "of", "as", "off",
	"per", "than", "via", "with",
}

// Formatter holds the read-only lookup tables used while formatting. It is
// safe for concurrent use.
type Formatter struct {
	minorWords map[string]struct{}
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithMinorWords adds words that are lowercased when they are neither the
// first nor the last word of a segment.
func WithMinorWords(words ...string) Option {
	return func(f *Formatter) {
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				f.minorWords[w] = struct{}{}
			}
		}
	}
}

// New returns a Formatter using the default minor words plus any added by opts.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		minorWords: make(map[string]struct{}, len(defaultMinorWords)),
	}
	for _, w := range defaultMinorWords {
		f.minorWords[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var std = New()

// Format returns the normalized form of a track title using the default
// minor word table.
func Format(s string) string { return std.Format(s) }

// Case title-cases s using the default minor word table.
func Case(s string) string { return std.Case(s) }

// FormatName formats the name part of a title using the default minor word table.
func FormatName(s string) string { return std.FormatName(s) }

// FormatInfo canonicalizes the annotation part of a title.
func FormatInfo(s string) string { return std.FormatInfo(s) }

// Format splits s at the earliest featuring or version annotation, formats
// the name part with FormatName and the annotation part with FormatInfo and
// joins them back together. A pass can close a bracket that moves the split
// point of the next pass, so passes repeat until the result is stable.
func (f *Formatter) Format(s string) string {
	out := f.format(s, 0)
	for i := 0; i < maxDepth && out != s; i++ {
		s, out = out, f.format(out, 0)
	}
	return out
}

func (f *Formatter) format(s string, depth int) string {
	a := Locate(s)
	if a.Kind == None {
		return f.formatName(s, depth)
	}
	name, info := s[:a.Start], s[a.Start:]
	return f.formatName(name, depth) + f.FormatInfo(info)
}

// Changed reports whether formatting s produces a different string.
func (f *Formatter) Changed(s string) (string, bool) {
	out := f.Format(s)
	return out, out != s
}
