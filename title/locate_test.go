package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		in   string
		want Annotation
	}{
		{"Song feat. X", Annotation{Kind: Featuring, Start: 5}},
		{"Song (FEATURING X)", Annotation{Kind: Featuring, Start: 5}},
		{"Song [ft X]", Annotation{Kind: Featuring, Start: 5}},
		{"Track [Extended Remix]", Annotation{Kind: Version, Start: 6}},
		{"Song [Club Remix] ft. X", Annotation{Kind: Version, Start: 5}},
		{"Song (feat. X Remix)", Annotation{Kind: Featuring, Start: 5}},
		{"Song [A^B Remix]", Annotation{Kind: Version, Start: 5}},
		{"Plain Title", Annotation{Kind: None, Start: -1}},
		{"Left Behind", Annotation{Kind: None, Start: -1}},
		{"Soft Features", Annotation{Kind: None, Start: -1}},
		{"(Remix)", Annotation{Kind: None, Start: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Locate(tc.in))
		})
	}
}

func TestSplit(t *testing.T) {
	name, info := Split("Song (feat. A) [Club Remix]")
	assert.Equal(t, "Song ", name)
	assert.Equal(t, "(feat. A) [Club Remix]", info)

	name, info = Split("Plain Title")
	assert.Equal(t, "Plain Title", name)
	assert.Empty(t, info)
}

func TestAnnotationKindString(t *testing.T) {
	assert.Equal(t, "featuring", Featuring.String())
	assert.Equal(t, "version", Version.String())
	assert.Equal(t, "none", None.String())
}

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"feat. A and B", "(ft. A & B)"},
		{"[ft. A]", "(ft. A)"},
		{"Featuring A", "(ft. A)"},
		{"ft. A  ", "(ft. A)  "},
		{"(feat. A )", "(ft. A )"},
		{"(feat. A)[Club Remix]", "(ft. A) (Club Remix)"},
		{"[Extended Remix]", "(Extended Remix)"},
		{"[Drum and Bass Remix]", "(Drum and Bass Remix)"},
		{"(Remix)", "(Remix)"},
		{"ft", "(ft.)"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatInfo(tc.in))
		})
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lost In The Night (Extended Remix)", "Lost in the Night (Extended Remix)"},
		{"Song  [Club Dub]", "Song (Club Dub)"},
		{"  [Club Dub]", "  (Club Dub)"},
		{"Walk In The Park (Live At The Garden) Again", "Walk in the Park (Live at the Garden) Again"},
		{"Ride (Dance With Me (feat. Kay)) Tonight", "Ride (Dance with Me (ft. Kay)) Tonight"},
		{"No Groups Of Any Kind", "No Groups of Any Kind"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatName(tc.in))
		})
	}
}

func TestFirstGroup(t *testing.T) {
	open, end := firstGroup("a (b (c) d) e")
	assert.Equal(t, 2, open)
	assert.Equal(t, 10, end)

	open, end = firstGroup("a (b (c) d")
	assert.Equal(t, -1, open)
	assert.Equal(t, -1, end)

	open, end = firstGroup("no groups")
	assert.Equal(t, -1, open)
	assert.Equal(t, -1, end)
}
