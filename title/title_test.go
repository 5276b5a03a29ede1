package title

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

var formatCases = []struct {
	name string
	in   string
	want string
}{
	{"minor words", "A Song Of Fire And Ice", "A Song of Fire and Ice"},
	{"featuring with and", "Song (feat. Drake and Future)", "Song (ft. Drake & Future)"},
	{"bracketed version", "Track [Extended Remix]", "Track (Extended Remix)"},
	{"two words", "the fog", "the fog"},
	{"all caps word", "NASA Announcement", "NASA Announcement"},
	{"camel case", "iPhone Unboxing", "iPhone Unboxing"},
	{"non latin", "東京の夜", "東京の夜"},
	{"empty", "", ""},
	{"whitespace only", "   ", "   "},
	{"nested featuring", "Title (Other Song (feat. X) Remix)", "Title (Other Song (ft. X) Remix)"},
	{"parenthetical subtitle", "Walk In The Park (Live At The Garden)", "Walk in the Park (Live at the Garden)"},
	{"featuring after group", "Dance With Me (Club Mix) feat. Someone", "Dance with Me (Club Mix) (ft. Someone)"},
	{"surrounding whitespace", "  A Tale Of Two Cities  ", "  A Tale of Two Cities  "},
	{"unbracketed featuring keeps trailing space", "  Song feat. Drake  ", "  Song (ft. Drake)  "},
	{"version word", "Lose Yourself [Radio Edit Version]", "Lose Yourself (Radio Edit Version)"},
	{"featuring then version", "Song (feat. A) [Club Remix]", "Song (ft. A) (Club Remix)"},
	{"glued clauses", "Song (feat. A)[Club Remix]", "Song (ft. A) (Club Remix)"},
	{"upper case marker", "Song FT. Drake", "Song (ft. Drake)"},
	{"marker inside word", "Left Out In The Cold", "Left Out in the Cold"},
	{"unbracketed version word", "Summer Version", "Summer Version"},
	{"clause tie", "Song (feat. X Remix)", "Song (ft. X Remix)"},
	{"unbalanced parenthesis", "Broken (Title Of The Song", "Broken (Title of the Song"},
	{"stray closing parenthesis", "Stray ) Paren Of Doom", "Stray ) Paren of Doom"},
	{"and kept without featuring", "Track [Drum and Bass Remix]", "Track (Drum and Bass Remix)"},
	{"featuring and dub", "Song feat. A and B [Deep Dub]", "Song (ft. A & B) (Deep Dub)"},
	{"abbreviation", "Welcome To The U.S.A. Tour", "Welcome to the U.S.A. Tour"},
	{"featuring inside open version bracket", "Song [Club feat. A Remix [Edit]]", "Song (Club (ft. A Remix) [Edit]]"},
	{"unclosed bracket before marker", "[ Ft. Dub", "( (ft. Dub)"},
}

func TestFormat(t *testing.T) {
	for _, tc := range formatCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.in))
		})
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	for _, tc := range formatCases {
		t.Run(tc.name, func(t *testing.T) {
			once := Format(tc.in)
			assert.Equal(t, once, Format(once))
		})
	}
}

func TestFormatIsIdempotentOnGeneratedTitles(t *testing.T) {
	tokens := []string{
		"Song", "Of", "The", "and", "Club", "A", "B",
		"feat.", "Ft.", "featuring", "Remix", "Dub", "Version",
		"(", ")", "[", "]", " ", "  ",
	}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 5000; i++ {
		var b strings.Builder
		for n := 1 + rng.Intn(12); n > 0; n-- {
			b.WriteString(tokens[rng.Intn(len(tokens))])
			if rng.Intn(2) == 0 {
				b.WriteByte(' ')
			}
		}
		in := b.String()
		once := Format(in)
		if !assert.Equal(t, once, Format(once), "formatting %q twice", in) {
			return
		}
	}
}

func TestFormatPreservesSurroundingWhitespace(t *testing.T) {
	for _, tc := range formatCases {
		for _, pad := range []string{" ", "\t", "  \n"} {
			in := pad + tc.in + pad
			out := Format(in)
			if strings.TrimSpace(tc.in) == "" {
				assert.Equal(t, in, out)
				continue
			}
			assert.Equal(t, leadingSpace(in), leadingSpace(out), "leading whitespace of %q", in)
			assert.Equal(t, trailingSpace(in), trailingSpace(out), "trailing whitespace of %q", in)
		}
	}
}

func TestChanged(t *testing.T) {
	out, changed := New().Changed("Into The Wild")
	assert.True(t, changed)
	assert.Equal(t, "Into the Wild", out)

	out, changed = New().Changed("Into the Wild")
	assert.False(t, changed)
	assert.Equal(t, "Into the Wild", out)
}

func TestDeepNestingTerminates(t *testing.T) {
	in := strings.Repeat("(", 100) + "Deep Song Of Night" + strings.Repeat(")", 100)
	assert.Equal(t, strings.Replace(in, "Of", "of", 1), Format(in))
}

func leadingSpace(s string) string {
	return s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsSpace))]
}

func trailingSpace(s string) string {
	return s[len(strings.TrimRightFunc(s, unicode.IsSpace)):]
}

type CaseSuite struct {
	suite.Suite
}

func TestCaseSuite(t *testing.T) {
	suite.Run(t, new(CaseSuite))
}

func (s *CaseSuite) TestMinorWords() {
	s.Equal("Into the Wild", Case("Into The Wild"))
	s.Equal("A Song of Fire and Ice", Case("A Song Of Fire And Ice"))
	s.Equal("The Fog Of", Case("The Fog Of"), "last word is kept")
	s.Equal("Of Mice and Men", Case("Of Mice And Men"), "first word is kept")
}

func (s *CaseSuite) TestShortTitles() {
	s.Equal("the fog", Case("the fog"))
	s.Equal("Of The", Case("Of The"))
	s.Equal("Single", Case("Single"))
}

func (s *CaseSuite) TestStrangeCapitalization() {
	for _, in := range []string{
		"iPhone Unboxing Of Doom",
		"all lower case words here",
		"ALL UPPER CASE WORDS",
		"Song Of The DJ",
		"McDonald Of The Farm",
	} {
		s.Equal(in, Case(in), in)
	}
}

func (s *CaseSuite) TestWhitespace() {
	s.Equal("Into the Wild", Case("Into  The   Wild"))
	s.Equal("\t Into the Wild \n", Case("\t Into The Wild \n"))
}

func (s *CaseSuite) TestExtraMinorWords() {
	f := New(WithMinorWords("vs", " Feat ", ""))
	s.Equal("Man vs Machine Now", f.Case("Man Vs Machine Now"))
	s.Equal("Man Vs Machine Now", Case("Man Vs Machine Now"))
}
