package title

import "regexp"

var (
	// An optional opening bracket, a featuring marker in any letter case and
	// the artist list up to the next bracket.
	featuringRgx = regexp.MustCompile(`[(\[]?\b(?i:featuring|feat|ft)\b\.?([^()\[\]]*)([)\]]?)`)

	// A bracketed label ending in one of the version words.
	versionRgx = regexp.MustCompile(`[(\[]([^)\]]+)(Remix|Dub|Version)[)\]]`)
)

// AnnotationKind tells which kind of clause a title annotation is.
type AnnotationKind int

const (
	// None means the title has no annotation.
	None AnnotationKind = iota
	// Featuring is a "feat."/"ft."/"featuring" artist clause.
	Featuring
	// Version is a bracketed label ending in Remix, Dub or Version.
	Version
)

func (k AnnotationKind) String() string {
	switch k {
	case Featuring:
		return "featuring"
	case Version:
		return "version"
	default:
		return "none"
	}
}

// Annotation is the first featuring or version annotation of a title. Start
// is the byte offset where the annotation begins, or -1 for None.
type Annotation struct {
	Kind  AnnotationKind
	Start int
}

// Locate returns the left-most annotation in s. A featuring clause wins over
// a version clause starting at the same offset.
func Locate(s string) Annotation {
	feat := featuringRgx.FindStringIndex(s)
	ver := versionRgx.FindStringIndex(s)

	switch {
	case feat != nil && (ver == nil || feat[0] <= ver[0]):
		return Annotation{Kind: Featuring, Start: feat[0]}
	case ver != nil:
		return Annotation{Kind: Version, Start: ver[0]}
	}
	return Annotation{Kind: None, Start: -1}
}

// Split cuts s at its first annotation. info is empty when s has none.
func Split(s string) (name, info string) {
	a := Locate(s)
	if a.Kind == None {
		return s, ""
	}
	return s[:a.Start], s[a.Start:]
}
