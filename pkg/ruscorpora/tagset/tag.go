// Package tagset validates and queries the compact morphological tags of
// the Russian National Corpus, e.g. "V,ipf,intr,act=n,sg,praet,indic".
//
// A tag is a list of grammemes separated by commas. The '=' sign that
// divides the lexical part from the inflectional part is treated as
// another comma.
package tagset

import "strings"

// Tag is a validated, immutable morphological tag.
// The zero Tag has no grammemes.
type Tag struct {
	text      string
	grammemes []string
	set       map[string]struct{}
}

// Parse splits tag text into grammemes and validates every one of them
// against the closed vocabulary.
func Parse(text string) (Tag, error) {
	grammemes := splitGrammemes(text)
	if unknown := unknownGrammemes(grammemes); len(unknown) > 0 {
		return Tag{}, &InvalidGrammemeError{Tag: text, Unknown: unknown}
	}

	set := make(map[string]struct{}, len(grammemes))
	for _, g := range grammemes {
		set[g] = struct{}{}
	}
	return Tag{text: text, grammemes: grammemes, set: set}, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(text string) Tag {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

func splitGrammemes(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "=", ","), ",")
}

func unknownGrammemes(grammemes []string) []string {
	var unknown []string
	seen := make(map[string]bool)
	for _, g := range grammemes {
		if Known(g) || seen[g] {
			continue
		}
		seen[g] = true
		unknown = append(unknown, g)
	}
	return unknown
}

// String returns the tag as it was written.
func (t Tag) String() string { return t.text }

// IsZero reports whether t was never parsed.
func (t Tag) IsZero() bool { return t.set == nil }

// Grammemes returns the grammemes in the order they were written.
func (t Tag) Grammemes() []string {
	return append([]string(nil), t.grammemes...)
}

// POS returns the part of speech, which is always the first grammeme.
func (t Tag) POS() string {
	if len(t.grammemes) == 0 {
		return ""
	}
	return t.grammemes[0]
}

// Feature returns the grammeme of the given axis. Axes are exclusive by
// corpus convention; if a tag breaks that, the first matching grammeme in
// written order wins.
func (t Tag) Feature(axis Axis) (string, bool) {
	for _, g := range t.grammemes {
		if a, ok := axisOf[g]; ok && a == axis {
			return g, true
		}
	}
	return "", false
}

func (t Tag) feature(axis Axis) string {
	g, _ := t.Feature(axis)
	return g
}

// Gender returns the gender grammeme or "".
func (t Tag) Gender() string { return t.feature(AxisGender) }

// Animacy returns the animacy grammeme or "".
func (t Tag) Animacy() string { return t.feature(AxisAnimacy) }

// Number returns the number grammeme or "".
func (t Tag) Number() string { return t.feature(AxisNumber) }

// Case returns the case grammeme or "".
func (t Tag) Case() string { return t.feature(AxisCase) }

// ShortFull returns "brev", "plen" or "".
func (t Tag) ShortFull() string { return t.feature(AxisShortFull) }

// Degree returns the degree of comparison or "".
func (t Tag) Degree() string { return t.feature(AxisDegree) }

// Aspect returns the aspect grammeme or "".
func (t Tag) Aspect() string { return t.feature(AxisAspect) }

// Transitivity returns the transitivity grammeme or "".
func (t Tag) Transitivity() string { return t.feature(AxisTransitivity) }

// Voice returns the voice grammeme or "".
func (t Tag) Voice() string { return t.feature(AxisVoice) }

// VerbForm returns "inf", "partcp", "ger" or "".
func (t Tag) VerbForm() string { return t.feature(AxisVerbForm) }

// Mood returns the mood grammeme or "".
func (t Tag) Mood() string { return t.feature(AxisMood) }

// Tense returns the tense grammeme or "".
func (t Tag) Tense() string { return t.feature(AxisTense) }

// Person returns the person grammeme or "".
func (t Tag) Person() string { return t.feature(AxisPerson) }

// Other returns the proper-name/indeclinable marker or "".
func (t Tag) Other() string { return t.feature(AxisOther) }

// NonStandard returns the non-standard form marker or "".
func (t Tag) NonStandard() string { return t.feature(AxisNonStandard) }

// Contains reports whether the tag carries grammeme g. A probe that is not
// a grammeme at all is an error, not a false.
func (t Tag) Contains(g string) (bool, error) {
	if _, ok := t.set[g]; ok {
		return true, nil
	}
	if !Known(g) {
		return false, &UnknownGrammemeError{Grammeme: g}
	}
	return false, nil
}

// Equal reports whether both tags carry the same grammeme set, regardless
// of order and delimiters.
func (t Tag) Equal(other Tag) bool {
	if len(t.set) != len(other.set) {
		return false
	}
	for g := range t.set {
		if _, ok := other.set[g]; !ok {
			return false
		}
	}
	return true
}

// EqualString compares t against raw tag text, validating the text the
// same way Parse does.
func (t Tag) EqualString(text string) (bool, error) {
	other, err := Parse(text)
	if err != nil {
		return false, err
	}
	return t.Equal(other), nil
}
