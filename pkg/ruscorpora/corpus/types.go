package corpus

// JoinMode tells whether a word fragment must be glued to its neighbours.
type JoinMode int

const (
	// JoinNone marks a standalone word.
	JoinNone JoinMode = iota
	// JoinTogether marks one half of a split word, glued without separator
	// ("пол" + "дюжины").
	JoinTogether
	// JoinHyphen marks a piece of a hyphenated word ("кто" "-" "то").
	JoinHyphen
)

// ParseJoinMode maps the value of the `joined` attribute. Missing and
// unrecognised values mean JoinNone.
func ParseJoinMode(s string) JoinMode {
	switch s {
	case "together":
		return JoinTogether
	case "hyphen":
		return JoinHyphen
	default:
		return JoinNone
	}
}

func (m JoinMode) String() string {
	switch m {
	case JoinTogether:
		return "together"
	case JoinHyphen:
		return "hyphen"
	default:
		return ""
	}
}

// RawAnnotation is one morphological analysis as written in the markup.
type RawAnnotation struct {
	Lemma string
	Tag   string
	Join  JoinMode
}

// RawToken is a word or a punctuation run of a sentence.
// Annotations is nil for punctuation and whitespace runs; otherwise it holds
// the analyses in document order, the last one being the preferred reading.
type RawToken struct {
	Text        string
	Annotations []RawAnnotation
}

// IsPunct reports whether the token carries no analysis.
func (t RawToken) IsPunct() bool {
	return t.Annotations == nil
}
