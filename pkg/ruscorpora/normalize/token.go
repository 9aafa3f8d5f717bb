package normalize

import (
	"fmt"
	"strings"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/corpus"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/tagset"
)

// Annotation is one analysis of a normalized token.
type Annotation struct {
	Lemma string
	Gr    string     // tag as written in the corpus
	Tag   tagset.Tag // parsed Gr; zero when tag wrapping is off
	Join  corpus.JoinMode
}

// Token is a normalized token. Ordinary tokens carry one annotation, joined
// words carry one per joined piece.
type Token struct {
	Text        string
	Annotations []Annotation
}

// FlatToken is a token reduced to a single reading.
type FlatToken struct {
	Text  string
	Lemma string
	Gr    string
	Tag   tagset.Tag
	Join  corpus.JoinMode
	// HasAnalysis is false when the token had no annotation at all; the
	// other reading fields are then empty.
	HasAnalysis bool
}

// WarningKind classifies a recoverable anomaly.
type WarningKind int

const (
	// WarnUnconsumedAccumulation means the corpus announced a joined word
	// whose pieces never all arrived.
	WarnUnconsumedAccumulation WarningKind = iota + 1
)

func (k WarningKind) String() string {
	switch k {
	case WarnUnconsumedAccumulation:
		return "unconsumed accumulation"
	default:
		return "unknown"
	}
}

// Warning reports tokens that were emitted unchanged because a join could
// not complete.
type Warning struct {
	Kind     WarningKind
	Stage    string
	Sentence int
	Texts    []string
	// AtEnd is true when the sentence ended while tokens were pending.
	AtEnd bool
}

func (w Warning) String() string {
	where := "before a non-joinable token"
	if w.AtEnd {
		where = "at end of sentence"
	}
	return fmt.Sprintf("sentence %d: %s: %s %s: %q",
		w.Sentence, w.Stage, w.Kind, where, strings.Join(w.Texts, "|"))
}

// Sentence is the normalized form of one corpus sentence.
type Sentence struct {
	Index    int
	Tokens   []Token
	Flat     []FlatToken // set when flattening is on
	Warnings []Warning
}
