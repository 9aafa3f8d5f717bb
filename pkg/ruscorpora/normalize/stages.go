package normalize

import (
	"strings"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/corpus"
)

// Stage names used in warnings.
const (
	StageJoinSplit      = "join-split"
	StageJoinHyphenated = "join-hyphenated"
)

// hyphenFallbackTags lists second-piece tags that lose to the first piece
// when a hyphenated word is flattened ("их-то" keeps the pronoun tag).
// Matching is on the exact tag text.
var hyphenFallbackTags = map[string]struct{}{
	"PART":     {},
	"NUM=ciph": {},
	"PR":       {},
}

// work is a token between stages. A nil annotation is a punctuation
// placeholder that has not been tagged yet.
type work struct {
	text string
	anns []*Annotation
}

func (w work) first() *Annotation {
	if len(w.anns) == 0 {
		return nil
	}
	return w.anns[0]
}

// keepLastAnalysis reduces every token to its preferred (last) analysis.
func keepLastAnalysis(raw []corpus.RawToken) []work {
	out := make([]work, len(raw))
	for i, t := range raw {
		out[i].text = t.Text
		if len(t.Annotations) == 0 {
			out[i].anns = []*Annotation{nil}
			continue
		}
		last := t.Annotations[len(t.Annotations)-1]
		out[i].anns = []*Annotation{{Lemma: last.Lemma, Gr: last.Tag, Join: last.Join}}
	}
	return out
}

func removeAccents(tokens []work) {
	for i := range tokens {
		tokens[i].text = StripAccents(tokens[i].text)
	}
}

// joinRule describes one accumulation pass.
type joinRule struct {
	stage string
	size  int
	admit func(w work, pending int) bool
}

var splitRule = joinRule{
	stage: StageJoinSplit,
	size:  2,
	admit: func(w work, _ int) bool {
		ann := w.first()
		return ann != nil && ann.Join == corpus.JoinTogether
	},
}

// hyphenRule also admits the bare "-" between two hyphenated pieces.
var hyphenRule = joinRule{
	stage: StageJoinHyphenated,
	size:  3,
	admit: func(w work, pending int) bool {
		if ann := w.first(); ann != nil && ann.Join == corpus.JoinHyphen {
			return true
		}
		return pending > 0 && strings.TrimSpace(w.text) == "-"
	},
}

// join merges runs of rule.size admitted tokens. A run broken by a token
// that is not admitted, or by the end of the sentence, is emitted unchanged
// and reported through warn.
func join(tokens []work, rule joinRule, warn func(stage string, pending []work, atEnd bool)) []work {
	out := make([]work, 0, len(tokens))
	var pending []work

	flush := func(atEnd bool) {
		if len(pending) == 0 {
			return
		}
		warn(rule.stage, pending, atEnd)
		out = append(out, pending...)
		pending = nil
	}

	for _, t := range tokens {
		if rule.admit(t, len(pending)) {
			pending = append(pending, t)
			if len(pending) == rule.size {
				out = append(out, combine(pending))
				pending = nil
			}
			continue
		}
		flush(false)
		out = append(out, t)
	}
	flush(true)
	return out
}

func combine(tokens []work) work {
	var text strings.Builder
	var anns []*Annotation
	for _, t := range tokens {
		text.WriteString(t.text)
		for _, a := range t.anns {
			if a != nil {
				anns = append(anns, a)
			}
		}
	}
	return work{text: text.String(), anns: anns}
}

func tagPunctuation(tokens []work, punctTag string) {
	for i := range tokens {
		for j, a := range tokens[i].anns {
			if a == nil {
				tokens[i].anns[j] = &Annotation{Lemma: tokens[i].text, Gr: punctTag, Join: corpus.JoinNone}
			}
		}
	}
}

// Flatten reduces a token to a single reading.
func Flatten(t Token) FlatToken {
	anns := t.Annotations
	if len(anns) == 0 {
		return FlatToken{Text: t.Text}
	}

	if allJoined(anns, corpus.JoinTogether) {
		var lemma strings.Builder
		for _, a := range anns {
			lemma.WriteString(a.Lemma)
		}
		last := anns[len(anns)-1]
		return FlatToken{
			Text:        t.Text,
			Lemma:       lemma.String(),
			Gr:          last.Gr,
			Tag:         last.Tag,
			Join:        corpus.JoinTogether,
			HasAnalysis: true,
		}
	}

	if len(anns) == 2 && allJoined(anns, corpus.JoinHyphen) {
		chosen := anns[1]
		if _, ok := hyphenFallbackTags[chosen.Gr]; ok {
			chosen = anns[0]
		}
		return FlatToken{
			Text:        t.Text,
			Lemma:       anns[0].Lemma + "-" + anns[1].Lemma,
			Gr:          chosen.Gr,
			Tag:         chosen.Tag,
			Join:        corpus.JoinHyphen,
			HasAnalysis: true,
		}
	}

	// Ordinary tokens have exactly one annotation. Leftovers of broken
	// joins may not; the last reading is preferred as in the markup.
	a := anns[len(anns)-1]
	return FlatToken{
		Text:        t.Text,
		Lemma:       a.Lemma,
		Gr:          a.Gr,
		Tag:         a.Tag,
		Join:        a.Join,
		HasAnalysis: true,
	}
}

func allJoined(anns []Annotation, mode corpus.JoinMode) bool {
	for _, a := range anns {
		if a.Join != mode {
			return false
		}
	}
	return true
}
