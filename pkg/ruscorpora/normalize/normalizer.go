// Package normalize turns raw corpus tokens into analysis-ready tokens:
// one analysis per word piece, accents stripped, split and hyphenated words
// joined, punctuation tagged, tags parsed, and optionally one reading per
// token.
package normalize

import (
	"fmt"
	"iter"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/corpus"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/tagset"
)

// Normalizer applies the normalization stages to one sentence at a time.
// It keeps no state between sentences.
type Normalizer struct {
	opts      Options
	onWarning func(Warning)
}

// New creates a normalizer. An empty PunctTag falls back to DefaultPunctTag.
func New(opts Options) *Normalizer {
	if opts.PunctTag == "" {
		opts.PunctTag = DefaultPunctTag
	}
	return &Normalizer{opts: opts}
}

// Options returns the options in effect.
func (n *Normalizer) Options() Options {
	return n.opts
}

// OnWarning registers a callback invoked for every warning, in addition to
// the warnings attached to each Sentence.
func (n *Normalizer) OnWarning(fn func(Warning)) {
	n.onWarning = fn
}

// Normalize runs every enabled stage over one sentence. index is used in
// warnings and errors only.
func (n *Normalizer) Normalize(index int, raw []corpus.RawToken) (Sentence, error) {
	sent := Sentence{Index: index}

	warn := func(stage string, pending []work, atEnd bool) {
		w := Warning{
			Kind:     WarnUnconsumedAccumulation,
			Stage:    stage,
			Sentence: index,
			Texts:    make([]string, len(pending)),
			AtEnd:    atEnd,
		}
		for i, p := range pending {
			w.Texts[i] = p.text
		}
		sent.Warnings = append(sent.Warnings, w)
		if n.onWarning != nil {
			n.onWarning(w)
		}
	}

	tokens := keepLastAnalysis(raw)
	if n.opts.RemoveAccents {
		removeAccents(tokens)
	}
	if n.opts.JoinSplit {
		tokens = join(tokens, splitRule, warn)
	}
	if n.opts.JoinHyphenated {
		tokens = join(tokens, hyphenRule, warn)
	}
	tagPunctuation(tokens, n.opts.PunctTag)

	sent.Tokens = make([]Token, len(tokens))
	for i, w := range tokens {
		tok := Token{Text: w.text, Annotations: make([]Annotation, len(w.anns))}
		for j, a := range w.anns {
			tok.Annotations[j] = *a
			if !n.opts.WrapTags {
				continue
			}
			tag, err := tagset.Parse(a.Gr)
			if err != nil {
				return Sentence{}, fmt.Errorf("sentence %d, token %q: %w", index, w.text, err)
			}
			tok.Annotations[j].Tag = tag
		}
		sent.Tokens[i] = tok
	}

	if n.opts.Flatten {
		sent.Flat = make([]FlatToken, len(sent.Tokens))
		for i, t := range sent.Tokens {
			sent.Flat[i] = Flatten(t)
		}
	}

	return sent, nil
}

// Sentences normalizes a stream of raw sentences lazily, in order.
// Iteration stops at the first error from src or from normalization.
func (n *Normalizer) Sentences(src iter.Seq2[[]corpus.RawToken, error]) iter.Seq2[Sentence, error] {
	return func(yield func(Sentence, error) bool) {
		index := 0
		for raw, err := range src {
			if err != nil {
				yield(Sentence{}, err)
				return
			}
			sent, err := n.Normalize(index, raw)
			if err != nil {
				yield(Sentence{}, err)
				return
			}
			if !yield(sent, nil) {
				return
			}
			index++
		}
	}
}
