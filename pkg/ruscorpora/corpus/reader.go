// Package corpus extracts raw tokens from Russian National Corpus XML
// exports (<se> sentences made of <w> words with <ana> analyses).
package corpus

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/internalerr"
)

// Element and attribute names of the export format.
const (
	elemSentence = "se"
	elemWord     = "w"
	elemAnalysis = "ana"

	attrLemma  = "lex"
	attrTag    = "gr"
	attrJoined = "joined"
)

// Reader streams sentences from one corpus document.
type Reader struct {
	dec *xml.Decoder
}

// NewReader creates a reader over an XML document. Documents declaring a
// legacy encoding such as windows-1251 are transcoded to UTF-8.
func NewReader(r io.Reader) *Reader {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return &Reader{dec: dec}
}

// Sentences returns the sentences of the document in order. Sentence
// elements are found at any depth. Iteration stops at the first error,
// which wraps internalerr.ErrMalformedDocument.
func (r *Reader) Sentences() iter.Seq2[[]RawToken, error] {
	return func(yield func([]RawToken, error) bool) {
		// A finished sentence is held back until the text after </se> is read.
		var pending *sentenceBuilder

		for {
			tok, err := r.dec.Token()
			if errors.Is(err, io.EOF) {
				if pending != nil {
					yield(pending.finish(), nil)
				}
				return
			}
			if err != nil {
				yield(nil, malformed(err))
				return
			}

			switch t := tok.(type) {
			case xml.CharData:
				if pending != nil {
					pending.text.Write(t)
				}
			case xml.StartElement:
				if pending != nil {
					if !yield(pending.finish(), nil) {
						return
					}
					pending = nil
				}
				if t.Name.Local == elemSentence {
					sb, err := r.readSentence()
					if err != nil {
						yield(nil, err)
						return
					}
					pending = sb
				}
			case xml.EndElement:
				if pending != nil {
					if !yield(pending.finish(), nil) {
						return
					}
					pending = nil
				}
			}
		}
	}
}

// sentenceBuilder collects the tokens of one sentence and the text run
// currently being read between elements.
type sentenceBuilder struct {
	tokens []RawToken
	text   strings.Builder
}

// flushText turns the buffered text into punctuation tokens, one per line.
func (b *sentenceBuilder) flushText() {
	if b.text.Len() == 0 {
		return
	}
	for _, line := range strings.Split(b.text.String(), "\n") {
		if line != "" {
			b.tokens = append(b.tokens, RawToken{Text: line})
		}
	}
	b.text.Reset()
}

// finish flushes pending text and drops blank tokens.
func (b *sentenceBuilder) finish() []RawToken {
	b.flushText()
	out := make([]RawToken, 0, len(b.tokens))
	for _, t := range b.tokens {
		if strings.TrimSpace(t.Text) != "" {
			out = append(out, t)
		}
	}
	return out
}

// readSentence consumes tokens up to and including </se>.
func (r *Reader) readSentence() (*sentenceBuilder, error) {
	b := &sentenceBuilder{}
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, malformed(err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			b.text.Write(t)
		case xml.StartElement:
			if t.Name.Local != elemWord {
				if err := r.dec.Skip(); err != nil {
					return nil, malformed(err)
				}
				continue
			}
			b.flushText()
			w, err := r.readWord()
			if err != nil {
				return nil, err
			}
			b.tokens = append(b.tokens, w)
		case xml.EndElement:
			b.flushText()
			return b, nil
		}
	}
}

// readWord consumes tokens up to and including </w>. The word form is the
// text following the last <ana>; a word without analyses keeps its own text.
func (r *Reader) readWord() (RawToken, error) {
	var (
		anns []RawAnnotation
		own  strings.Builder
		tail strings.Builder
	)
	current := &own

	for {
		tok, err := r.dec.Token()
		if err != nil {
			return RawToken{}, malformed(err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			if current != nil {
				current.Write(t)
			}
		case xml.StartElement:
			if err := r.dec.Skip(); err != nil {
				return RawToken{}, malformed(err)
			}
			if t.Name.Local != elemAnalysis {
				current = nil
				continue
			}
			anns = append(anns, annotationFrom(t.Attr))
			tail.Reset()
			current = &tail
		case xml.EndElement:
			if anns == nil {
				return RawToken{Text: own.String()}, nil
			}
			return RawToken{Text: tail.String(), Annotations: anns}, nil
		}
	}
}

func annotationFrom(attrs []xml.Attr) RawAnnotation {
	var ann RawAnnotation
	for _, a := range attrs {
		switch a.Name.Local {
		case attrLemma:
			ann.Lemma = a.Value
		case attrTag:
			ann.Tag = a.Value
		case attrJoined:
			ann.Join = ParseJoinMode(a.Value)
		}
	}
	return ann
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", internalerr.ErrMalformedDocument, err)
}

// ReadAll collects every sentence of the document.
func ReadAll(r io.Reader) ([][]RawToken, error) {
	var sents [][]RawToken
	for sent, err := range NewReader(r).Sentences() {
		if err != nil {
			return nil, err
		}
		sents = append(sents, sent)
	}
	return sents, nil
}

// ReadFile streams the sentences of the file at path. The file is closed
// when iteration ends, stops early, or fails.
func ReadFile(path string) iter.Seq2[[]RawToken, error] {
	return func(yield func([]RawToken, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(nil, fmt.Errorf("open corpus file: %w", err))
			return
		}
		defer f.Close()

		for sent, err := range NewReader(f).Sentences() {
			if !yield(sent, err) || err != nil {
				return
			}
		}
	}
}
