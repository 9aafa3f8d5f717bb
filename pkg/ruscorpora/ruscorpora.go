// Package ruscorpora converts Russian National Corpus XML exports into
// normalized token streams and, optionally, stores them.
package ruscorpora

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/corpus"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/internalerr"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/normalize"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/store"
)

// Processor is the main entry point: it reads documents, normalizes them,
// and exports them to a store.
type Processor struct {
	normalizer *normalize.Normalizer
	store      store.Store
	now        func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures a Processor
type Options struct {
	// Normalizer defaults to one built from normalize.DefaultOptions.
	Normalizer *normalize.Normalizer
	// Store is required for Export only.
	Store store.Store
	// Now defaults to time.Now.
	Now func() time.Time
}

// New creates a Processor with the given dependencies
func New(opts Options) *Processor {
	p := &Processor{
		normalizer: opts.Normalizer,
		store:      opts.Store,
		now:        opts.Now,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
	if p.normalizer == nil {
		p.normalizer = normalize.New(normalize.DefaultOptions())
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

// Close cleanly shuts down the store, if any
func (p *Processor) Close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}

// Sentences streams the normalized sentences of the document read from r.
func (p *Processor) Sentences(r io.Reader) iter.Seq2[normalize.Sentence, error] {
	return p.normalizer.Sentences(corpus.NewReader(r).Sentences())
}

// File streams the normalized sentences of the document at path.
func (p *Processor) File(path string) iter.Seq2[normalize.Sentence, error] {
	return p.normalizer.Sentences(corpus.ReadFile(path))
}

// ExportResult describes a stored document.
type ExportResult struct {
	ID      string
	Summary store.DocSummary
}

// Export normalizes the document read from r and saves it under a new id.
// Nothing is saved if the document fails to normalize.
func (p *Processor) Export(ctx context.Context, name string, r io.Reader) (ExportResult, error) {
	if p.store == nil {
		return ExportResult{}, fmt.Errorf("%w: export requires a store", internalerr.ErrInvalidConfig)
	}

	doc := store.Doc{
		ID:        p.newID(),
		Name:      name,
		CreatedAt: p.now(),
	}
	for sent, err := range p.Sentences(r) {
		if err != nil {
			return ExportResult{}, fmt.Errorf("export %s: %w", name, err)
		}
		if err := ctx.Err(); err != nil {
			return ExportResult{}, err
		}
		doc.Sentences = append(doc.Sentences, storeSentence(sent))
		doc.Warnings += len(sent.Warnings)
	}

	if err := p.store.SaveDocument(ctx, doc); err != nil {
		return ExportResult{}, fmt.Errorf("save %s: %w", name, err)
	}
	return ExportResult{ID: doc.ID, Summary: store.Summarize(doc)}, nil
}

// ExportFile exports the document at path, named after its base name.
func (p *Processor) ExportFile(ctx context.Context, path string) (ExportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()
	return p.Export(ctx, filepath.Base(path), f)
}

// Document loads a previously exported document.
func (p *Processor) Document(ctx context.Context, id string) (store.Doc, error) {
	if p.store == nil {
		return store.Doc{}, fmt.Errorf("%w: no store configured", internalerr.ErrInvalidConfig)
	}
	return p.store.GetDocument(ctx, id)
}

// Documents lists the exported documents, oldest first.
func (p *Processor) Documents(ctx context.Context) ([]store.DocSummary, error) {
	if p.store == nil {
		return nil, fmt.Errorf("%w: no store configured", internalerr.ErrInvalidConfig)
	}
	return p.store.ListDocuments(ctx)
}

func (p *Processor) newID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(p.now()), p.entropy).String()
}

// storeSentence keeps one reading per token, flattening if the normalizer
// did not.
func storeSentence(sent normalize.Sentence) store.Sentence {
	flat := sent.Flat
	if flat == nil {
		flat = make([]normalize.FlatToken, len(sent.Tokens))
		for i, t := range sent.Tokens {
			flat[i] = normalize.Flatten(t)
		}
	}

	out := store.Sentence{Tokens: make([]store.Token, len(flat))}
	for i, f := range flat {
		out.Tokens[i] = store.Token{
			Text:   f.Text,
			Lemma:  f.Lemma,
			Tag:    f.Gr,
			Joined: f.Join.String(),
		}
	}
	return out
}
