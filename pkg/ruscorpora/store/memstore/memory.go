package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/internalerr"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu   sync.RWMutex
	docs map[string]store.Doc
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{docs: make(map[string]store.Doc)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveDocument inserts or replaces a document, keyed by ID.
func (s *Store) SaveDocument(ctx context.Context, d store.Doc) error {
	if d.ID == "" {
		return fmt.Errorf("%w: document id is required", internalerr.ErrInvalidConfig)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[d.ID] = copyDoc(d)
	return nil
}

// GetDocument returns a copy of the stored document.
func (s *Store) GetDocument(ctx context.Context, id string) (store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.docs[id]
	if !ok {
		return store.Doc{}, fmt.Errorf("document %s: %w", id, internalerr.ErrNotFound)
	}
	return copyDoc(d), nil
}

// ListDocuments returns summaries ordered by creation time, then ID.
func (s *Store) ListDocuments(ctx context.Context) ([]store.DocSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.DocSummary, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, store.Summarize(d))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func copyDoc(d store.Doc) store.Doc {
	cp := d
	cp.Sentences = make([]store.Sentence, len(d.Sentences))
	for i, sent := range d.Sentences {
		cp.Sentences[i].Tokens = append([]store.Token(nil), sent.Tokens...)
	}
	return cp
}
