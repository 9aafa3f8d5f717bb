package store

import (
	"context"
	"time"
)

// Store persists normalized corpus documents. It is an export sink: it
// stores and returns whole documents and does not index their contents.
type Store interface {
	Close() error

	SaveDocument(ctx context.Context, d Doc) error
	// GetDocument returns internalerr.ErrNotFound for unknown ids.
	GetDocument(ctx context.Context, id string) (Doc, error)
	ListDocuments(ctx context.Context) ([]DocSummary, error)
}

// Doc is one normalized corpus document.
type Doc struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Sentences []Sentence
	Warnings  int
}

// Sentence is an ordered list of flattened tokens.
type Sentence struct {
	Tokens []Token
}

// Token is a flattened token as stored.
type Token struct {
	Text   string
	Lemma  string
	Tag    string
	Joined string // "", "together" or "hyphen"
}

// DocSummary describes a stored document without its tokens.
type DocSummary struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Sentences int
	Tokens    int
	Warnings  int
}

// Summarize computes the summary of d.
func Summarize(d Doc) DocSummary {
	s := DocSummary{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		Sentences: len(d.Sentences),
		Warnings:  d.Warnings,
	}
	for _, sent := range d.Sentences {
		s.Tokens += len(sent.Tokens)
	}
	return s
}
