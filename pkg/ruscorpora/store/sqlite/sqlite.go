package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/internalerr"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/store"
)

// timeLayout sorts lexically in creation order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and creates the
// schema if needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TEXT NOT NULL,
	sentences INTEGER NOT NULL DEFAULT 0,
	warnings INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS tokens (
	doc_id TEXT NOT NULL,
	sentence INTEGER NOT NULL,
	position INTEGER NOT NULL,
	text TEXT NOT NULL,
	lemma TEXT,
	tag TEXT,
	joined TEXT,
	PRIMARY KEY(doc_id, sentence, position),
	FOREIGN KEY(doc_id) REFERENCES documents(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveDocument inserts or replaces a document and all its tokens
func (s *sqliteStore) SaveDocument(ctx context.Context, d store.Doc) error {
	if d.ID == "" {
		return fmt.Errorf("%w: document id is required", internalerr.ErrInvalidConfig)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO documents (id, name, created_at, sentences, warnings)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name=excluded.name,
	created_at=excluded.created_at,
	sentences=excluded.sentences,
	warnings=excluded.warnings;
`
	_, err = tx.ExecContext(
		ctx,
		stmt,
		d.ID,
		d.Name,
		d.CreatedAt.UTC().Format(timeLayout),
		len(d.Sentences),
		d.Warnings,
	)
	if err != nil {
		return err
	}

	if err := replaceTokens(ctx, tx, d.ID, d.Sentences); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceTokens(ctx context.Context, tx *sql.Tx, docID string, sents []store.Sentence) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM tokens WHERE doc_id=?`, docID); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO tokens (doc_id, sentence, position, text, lemma, tag, joined)
VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, sent := range sents {
		for j, tok := range sent.Tokens {
			if _, err := stmt.ExecContext(ctx, docID, i, j, tok.Text, tok.Lemma, tok.Tag, tok.Joined); err != nil {
				return err
			}
		}
	}
	return nil
}

// GetDocument loads a document with all its sentences
func (s *sqliteStore) GetDocument(ctx context.Context, id string) (store.Doc, error) {
	var (
		d         store.Doc
		createdAt string
		nSents    int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, sentences, warnings FROM documents WHERE id=?`, id,
	).Scan(&d.ID, &d.Name, &createdAt, &nSents, &d.Warnings)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Doc{}, fmt.Errorf("document %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Doc{}, err
	}
	if d.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return store.Doc{}, fmt.Errorf("document %s: parse created_at: %w", id, err)
	}

	d.Sentences = make([]store.Sentence, nSents)

	rows, err := s.db.QueryContext(ctx, `
SELECT sentence, text, lemma, tag, joined
FROM tokens
WHERE doc_id=?
ORDER BY sentence, position`, id)
	if err != nil {
		return store.Doc{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sentence int
			tok      store.Token
		)
		if err := rows.Scan(&sentence, &tok.Text, &tok.Lemma, &tok.Tag, &tok.Joined); err != nil {
			return store.Doc{}, err
		}
		if sentence < 0 || sentence >= nSents {
			return store.Doc{}, fmt.Errorf("document %s: token in sentence %d of %d", id, sentence, nSents)
		}
		d.Sentences[sentence].Tokens = append(d.Sentences[sentence].Tokens, tok)
	}
	if err := rows.Err(); err != nil {
		return store.Doc{}, err
	}

	return d, nil
}

// ListDocuments returns document summaries ordered by creation time
func (s *sqliteStore) ListDocuments(ctx context.Context) ([]store.DocSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT d.id, d.name, d.created_at, d.sentences, d.warnings, COUNT(t.doc_id)
FROM documents d
LEFT JOIN tokens t ON t.doc_id = d.id
GROUP BY d.id
ORDER BY d.created_at, d.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.DocSummary
	for rows.Next() {
		var (
			sum       store.DocSummary
			createdAt string
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &createdAt, &sum.Sentences, &sum.Warnings, &sum.Tokens); err != nil {
			return nil, err
		}
		if sum.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("document %s: parse created_at: %w", sum.ID, err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}
