package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/internalerr"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/store"
)

func sampleDoc(id string, created time.Time) store.Doc {
	return store.Doc{
		ID:        id,
		Name:      "sample.xml",
		CreatedAt: created,
		Warnings:  1,
		Sentences: []store.Sentence{
			{Tokens: []store.Token{
				{Text: "Школа", Lemma: "школа", Tag: "S,f,inan=sg,nom"},
				{Text: " !", Lemma: " !", Tag: "PNCT"},
			}},
			{Tokens: []store.Token{
				{Text: "полдюжины", Lemma: "полдюжина", Tag: "S,f,inan=sg,gen", Joined: "together"},
			}},
			{},
		},
	}
}

func openTemp(t *testing.T) store.Store {
	t.Helper()
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLiteSaveAndGet(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	created := time.Date(2024, 3, 1, 12, 0, 0, 500, time.UTC)
	doc := sampleDoc("01HZX", created)
	if err := st.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}

	got, err := st.GetDocument(ctx, "01HZX")
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	got.CreatedAt = doc.CreatedAt
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", got, doc)
	}
}

func TestSQLiteReplaceDocument(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	doc := sampleDoc("doc", time.Now())
	if err := st.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}

	doc.Name = "renamed.xml"
	doc.Sentences = doc.Sentences[:1]
	if err := st.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("SaveDocument (replace): %v", err)
	}

	got, err := st.GetDocument(ctx, "doc")
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if got.Name != "renamed.xml" || len(got.Sentences) != 1 || len(got.Sentences[0].Tokens) != 2 {
		t.Errorf("replaced document = %+v", got)
	}
}

func TestSQLiteGetMissing(t *testing.T) {
	st := openTemp(t)
	_, err := st.GetDocument(context.Background(), "nope")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteRejectsEmptyID(t *testing.T) {
	st := openTemp(t)
	err := st.SaveDocument(context.Background(), store.Doc{Name: "x"})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSQLiteListDocuments(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"b", "a", "c"} {
		if err := st.SaveDocument(ctx, sampleDoc(id, base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("SaveDocument(%s): %v", id, err)
		}
	}

	list, err := st.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	var ids []string
	for _, s := range list {
		ids = append(ids, s.ID)
		if s.Sentences != 3 || s.Tokens != 3 || s.Warnings != 1 {
			t.Errorf("summary %s = %+v", s.ID, s)
		}
	}
	if !reflect.DeepEqual(ids, []string{"b", "a", "c"}) {
		t.Errorf("order = %v", ids)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	st, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := st.SaveDocument(ctx, sampleDoc("keep", time.Now())); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	st.Close()

	st, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	if _, err := st.GetDocument(ctx, "keep"); err != nil {
		t.Errorf("document lost after reopen: %v", err)
	}
}
