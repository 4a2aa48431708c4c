package corpus

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSchemaValidation(t *testing.T) {
	if _, err := NewSchema(nil, nil); !errors.Is(err, ErrBadSchema) {
		t.Errorf("empty field list: got %v, want ErrBadSchema", err)
	}
	if _, err := NewSchema([]string{"id", "text", "id"}, nil); !errors.Is(err, ErrBadSchema) {
		t.Errorf("duplicate field: got %v, want ErrBadSchema", err)
	}
	if _, err := NewSchema([]string{"id", ""}, nil); !errors.Is(err, ErrBadSchema) {
		t.Errorf("empty field name: got %v, want ErrBadSchema", err)
	}

	s, err := NewSchema([]string{"id", "title", "text"}, nil)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
	if got := s.FieldIndex("title"); got != 1 {
		t.Errorf("FieldIndex(title) = %d, want 1", got)
	}
	if got := s.FieldIndex("missing"); got != -1 {
		t.Errorf("FieldIndex(missing) = %d, want -1", got)
	}
}

func TestSchemaFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SchemaPath("wiki", "training"))

	s, err := NewSchema([]string{"id", "title", "coord"}, map[string]string{
		"corpus-type": "wiki",
		"split":       "training",
	})
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
	if err := s.Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := ReadSchema(path)
	if err != nil {
		t.Fatalf("ReadSchema failed: %v", err)
	}
	if !equalFields(loaded.Fields, s.Fields) {
		t.Errorf("fields %v, want %v", loaded.Fields, s.Fields)
	}
	if loaded.Fixed["corpus-type"] != "wiki" || loaded.Fixed["split"] != "training" {
		t.Errorf("fixed properties %v", loaded.Fixed)
	}
}

func TestFieldEscaping(t *testing.T) {
	cases := []struct {
		raw     string
		encoded string
	}{
		{"plain", "plain"},
		{"with\ttab", "with%09tab"},
		{"with\nnewline", "with%0Anewline"},
		{"with\rreturn", "with%0Dreturn"},
		{"100%", "100%25"},
		{"tricky%09literal", "tricky%2509literal"},
	}

	for _, c := range cases {
		if got := EncodeField(c.raw); got != c.encoded {
			t.Errorf("EncodeField(%q) = %q, want %q", c.raw, got, c.encoded)
		}
		if got := DecodeField(c.encoded); got != c.raw {
			t.Errorf("DecodeField(%q) = %q, want %q", c.encoded, got, c.raw)
		}
	}
}

func TestRowRoundTrip(t *testing.T) {
	s, err := NewSchema([]string{"id", "text"}, nil)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}

	doc := Document{"id": "d1", "text": "line one\nline two\t100%"}
	row := s.FormatRow(doc)

	back, err := s.ParseRow(row)
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}
	if back["id"] != "d1" || back["text"] != doc["text"] {
		t.Errorf("round trip gave %v", back)
	}

	if _, err := s.ParseRow("only-one-column"); !errors.Is(err, ErrRowMismatch) {
		t.Errorf("short row: got %v, want ErrRowMismatch", err)
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	for _, suffix := range []string{"", ".gz", ".zst"} {
		t.Run("suffix"+suffix, func(t *testing.T) {
			dir := t.TempDir()
			s, err := NewSchema([]string{"id", "title"}, map[string]string{"split": "dev"})
			if err != nil {
				t.Fatalf("NewSchema failed: %v", err)
			}

			w, err := NewWriter(dir, "wiki", "dev", s, suffix)
			if err != nil {
				t.Fatalf("NewWriter failed: %v", err)
			}
			docs := []Document{
				{"id": "a", "title": "Alpha"},
				{"id": "b", "title": "Beta\twith tab"},
			}
			for _, d := range docs {
				if err := w.Write(d); err != nil {
					t.Fatalf("Write failed: %v", err)
				}
			}
			if w.Count() != 2 {
				t.Errorf("Count = %d, want 2", w.Count())
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			r, err := OpenCorpus(dir, "wiki", "dev")
			if err != nil {
				t.Fatalf("OpenCorpus failed: %v", err)
			}
			defer r.Close()

			if r.Schema().Fixed["split"] != "dev" {
				t.Errorf("schema fixed %v", r.Schema().Fixed)
			}

			var got []Document
			for {
				doc, err := r.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("Next failed: %v", err)
				}
				got = append(got, doc)
			}
			if len(got) != 2 {
				t.Fatalf("read %d documents, want 2", len(got))
			}
			if got[1]["title"] != "Beta\twith tab" {
				t.Errorf("title = %q", got[1]["title"])
			}
		})
	}
}

func TestWriterAssignsIDs(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSchema([]string{"id", "text"}, nil)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}

	w, err := NewWriter(dir, "notes", "dev", s, "")
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.Write(Document{"text": "no id supplied"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := OpenCorpus(dir, "notes", "dev")
	if err != nil {
		t.Fatalf("OpenCorpus failed: %v", err)
	}
	defer r.Close()

	doc, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if doc["id"] == "" {
		t.Error("expected an assigned id")
	}
}

func TestOpenCorpusMissingData(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSchema([]string{"id"}, nil)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
	if err := s.Write(filepath.Join(dir, SchemaPath("empty", "dev"))); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, err := OpenCorpus(dir, "empty", "dev"); err == nil {
		t.Error("expected error when no data files exist")
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSchema([]string{"id", "title", "text"}, nil)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}

	store, err := OpenSQLiteStore(":memory:", s)
	if err != nil {
		t.Fatalf("OpenSQLiteStore failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	doc := Document{"id": "d1", "title": "First", "text": "tab\tinside"}
	if err := store.Put(ctx, doc); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, "d1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got["title"] != "First" || got["text"] != "tab\tinside" {
		t.Errorf("Get gave %v", got)
	}

	// Replace keeps the count stable
	doc["title"] = "First, revised"
	if err := store.Put(ctx, doc); err != nil {
		t.Fatalf("Put replace failed: %v", err)
	}
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}

	got, err = store.Get(ctx, "d1")
	if err != nil {
		t.Fatalf("Get after replace failed: %v", err)
	}
	if got["title"] != "First, revised" {
		t.Errorf("title = %q", got["title"])
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id: got %v, want ErrNotFound", err)
	}

	// Auto-assigned ids
	anon := Document{"title": "Second"}
	if err := store.Put(ctx, anon); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if anon["id"] == "" {
		t.Error("expected an assigned id")
	}

	var seen []string
	err = store.Scan(ctx, func(d Document) bool {
		seen = append(seen, d["title"])
		return true
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("Scan visited %d documents, want 2", len(seen))
	}
}

func TestSQLiteStoreSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "corpus.db")

	s1, err := NewSchema([]string{"id", "title"}, nil)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
	store, err := OpenSQLiteStore(dbPath, s1)
	if err != nil {
		t.Fatalf("OpenSQLiteStore failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := NewSchema([]string{"id", "body"}, nil)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
	if _, err := OpenSQLiteStore(dbPath, s2); !errors.Is(err, ErrBadSchema) {
		t.Errorf("reopen with different fields: got %v, want ErrBadSchema", err)
	}
}

func TestSQLiteStoreRequiresID(t *testing.T) {
	s, err := NewSchema([]string{"title"}, nil)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
	if _, err := OpenSQLiteStore(":memory:", s); !errors.Is(err, ErrBadSchema) {
		t.Errorf("schema without id: got %v, want ErrBadSchema", err)
	}
}

// TestPostgresStore exercises the PostgreSQL store against a live
// database. Set CORPUS_POSTGRES_URL to run it.
func TestPostgresStore(t *testing.T) {
	connString := os.Getenv("CORPUS_POSTGRES_URL")
	if connString == "" {
		t.Skip("CORPUS_POSTGRES_URL not set")
	}

	s, err := NewSchema([]string{"id", "title"}, nil)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}

	ctx := context.Background()
	store, err := OpenPostgresStore(ctx, connString, s)
	if err != nil {
		t.Fatalf("OpenPostgresStore failed: %v", err)
	}
	defer store.Close()

	doc := Document{"id": "pg1", "title": "Postgres"}
	if err := store.Put(ctx, doc); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := store.Get(ctx, "pg1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got["title"] != "Postgres" {
		t.Errorf("title = %q", got["title"])
	}
}
