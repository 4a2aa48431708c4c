package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps a corpus in a SQLite database: one table holds the
// schema field list in column order, another holds the encoded rows
// keyed by document id. Rows use the same %-escaped tab encoding as the
// flat-file format.
type SQLiteStore struct {
	mu     sync.RWMutex
	db     *sql.DB
	schema *Schema
}

// OpenSQLiteStore opens or creates a corpus database at dbPath, which
// can be ":memory:" for an in-memory database. When the database
// already carries a schema it must match the given one field for field.
func OpenSQLiteStore(dbPath string, schema *Schema) (*SQLiteStore, error) {
	if schema.FieldIndex("id") < 0 {
		return nil, fmt.Errorf("%w: store schema needs an id field", ErrBadSchema)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}

	store := &SQLiteStore{db: db, schema: schema}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// initSchema creates the tables and verifies a pre-existing field list.
func (st *SQLiteStore) initSchema() error {
	ddl := `
	CREATE TABLE IF NOT EXISTS corpus_fields (
		pos INTEGER PRIMARY KEY,
		field TEXT NOT NULL UNIQUE
	);
	CREATE TABLE IF NOT EXISTS corpus_documents (
		id TEXT PRIMARY KEY,
		row TEXT NOT NULL
	);
	`
	if _, err := st.db.Exec(ddl); err != nil {
		return err
	}

	rows, err := st.db.Query("SELECT field FROM corpus_fields ORDER BY pos")
	if err != nil {
		return err
	}
	defer rows.Close()

	var stored []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return err
		}
		stored = append(stored, f)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(stored) == 0 {
		for i, f := range st.schema.Fields {
			if _, err := st.db.Exec(
				"INSERT INTO corpus_fields (pos, field) VALUES (?, ?)", i, f); err != nil {
				return err
			}
		}
		return nil
	}

	if !equalFields(stored, st.schema.Fields) {
		return fmt.Errorf("%w: database fields [%s] differ from schema [%s]",
			ErrBadSchema, strings.Join(stored, " "), strings.Join(st.schema.Fields, " "))
	}
	return nil
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Schema returns the field layout the store was opened with.
func (st *SQLiteStore) Schema() *Schema {
	return st.schema
}

// Put inserts or replaces a document, assigning a fresh id when the
// document lacks one.
func (st *SQLiteStore) Put(ctx context.Context, doc Document) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if doc["id"] == "" {
		doc["id"] = uuid.NewString()
	}

	_, err := st.db.ExecContext(ctx,
		`INSERT INTO corpus_documents (id, row) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET row = excluded.row`,
		doc["id"], st.schema.FormatRow(doc))
	return err
}

// Get returns the document with the given id, or ErrNotFound.
func (st *SQLiteStore) Get(ctx context.Context, id string) (Document, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	var row string
	err := st.db.QueryRowContext(ctx,
		"SELECT row FROM corpus_documents WHERE id = ?", id).Scan(&row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return st.schema.ParseRow(row)
}

// Count returns the number of stored documents.
func (st *SQLiteStore) Count(ctx context.Context) (int64, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	var n int64
	err := st.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM corpus_documents").Scan(&n)
	return n, err
}

// Scan visits every document in id order until fn returns false.
func (st *SQLiteStore) Scan(ctx context.Context, fn func(doc Document) bool) error {
	st.mu.RLock()
	defer st.mu.RUnlock()

	rows, err := st.db.QueryContext(ctx,
		"SELECT row FROM corpus_documents ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var row string
		if err := rows.Scan(&row); err != nil {
			return err
		}
		doc, err := st.schema.ParseRow(row)
		if err != nil {
			return err
		}
		if !fn(doc) {
			return nil
		}
	}
	return rows.Err()
}

func (st *SQLiteStore) Close() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.db.Close()
}
