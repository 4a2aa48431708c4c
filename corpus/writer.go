package corpus

import (
	"bufio"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mwantia/textutil/textio"
)

// Writer emits one corpus split: the schema file up front, then one row
// per document. When the schema carries an "id" field, documents lacking
// one are assigned a fresh UUID.
type Writer struct {
	schema *Schema
	file   io.WriteCloser
	buf    *bufio.Writer
	closed bool

	count int64
}

// NewWriter creates the schema and data files for prefix/split in dir.
// Suffix selects data-file compression (for example ".gz"); empty means
// uncompressed.
func NewWriter(dir, prefix, split string, schema *Schema, suffix string) (*Writer, error) {
	if err := schema.Write(filepath.Join(dir, SchemaPath(prefix, split))); err != nil {
		return nil, err
	}

	f, err := textio.Create(filepath.Join(dir, DataPath(prefix, split, suffix)))
	if err != nil {
		return nil, err
	}

	return &Writer{
		schema: schema,
		file:   f,
		buf:    bufio.NewWriter(f),
	}, nil
}

// Write appends one document row.
func (w *Writer) Write(doc Document) error {
	if w.schema.FieldIndex("id") >= 0 && doc["id"] == "" {
		doc["id"] = uuid.NewString()
	}

	if _, err := w.buf.WriteString(w.schema.FormatRow(doc) + "\n"); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns the number of documents written so far.
func (w *Writer) Count() int64 {
	return w.count
}

func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
