package corpus

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mwantia/textutil/textio"
)

// Reader streams the documents of one corpus split, walking its data
// files in name order and decompressing transparently.
type Reader struct {
	schema *Schema
	files  []string

	nextFile int
	current  io.ReadCloser
	lines    *textio.LineReader
	lineNo   int
}

// OpenCorpus locates the schema and data files for prefix/split inside
// dir.
func OpenCorpus(dir, prefix, split string) (*Reader, error) {
	schema, err := ReadSchema(filepath.Join(dir, SchemaPath(prefix, split)))
	if err != nil {
		return nil, err
	}

	pattern := filepath.Join(dir, DataPath(prefix, split, "*"))
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("corpus: no data files match %s", pattern)
	}
	slices.Sort(files)

	return &Reader{schema: schema, files: files}, nil
}

func (r *Reader) Schema() *Schema {
	return r.schema
}

// Files lists the data files the reader will walk.
func (r *Reader) Files() []string {
	return slices.Clone(r.files)
}

// Next returns the next document, or io.EOF when the split is exhausted.
func (r *Reader) Next() (Document, error) {
	for {
		if r.lines == nil {
			if r.nextFile >= len(r.files) {
				return nil, io.EOF
			}
			f, err := textio.Open(r.files[r.nextFile])
			if err != nil {
				return nil, err
			}
			r.current = f
			r.lines = textio.NewLineReader(f)
			r.lineNo = 0
			r.nextFile++
		}

		if !r.lines.Scan() {
			if err := r.lines.Err(); err != nil {
				return nil, err
			}
			if err := r.closeCurrent(); err != nil {
				return nil, err
			}
			continue
		}

		r.lineNo++
		line := r.lines.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		doc, err := r.schema.ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", r.files[r.nextFile-1], r.lineNo, err)
		}
		return doc, nil
	}
}

func (r *Reader) closeCurrent() error {
	r.lines = nil
	if r.current == nil {
		return nil
	}
	err := r.current.Close()
	r.current = nil
	return err
}

func (r *Reader) Close() error {
	return r.closeCurrent()
}
