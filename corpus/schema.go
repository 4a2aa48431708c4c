// Package corpus reads and writes textdb corpora: a corpus split is a
// schema file naming the document fields plus one or more data files of
// tab-separated rows. Field values are %-escaped so tabs and newlines
// inside values survive the row encoding.
//
// File naming follows the textdb convention:
//
//	<prefix>-<split>.schema.txt
//	<prefix>-<split>.data.txt[.gz|.zst|.bz2]
package corpus

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mwantia/textutil/textio"
)

var (
	ErrBadSchema   = errors.New("corpus: malformed schema")
	ErrRowMismatch = errors.New("corpus: row does not match schema")
	ErrNotFound    = errors.New("corpus: document not found")
)

// Schema describes the row layout of one corpus split: the ordered field
// names, plus fixed key/value properties that apply to every document
// (typically corpus-type and split).
type Schema struct {
	Fields []string
	Fixed  map[string]string
}

// NewSchema validates the field list: it must be non-empty and free of
// duplicates.
func NewSchema(fields []string, fixed map[string]string) (*Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrBadSchema)
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrBadSchema)
		}
		if _, ok := seen[f]; ok {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrBadSchema, f)
		}
		seen[f] = struct{}{}
	}
	if fixed == nil {
		fixed = make(map[string]string)
	}
	return &Schema{Fields: fields, Fixed: fixed}, nil
}

// FieldIndex returns the column of a field, or -1 when the schema does
// not carry it.
func (s *Schema) FieldIndex(name string) int {
	for i, f := range s.Fields {
		if f == name {
			return i
		}
	}
	return -1
}

// SchemaPath builds the schema file name for a corpus prefix and split.
func SchemaPath(prefix, split string) string {
	return fmt.Sprintf("%s-%s.schema.txt", prefix, split)
}

// DataPath builds the data file name; suffix carries an optional
// compression extension such as ".gz".
func DataPath(prefix, split, suffix string) string {
	return fmt.Sprintf("%s-%s.data.txt%s", prefix, split, suffix)
}

// ReadSchema loads a schema file: the first line holds tab-separated
// field names, each following line a tab-separated fixed property.
func ReadSchema(path string) (*Schema, error) {
	lines, err := textio.ReadLines(path)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrBadSchema, path)
	}

	fields := strings.Split(lines[0], "\t")
	fixed := make(map[string]string)
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%w: fixed property line %q in %s", ErrBadSchema, line, path)
		}
		fixed[key] = value
	}

	return NewSchema(fields, fixed)
}

// Write stores the schema in its file form.
func (s *Schema) Write(path string) error {
	lines := []string{strings.Join(s.Fields, "\t")}
	for _, key := range sortedKeys(s.Fixed) {
		lines = append(lines, key+"\t"+s.Fixed[key])
	}
	return textio.WriteLines(path, lines)
}

// sortedKeys keeps schema files deterministic so corpora stay diffable.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
