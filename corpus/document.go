package corpus

import (
	"fmt"
	"strings"
)

// Document maps field names to decoded values. Fields absent from the
// map encode as empty columns.
type Document map[string]string

// fieldEscaper protects the row delimiters and the escape character
// itself; percent must be replaced first on encode and last on decode.
var fieldEscaper = strings.NewReplacer(
	"%", "%25",
	"\t", "%09",
	"\n", "%0A",
	"\r", "%0D",
)

var fieldUnescaper = strings.NewReplacer(
	"%09", "\t",
	"%0A", "\n",
	"%0D", "\r",
	"%25", "%",
)

// EncodeField escapes a value for storage in a tab-separated row.
func EncodeField(value string) string {
	return fieldEscaper.Replace(value)
}

// DecodeField reverses EncodeField.
func DecodeField(value string) string {
	return fieldUnescaper.Replace(value)
}

// FormatRow encodes a document as one data-file row, columns in schema
// order.
func (s *Schema) FormatRow(doc Document) string {
	cols := make([]string, len(s.Fields))
	for i, field := range s.Fields {
		cols[i] = EncodeField(doc[field])
	}
	return strings.Join(cols, "\t")
}

// ParseRow decodes one data-file row against the schema. A column-count
// mismatch reports ErrRowMismatch.
func (s *Schema) ParseRow(line string) (Document, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != len(s.Fields) {
		return nil, fmt.Errorf("%w: %d columns, schema has %d fields",
			ErrRowMismatch, len(cols), len(s.Fields))
	}

	doc := make(Document, len(cols))
	for i, field := range s.Fields {
		doc[field] = DecodeField(cols[i])
	}
	return doc, nil
}
