package corpus

import "context"

// Store persists documents keyed by their "id" field, independent of the
// flat-file split layout. Implementations share the row encoding with
// the file format, so a store and a data file round-trip identically.
type Store interface {
	// Put inserts or replaces a document. The document must carry a
	// non-empty id field.
	Put(ctx context.Context, doc Document) error

	// Get returns the document with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int64, error)

	// Scan visits every stored document in id order until fn returns
	// false.
	Scan(ctx context.Context, fn func(doc Document) bool) error

	// Close releases the underlying connection.
	Close() error
}
