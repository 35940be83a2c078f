package ports

import (
	"context"
	"errors"
)

// Document is one stored record's fields.
type Document map[string]any

// DocumentStore is the port interface for the external key-value
// document store. Reads are point reads; each authorization decision
// performs a fresh one (no caching lives behind this interface).
type DocumentStore interface {
	// Get retrieves one document. Returns ErrDocumentNotFound if no
	// document exists under the key; any other error is a read failure.
	Get(ctx context.Context, collection, key string) (Document, error)

	// Set writes a full document, creating or replacing it.
	Set(ctx context.Context, collection, key string, fields Document) error

	// Update merges fields into an existing document. Returns
	// ErrDocumentNotFound if the document does not exist.
	Update(ctx context.Context, collection, key string, fields Document) error

	// List returns all documents in a collection, keyed by document key.
	List(ctx context.Context, collection string) (map[string]Document, error)
}

// ErrDocumentNotFound is returned when a document does not exist.
// It is a legitimate outcome, not an infrastructure failure.
var ErrDocumentNotFound = errors.New("document not found")
