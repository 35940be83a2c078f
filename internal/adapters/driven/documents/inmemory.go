// Package documents provides DocumentStore adapters: an in-memory map,
// a YAML/JSON file with write-through persistence, and a Redis hash
// per document.
package documents

import (
	"context"
	"sync"

	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// InMemoryStore is a map-backed document store.
// Suitable for testing and development.
type InMemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]ports.Document
}

// NewInMemoryStore creates a new in-memory document store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{collections: make(map[string]map[string]ports.Document)}
}

// Get retrieves one document.
func (s *InMemoryStore) Get(ctx context.Context, collection, key string) (ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][key]
	if !ok {
		return nil, ports.ErrDocumentNotFound
	}
	return cloneDocument(doc), nil
}

// Set writes a full document, creating or replacing it.
func (s *InMemoryStore) Set(ctx context.Context, collection, key string, fields ports.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]ports.Document)
		s.collections[collection] = coll
	}
	coll[key] = cloneDocument(fields)
	return nil
}

// Update merges fields into an existing document.
func (s *InMemoryStore) Update(ctx context.Context, collection, key string, fields ports.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][key]
	if !ok {
		return ports.ErrDocumentNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

// List returns all documents in a collection.
func (s *InMemoryStore) List(ctx context.Context, collection string) (map[string]ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]ports.Document, len(s.collections[collection]))
	for key, doc := range s.collections[collection] {
		out[key] = cloneDocument(doc)
	}
	return out, nil
}

// Delete removes a document. Missing documents are not an error.
// Used by the administration feature, never by the guard's read path.
func (s *InMemoryStore) Delete(ctx context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections[collection], key)
	return nil
}

func cloneDocument(doc ports.Document) ports.Document {
	out := make(ports.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// Ensure InMemoryStore implements ports.DocumentStore
var _ ports.DocumentStore = (*InMemoryStore)(nil)
