package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// FileStore persists documents in a local JSON or YAML file. Writes go
// through to disk; reads are served from the loaded snapshot. Refresh
// re-reads the file to pick up out-of-band edits.
type FileStore struct {
	path   string
	logger *zap.Logger

	mu          sync.RWMutex
	collections map[string]map[string]ports.Document
}

// storeFile represents the on-disk structure.
type storeFile struct {
	Collections map[string]map[string]ports.Document `json:"collections" yaml:"collections"`
}

// NewFileStore creates a file-backed document store and loads the file
// if it exists. A missing file starts an empty store; it is created on
// the first write.
func NewFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &FileStore{
		path:        path,
		logger:      logger,
		collections: make(map[string]map[string]ports.Document),
	}
	if err := s.Refresh(context.Background()); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		logger.Info("document file does not exist yet, starting empty",
			zap.String("path", path))
	}
	return s, nil
}

// Get retrieves one document.
func (s *FileStore) Get(ctx context.Context, collection, key string) (ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][key]
	if !ok {
		return nil, ports.ErrDocumentNotFound
	}
	return cloneDocument(doc), nil
}

// Set writes a full document and persists the file.
func (s *FileStore) Set(ctx context.Context, collection, key string, fields ports.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]ports.Document)
		s.collections[collection] = coll
	}
	coll[key] = cloneDocument(fields)
	return s.persistLocked()
}

// Update merges fields into an existing document and persists the file.
func (s *FileStore) Update(ctx context.Context, collection, key string, fields ports.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][key]
	if !ok {
		return ports.ErrDocumentNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return s.persistLocked()
}

// List returns all documents in a collection.
func (s *FileStore) List(ctx context.Context, collection string) (map[string]ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]ports.Document, len(s.collections[collection]))
	for key, doc := range s.collections[collection] {
		out[key] = cloneDocument(doc)
	}
	return out, nil
}

// Refresh reloads documents from the file.
func (s *FileStore) Refresh(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file storeFile
	if isYAML(s.path) {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse YAML document file: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse JSON document file: %w", err)
		}
	}

	collections := file.Collections
	if collections == nil {
		collections = make(map[string]map[string]ports.Document)
	}

	// Atomic update
	s.mu.Lock()
	s.collections = collections
	s.mu.Unlock()

	s.logger.Debug("document file loaded", zap.String("path", s.path))
	return nil
}

// persistLocked writes the snapshot to disk. Caller holds s.mu.
func (s *FileStore) persistLocked() error {
	file := storeFile{Collections: s.collections}

	var (
		data []byte
		err  error
	)
	if isYAML(s.path) {
		data, err = yaml.Marshal(file)
	} else {
		data, err = json.MarshalIndent(file, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode document file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write document file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Ensure FileStore implements ports.DocumentStore
var _ ports.DocumentStore = (*FileStore)(nil)
