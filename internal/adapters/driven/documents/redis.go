package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/agentmartinv1/rolekit/internal/core/ports"
)

// RedisStore keeps each document as a Redis hash under
// "<prefix><collection>:<key>", with field values JSON-encoded so
// non-string field types survive the round trip.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed document store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "doc:"}
}

func (s *RedisStore) key(collection, key string) string {
	return s.prefix + collection + ":" + key
}

// Get retrieves one document.
func (s *RedisStore) Get(ctx context.Context, collection, key string) (ports.Document, error) {
	raw, err := s.client.HGetAll(ctx, s.key(collection, key)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	if len(raw) == 0 {
		// HGetAll returns an empty map for a missing key.
		return nil, ports.ErrDocumentNotFound
	}
	return decodeFields(raw)
}

// Set writes a full document, replacing any existing fields.
func (s *RedisStore) Set(ctx context.Context, collection, key string, fields ports.Document) error {
	encoded, err := encodeFields(fields)
	if err != nil {
		return err
	}
	k := s.key(collection, key)
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, k)
	pipe.HSet(ctx, k, encoded)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Update merges fields into an existing document.
func (s *RedisStore) Update(ctx context.Context, collection, key string, fields ports.Document) error {
	k := s.key(collection, key)
	exists, err := s.client.Exists(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("redis update: %w", err)
	}
	if exists == 0 {
		return ports.ErrDocumentNotFound
	}
	encoded, err := encodeFields(fields)
	if err != nil {
		return err
	}
	if err := s.client.HSet(ctx, k, encoded).Err(); err != nil {
		return fmt.Errorf("redis update: %w", err)
	}
	return nil
}

// List returns all documents in a collection via SCAN.
func (s *RedisStore) List(ctx context.Context, collection string) (map[string]ports.Document, error) {
	pattern := s.prefix + collection + ":*"
	out := make(map[string]ports.Document)

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan: %w", err)
		}
		for _, k := range keys {
			raw, err := s.client.HGetAll(ctx, k).Result()
			if err != nil {
				return nil, fmt.Errorf("redis get: %w", err)
			}
			if len(raw) == 0 {
				continue
			}
			doc, err := decodeFields(raw)
			if err != nil {
				return nil, err
			}
			out[strings.TrimPrefix(k, s.prefix+collection+":")] = doc
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return out, nil
}

func encodeFields(fields ports.Document) (map[string]string, error) {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", k, err)
		}
		out[k] = string(data)
	}
	return out, nil
}

func decodeFields(raw map[string]string) (ports.Document, error) {
	doc := make(ports.Document, len(raw))
	for k, v := range raw {
		var value any
		if err := json.Unmarshal([]byte(v), &value); err != nil {
			return nil, fmt.Errorf("decode field %q: %w", k, err)
		}
		doc[k] = value
	}
	return doc, nil
}

// Ensure RedisStore implements ports.DocumentStore
var _ ports.DocumentStore = (*RedisStore)(nil)
