package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces ledger records in a shared Redis database.
const DefaultPrefix = "pocketledger:"

// RecordStore implements usecase.RecordStore using Redis strings.
type RecordStore struct {
	client *redis.Client
	prefix string
}

// NewRecordStore creates a new RecordStore. An empty prefix selects
// DefaultPrefix.
func NewRecordStore(client *redis.Client, prefix string) *RecordStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &RecordStore{
		client: client,
		prefix: prefix,
	}
}

// Get retrieves a record by key.
func (s *RecordStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get record %s: %w", key, err)
	}

	return value, true, nil
}

// Set stores a record without expiry.
func (s *RecordStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set record %s: %w", key, err)
	}
	return nil
}
