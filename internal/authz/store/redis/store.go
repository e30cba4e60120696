// Package redis provides the Redis-backed allow-list store.
//
// Deployments that manage the authorized population in Redis keep one key per subject
// holding the entry status. This is an alternate durable store, not a verdict cache.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"authgate/internal/authz"
	"authgate/pkg/sentinel"
)

const subjectKeyPrefix = "allowlist:subject:"

// Store reads allow-list entries from Redis.
type Store struct {
	client *redis.Client
}

// New constructs a Redis-backed allow-list store.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// FindActive implements authz.AllowlistStore. A missing key or a non-active status is
// a clean miss; connectivity errors surface as query failures.
func (s *Store) FindActive(ctx context.Context, subjectID string) (*authz.Entry, error) {
	status, err := s.client.Get(ctx, subjectKeyPrefix+subjectID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query allowlist entry: %w", err)
	}
	if authz.Status(status) != authz.StatusActive {
		return nil, sentinel.ErrNotFound
	}
	return &authz.Entry{
		SubjectID: subjectID,
		Status:    authz.StatusActive,
	}, nil
}
