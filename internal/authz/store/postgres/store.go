// Package postgres provides the PostgreSQL-backed allow-list store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"authgate/internal/authz"
	"authgate/pkg/sentinel"
)

// Store reads allow-list entries from the authorized_users table.
type Store struct {
	db *sql.DB
}

// New constructs a PostgreSQL-backed allow-list store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindActive implements authz.AllowlistStore. A missing or non-active row is a clean
// miss (sentinel.ErrNotFound); any other error means the query itself failed.
func (s *Store) FindActive(ctx context.Context, subjectID string) (*authz.Entry, error) {
	const query = `
		SELECT subject_id, status, created_at
		FROM authorized_users
		WHERE subject_id = $1 AND status = 'active'
	`
	var entry authz.Entry
	err := s.db.QueryRowContext(ctx, query, subjectID).Scan(&entry.SubjectID, &entry.Status, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("query authorized user: %w", err)
	}
	return &entry, nil
}
