//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"authgate/internal/authz"
	"authgate/internal/authz/store/postgres"
	"authgate/pkg/sentinel"
	"authgate/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(s.postgres.CreateAuthorizedUsersTable(context.Background()))
	s.store = postgres.New(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "authorized_users"))
}

func (s *PostgresStoreSuite) seed(subjectID string, status authz.Status) {
	_, err := s.postgres.DB.ExecContext(context.Background(),
		`INSERT INTO authorized_users (subject_id, status) VALUES ($1, $2)`,
		subjectID, string(status))
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestFindActive() {
	ctx := context.Background()

	s.Run("active row is found", func() {
		s.seed("user-1", authz.StatusActive)

		entry, err := s.store.FindActive(ctx, "user-1")
		s.Require().NoError(err)
		s.Equal("user-1", entry.SubjectID)
		s.Equal(authz.StatusActive, entry.Status)
		s.False(entry.CreatedAt.IsZero())
	})

	s.Run("missing row is a clean miss", func() {
		_, err := s.store.FindActive(ctx, "nobody")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("revoked row is a clean miss", func() {
		s.seed("user-2", authz.StatusRevoked)

		_, err := s.store.FindActive(ctx, "user-2")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestFindActiveQueryFailure runs last in the suite: closing the handle makes the
// query itself fail, which must surface as an error distinct from a miss.
func (s *PostgresStoreSuite) TestFindActiveQueryFailure() {
	s.postgres.DB.Close()

	_, err := s.store.FindActive(context.Background(), "user-1")
	s.Require().Error(err)
	s.NotErrorIs(err, sentinel.ErrNotFound)
}
