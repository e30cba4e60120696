package authz

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks AllowlistStore,AuditPublisher

import (
	"context"

	"authgate/internal/platform/audit"
)

// AllowlistStore reads durable allow-list records.
//
// FindActive returns the entry for subjectID when one exists with active status,
// sentinel.ErrNotFound for a clean miss (including revoked entries), and any other
// error when the query itself failed. The distinction matters: a miss is a legitimate
// negative result, a failure triggers the checker's fail-closed fallback.
type AllowlistStore interface {
	FindActive(ctx context.Context, subjectID string) (*Entry, error)
}

// AuditPublisher emits audit events for security-relevant outcomes.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}
