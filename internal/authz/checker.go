// Package authz decides allow-list membership for resolved subjects.
//
// The allow-list is split in two tiers: an immutable static set compiled into the
// process, and a durable store managed operationally. Most traffic from the small
// fixed population of trusted accounts resolves without a network call; the store
// covers the growing or frequently-revoked remainder without redeploys.
package authz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"authgate/internal/platform/audit"
	"authgate/pkg/requestcontext"
	"authgate/pkg/sentinel"
)

// Checker decides whether a subject is permitted to invoke protected handlers.
type Checker struct {
	static  *StaticSet
	store   AllowlistStore
	logger  *slog.Logger
	metrics Metrics
	auditor AuditPublisher
}

// Metrics receives checker observations. Implementations must be safe for concurrent
// use.
type Metrics interface {
	ObserveStoreFallback()
}

type nopMetrics struct{}

func (nopMetrics) ObserveStoreFallback() {}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(metrics Metrics) Option {
	return func(c *Checker) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

// WithAuditPublisher sets the audit publisher for degraded-mode events.
func WithAuditPublisher(auditor AuditPublisher) Option {
	return func(c *Checker) {
		c.auditor = auditor
	}
}

// NewChecker constructs a Checker over the static set and durable store.
func NewChecker(static *StaticSet, store AllowlistStore, opts ...Option) (*Checker, error) {
	if static == nil {
		return nil, fmt.Errorf("static allow-set is required")
	}
	if store == nil {
		return nil, fmt.Errorf("allowlist store is required")
	}

	c := &Checker{
		static:  static,
		store:   store,
		logger:  slog.Default(),
		metrics: nopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// IsAuthorized reports whether subjectID is on the allow-list. An empty subject is
// denied without touching the store. The static set is consulted first and
// short-circuits; otherwise the durable store is queried for an active record.
//
// A store query *failure* (not a miss) degrades to the static result already computed,
// which is false on this path. That fail-closed fallback keeps a transient store
// outage from crashing the request path, and is logged and audited so operators can
// tell "denied" from "denied because the store was unreachable".
func (c *Checker) IsAuthorized(ctx context.Context, subjectID string) bool {
	if subjectID == "" {
		return false
	}

	if c.static.Contains(subjectID) {
		return true
	}

	entry, err := c.store.FindActive(ctx, subjectID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false
		}
		c.degraded(ctx, subjectID, err)
		return false
	}
	return entry != nil && entry.Status == StatusActive
}

func (c *Checker) degraded(ctx context.Context, subjectID string, err error) {
	c.metrics.ObserveStoreFallback()
	c.logger.WarnContext(ctx, "allowlist store unavailable, denying unless statically listed",
		"event", audit.ActionStoreDegraded,
		"subject", subjectID,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	if c.auditor != nil {
		c.auditor.Emit(ctx, audit.Event{
			Action:  audit.ActionStoreDegraded,
			Subject: subjectID,
			Reason:  "allowlist store query failed",
		})
	}
}
