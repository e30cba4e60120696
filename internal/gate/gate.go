// Package gate orchestrates identity resolution and authorization into a single
// verdict. Authorize is the only function business handlers call; they treat a denial
// as final and never re-derive their own decision from the identity.
package gate

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"authgate/internal/authz"
	"authgate/internal/identity"
	"authgate/internal/platform/audit"
)

var tracer = otel.Tracer("authgate/gate")

// Resolver extracts a caller identity from an inbound request event.
type Resolver interface {
	Resolve(ctx context.Context, headers map[string][]string) *identity.Identity
}

// Checker decides allow-list membership for a resolved subject.
type Checker interface {
	IsAuthorized(ctx context.Context, subjectID string) bool
}

// Metrics receives verdict observations. Implementations must be safe for concurrent
// use.
type Metrics interface {
	ObserveVerdict(outcome string)
}

type nopMetrics struct{}

func (nopMetrics) ObserveVerdict(string) {}

// Gate is the authorization entry point placed in front of protected handlers.
// Pure orchestration; it performs no I/O of its own.
type Gate struct {
	resolver Resolver
	checker  Checker
	logger   *slog.Logger
	metrics  Metrics
	auditor  AuditPublisher
}

// AuditPublisher emits audit events for denied requests.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Option configures a Gate.
type Option func(*Gate)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(metrics Metrics) Option {
	return func(g *Gate) {
		if metrics != nil {
			g.metrics = metrics
		}
	}
}

// WithAuditPublisher sets the audit publisher for denials.
func WithAuditPublisher(auditor AuditPublisher) Option {
	return func(g *Gate) {
		g.auditor = auditor
	}
}

// New constructs a Gate with its collaborators.
func New(resolver Resolver, checker Checker, opts ...Option) (*Gate, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	if checker == nil {
		return nil, fmt.Errorf("checker is required")
	}

	g := &Gate{
		resolver: resolver,
		checker:  checker,
		logger:   slog.Default(),
		metrics:  nopMetrics{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Authorize resolves the caller from the request headers and invocation context and
// returns the verdict. The two suspension points (token verification, store query) run
// sequentially inside the collaborators; cancellation of ctx aborts them and the
// resulting failure collapses into a denial like any other.
func (g *Gate) Authorize(ctx context.Context, headers map[string][]string) Verdict {
	ctx, span := tracer.Start(ctx, "gate.Authorize")
	defer span.End()

	id := g.resolver.Resolve(ctx, headers)
	if id == nil {
		return g.deny(ctx, span, nil, ReasonIdentityUnresolved)
	}

	if !g.checker.IsAuthorized(ctx, id.SubjectID) {
		return g.deny(ctx, span, id, ReasonNotAuthorized)
	}

	span.SetAttributes(attribute.String("gate.outcome", "allowed"))
	g.metrics.ObserveVerdict("allowed")
	return allowed(id)
}

func (g *Gate) deny(ctx context.Context, span trace.Span, id *identity.Identity, reason string) Verdict {
	subject := ""
	if id != nil {
		subject = id.SubjectID
	}

	span.SetAttributes(
		attribute.String("gate.outcome", "denied"),
		attribute.String("gate.reason", reason),
	)
	g.metrics.ObserveVerdict("denied")
	g.logger.InfoContext(ctx, "request denied",
		"reason", reason,
		"subject", subject,
	)
	if g.auditor != nil {
		g.auditor.Emit(ctx, audit.Event{
			Action:  audit.ActionAccessDenied,
			Subject: subject,
			Reason:  reason,
		})
	}
	return denied(id, reason)
}

// compile-time conformance checks for the production collaborators.
var (
	_ Resolver = (*identity.Resolver)(nil)
	_ Checker  = (*authz.Checker)(nil)
)
