// Package identity resolves the caller identity for an inbound request event.
//
// Resolution tries the platform-injected trusted context first and falls back to a
// bearer credential verified by an external collaborator. All failures collapse to a
// nil identity; nothing propagates past the resolver boundary.
package identity

import (
	"context"
	"fmt"
	"log/slog"

	"authgate/pkg/requestcontext"
)

// Resolver extracts a caller identity from an inbound request event.
type Resolver struct {
	trusted  TrustedContextProvider
	verifier TokenVerifier
	logger   *slog.Logger
	metrics  Metrics
}

// Metrics receives resolver outcome observations. Implementations must be safe for
// concurrent use.
type Metrics interface {
	ObserveResolution(path string)
}

type nopMetrics struct{}

func (nopMetrics) ObserveResolution(string) {}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(metrics Metrics) Option {
	return func(r *Resolver) {
		if metrics != nil {
			r.metrics = metrics
		}
	}
}

// NewResolver constructs a Resolver with its collaborators.
func NewResolver(trusted TrustedContextProvider, verifier TokenVerifier, opts ...Option) (*Resolver, error) {
	if trusted == nil {
		return nil, fmt.Errorf("trusted context provider is required")
	}
	if verifier == nil {
		return nil, fmt.Errorf("token verifier is required")
	}

	r := &Resolver{
		trusted:  trusted,
		verifier: verifier,
		logger:   slog.Default(),
		metrics:  nopMetrics{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve returns the caller identity for a request, or nil when none can be
// established. Priority is strict: a usable trusted context wins and the bearer path
// is never consulted; otherwise a bearer credential from the headers is verified.
// A trusted context without a subject identifier falls through to the bearer path.
func (r *Resolver) Resolve(ctx context.Context, headers map[string][]string) *Identity {
	if tc, ok := r.trusted.TrustedContext(ctx); ok && tc.SubjectID != "" {
		r.metrics.ObserveResolution("trusted_context")
		return &Identity{
			SubjectID:  tc.SubjectID,
			DisplayKey: tc.SubjectID,
			Issuer:     tc.Issuer,
		}
	}

	token, ok := BearerToken(headers)
	if !ok {
		r.metrics.ObserveResolution("none")
		return nil
	}

	verified, err := r.verifier.Verify(ctx, token)
	if err != nil {
		// Verification failures are logged here and surface to callers only as an
		// unresolved identity; the verdict must not reveal that a token was attempted.
		r.logger.WarnContext(ctx, "bearer token verification failed",
			"error", err,
		)
		r.metrics.ObserveResolution("none")
		return nil
	}
	if verified == nil || verified.SubjectID == "" {
		r.metrics.ObserveResolution("none")
		return nil
	}

	displayKey := verified.DisplayKey
	if displayKey == "" {
		displayKey = verified.SubjectID
	}
	r.metrics.ObserveResolution("bearer_token")
	return &Identity{
		SubjectID:  verified.SubjectID,
		DisplayKey: displayKey,
		Issuer:     verified.Issuer,
	}
}

// ContextProvider reads the trusted context recorded by transport glue via
// pkg/requestcontext. It is the production TrustedContextProvider.
type ContextProvider struct{}

// TrustedContext implements TrustedContextProvider.
func (ContextProvider) TrustedContext(ctx context.Context) (TrustedContext, bool) {
	subjectID, issuer, ok := requestcontext.TrustedSubject(ctx)
	if !ok {
		return TrustedContext{}, false
	}
	return TrustedContext{SubjectID: subjectID, Issuer: issuer}, true
}
