// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Values are set by transport middleware and consumed by services. Keeping this package
// free of net/http lets the resolver and gate stay host-framework-agnostic.
//
// Usage in services (read values):
//
//	subject, ok := requestcontext.TrustedSubject(ctx)
//	requestID := requestcontext.RequestID(ctx)
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithTrustedSubject(ctx, subject, issuer)
//	ctx = requestcontext.WithRequestID(ctx, requestID)
package requestcontext

import "context"

// Context key types (unexported for encapsulation).
type (
	trustedSubjectKey struct{}
	requestIDKey      struct{}
	subjectIDKey      struct{}
	displayKeyKey     struct{}
)

type trustedSubject struct {
	subjectID string
	issuer    string
}

// WithTrustedSubject records the platform-injected trusted identity for this invocation.
// Only transport glue that receives identity over the platform's own trusted channel
// should call this; values derived from the request payload must never be stored here.
func WithTrustedSubject(ctx context.Context, subjectID, issuer string) context.Context {
	return context.WithValue(ctx, trustedSubjectKey{}, trustedSubject{subjectID: subjectID, issuer: issuer})
}

// TrustedSubject returns the platform-injected subject and issuer for this invocation,
// and whether one was recorded at all.
func TrustedSubject(ctx context.Context) (subjectID, issuer string, ok bool) {
	ts, ok := ctx.Value(trustedSubjectKey{}).(trustedSubject)
	if !ok {
		return "", "", false
	}
	return ts.subjectID, ts.issuer, true
}

// WithRequestID attaches a request correlation ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request correlation ID, or "" when unset.
func RequestID(ctx context.Context) string {
	id, ok := ctx.Value(requestIDKey{}).(string)
	if !ok {
		return ""
	}
	return id
}

// WithSubject records the authorized caller for downstream handlers. Handlers read it
// for display and logging only; the gate's verdict is the sole authorization decision.
func WithSubject(ctx context.Context, subjectID, displayKey string) context.Context {
	ctx = context.WithValue(ctx, subjectIDKey{}, subjectID)
	return context.WithValue(ctx, displayKeyKey{}, displayKey)
}

// SubjectID returns the authorized caller's subject ID, or "" when unset.
func SubjectID(ctx context.Context) string {
	id, ok := ctx.Value(subjectIDKey{}).(string)
	if !ok {
		return ""
	}
	return id
}

// DisplayKey returns the authorized caller's display key, or "" when unset.
func DisplayKey(ctx context.Context) string {
	key, ok := ctx.Value(displayKeyKey{}).(string)
	if !ok {
		return ""
	}
	return key
}
