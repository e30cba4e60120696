package identity

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks TrustedContextProvider,TokenVerifier

import "context"

// TrustedContextProvider exposes the platform-injected trusted identity for the
// current invocation, when the host environment populated one.
type TrustedContextProvider interface {
	TrustedContext(ctx context.Context) (TrustedContext, bool)
}

// TokenVerifier verifies a bearer credential out-of-band and yields the identity it
// encodes. It fails on invalid, expired, or malformed tokens; timeouts and retries are
// the verifier's own concern.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*TokenIdentity, error)
}
