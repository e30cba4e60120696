package identity

// Identity is the resolved caller identity. Immutable once constructed; produced only
// by the Resolver and never persisted.
type Identity struct {
	// SubjectID is the opaque stable identifier issued by the identity platform.
	SubjectID string
	// DisplayKey is a secondary identifier suitable for display and logging.
	// Defaults to SubjectID when the source reports none.
	DisplayKey string
	// Issuer names the party that vouched for this identity. Empty when not reported.
	Issuer string
}

// TrustedContext is identity information injected by the host execution environment
// for an invocation. It is bound to the platform's own transport and cannot be forged
// through the request payload.
type TrustedContext struct {
	SubjectID string
	Issuer    string
}

// TokenIdentity is the verifier's view of a successfully verified bearer credential.
type TokenIdentity struct {
	SubjectID  string
	DisplayKey string
	Issuer     string
}
