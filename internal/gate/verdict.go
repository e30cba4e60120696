package gate

import "authgate/internal/identity"

// Reason strings surfaced on denied verdicts. Deliberately generic: they never leak
// whether a token was attempted or why the store said no.
const (
	ReasonIdentityUnresolved = "identity could not be established"
	ReasonNotAuthorized      = "subject not on authorized list"
)

// Verdict is the normalized authorization decision handlers consume unconditionally.
//
// Allowed=false carries a non-empty, user-safe Reason; Identity may still be set
// (known but unauthorized) or nil (unresolvable). Allowed=true carries a non-nil
// Identity and an empty Reason — a Verdict is never allowed with a nil identity.
type Verdict struct {
	Allowed  bool
	Identity *identity.Identity
	Reason   string
}

func denied(id *identity.Identity, reason string) Verdict {
	return Verdict{Allowed: false, Identity: id, Reason: reason}
}

func allowed(id *identity.Identity) Verdict {
	return Verdict{Allowed: true, Identity: id}
}
