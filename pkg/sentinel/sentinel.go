package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and collaborator adapters return
// these (optionally wrapped) so services can tell a legitimate negative result apart
// from an infrastructure failure.
//
// - ErrNotFound: no matching record exists in the store
// - ErrTokenInvalid: a presented credential failed verification (invalid, expired, malformed)
// - ErrUnavailable: store or service could not be reached
var (
	ErrNotFound     = errors.New("not found")
	ErrTokenInvalid = errors.New("token invalid")
	ErrUnavailable  = errors.New("unavailable")
)
