package authz

import "time"

// Status classifies an allow-list entry's lifecycle state.
type Status string

const (
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
)

// Entry is a durable allow-list record. The store owns these records; this core only
// reads them.
type Entry struct {
	SubjectID string
	Status    Status
	CreatedAt time.Time
}
