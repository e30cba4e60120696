// Package audit defines security audit events and publishers for authorization
// outcomes. Denials and degraded-mode signals are always logged; when a Kafka topic is
// configured they are additionally published for downstream security tooling.
package audit

import "time"

// Event actions emitted by the gate and checker.
const (
	ActionAccessDenied  = "access_denied"
	ActionStoreDegraded = "allowlist_store_degraded"
)

// Event is a security-relevant authorization outcome.
type Event struct {
	Action    string    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	At        time.Time `json:"at"`
}
