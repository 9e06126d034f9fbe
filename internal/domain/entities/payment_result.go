package entities

import "time"

// PaymentResultRecord is a resolved Result Envelope kept for traceability.
//
// Storage model (DynamoDB):
//   - PK: id (the request token handed out when the operation started)
//   - GSI1 (session_id-index): session_id
//
// Envelope is the serialized envelope exactly as it was returned to the caller.
type PaymentResultRecord struct {
	ID           string         `json:"id"`
	Operation    Operation      `json:"operation"`
	Status       ResultStatus   `json:"status"`
	SessionID    string         `json:"session_id,omitempty"`
	SubAccountID string         `json:"sub_account_id,omitempty"`
	Envelope     map[string]any `json:"envelope"`
	StartedAt    time.Time      `json:"started_at"`
	ResolvedAt   time.Time      `json:"resolved_at"`
}
