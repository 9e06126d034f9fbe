package response

import (
	"time"

	"ryft_bridge/internal/domain/entities"
)

type PaymentResultResponse struct {
	ID           string         `json:"id"`
	Operation    string         `json:"operation"`
	Status       string         `json:"status"`
	SessionID    string         `json:"session_id,omitempty"`
	SubAccountID string         `json:"sub_account_id,omitempty"`
	Envelope     map[string]any `json:"envelope"`
	StartedAt    time.Time      `json:"started_at"`
	ResolvedAt   time.Time      `json:"resolved_at"`
}

func FromPaymentResult(r entities.PaymentResultRecord) PaymentResultResponse {
	return PaymentResultResponse{
		ID:           r.ID,
		Operation:    string(r.Operation),
		Status:       string(r.Status),
		SessionID:    r.SessionID,
		SubAccountID: r.SubAccountID,
		Envelope:     r.Envelope,
		StartedAt:    r.StartedAt,
		ResolvedAt:   r.ResolvedAt,
	}
}

func FromPaymentResults(rs []entities.PaymentResultRecord) []PaymentResultResponse {
	out := make([]PaymentResultResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromPaymentResult(r))
	}
	return out
}
