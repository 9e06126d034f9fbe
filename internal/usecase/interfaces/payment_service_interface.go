package interfaces

import (
	"context"

	"ryft_bridge/internal/domain/entities"
)

// CustomerDetails is forwarded to the vendor with a payment attempt. The
// channel never supplies it today, so callers pass nil.
type CustomerDetails struct {
	ID    string
	Email string
}

type AttemptPaymentRequest struct {
	ClientSecret    string
	PaymentMethod   entities.PaymentMethod
	CustomerDetails *CustomerDetails
	SubAccountID    string
}

type LatestResultRequest struct {
	PaymentSessionID string
	ClientSecret     string
	SubAccountID     string
}

// OutcomeListener receives progress notifications followed by exactly one
// terminal outcome. It may be invoked from any goroutine.
type OutcomeListener func(entities.PaymentOutcome)

// IPaymentService abstracts the vendor payment SDK (Ryft).
//
// Both operations return immediately; results are delivered to the listener.
type IPaymentService interface {
	AttemptPayment(ctx context.Context, req AttemptPaymentRequest, listener OutcomeListener)
	GetLatestPaymentResult(ctx context.Context, req LatestResultRequest, listener OutcomeListener)
}

// IPaymentServiceFactory derives a vendor client from the session key context.
type IPaymentServiceFactory interface {
	NewPaymentService(key entities.SessionKeyContext) (IPaymentService, error)
}
