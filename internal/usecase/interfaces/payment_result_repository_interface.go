package interfaces

import (
	"context"

	"ryft_bridge/internal/domain/entities"
)

// IPaymentResultRepository abstracts DynamoDB persistence for resolved envelopes.

type IPaymentResultRepository interface {
	Create(ctx context.Context, r entities.PaymentResultRecord) (entities.PaymentResultRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentResultRecord, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.PaymentResultRecord, error)
}
