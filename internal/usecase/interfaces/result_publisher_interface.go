package interfaces

import (
	"context"

	"ryft_bridge/internal/domain/entities"
)

// IResultPublisher announces resolved envelopes to downstream consumers.
type IResultPublisher interface {
	Publish(ctx context.Context, r entities.PaymentResultRecord) error
}
