package events

import (
	"context"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// NoopPublisher logs result events without sending them anywhere. Used when no
// brokers are configured.
type NoopPublisher struct {
	log *zap.Logger
}

var _ interfaces.IResultPublisher = (*NoopPublisher)(nil)

func NewNoopPublisher(log *zap.Logger) *NoopPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &NoopPublisher{log: log.Named("events")}
}

func (n *NoopPublisher) Publish(_ context.Context, r entities.PaymentResultRecord) error {
	n.log.Debug("event::payment_result",
		zap.String("token", r.ID),
		zap.String("operation", string(r.Operation)),
		zap.String("status", string(r.Status)),
	)
	return nil
}

func (n *NoopPublisher) Close() error { return nil }
