package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventTypePaymentResult = "payment.result"
	EventVersion           = "1"
	DefaultResultsTopic    = "payment-results.v1"
)

// Envelope is the event schema published for every resolved operation.
// Keep it small and stable.
type Envelope struct {
	EventType    string    `json:"eventType"`
	EventVersion string    `json:"eventVersion"`
	OccurredAt   time.Time `json:"occurredAt"`
	AggregateID  string    `json:"aggregateId"` // request token
	Data         Result    `json:"data"`
}

type Result struct {
	Operation    entities.Operation    `json:"operation"`
	Status       entities.ResultStatus `json:"status"`
	SessionID    string                `json:"sessionId,omitempty"`
	SubAccountID string                `json:"subAccountId,omitempty"`
	Envelope     map[string]any        `json:"envelope"`
	StartedAt    time.Time             `json:"startedAt"`
	ResolvedAt   time.Time             `json:"resolvedAt"`
}

func NewResultEnvelope(r entities.PaymentResultRecord) Envelope {
	return Envelope{
		EventType:    EventTypePaymentResult,
		EventVersion: EventVersion,
		AggregateID:  r.ID,
		Data: Result{
			Operation:    r.Operation,
			Status:       r.Status,
			SessionID:    r.SessionID,
			SubAccountID: r.SubAccountID,
			Envelope:     r.Envelope,
			StartedAt:    r.StartedAt,
			ResolvedAt:   r.ResolvedAt,
		},
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes result events keyed by request token, so every event of
// one operation lands on the same partition.
type KafkaPublisher struct {
	w     messageWriter
	topic string
	log   *zap.Logger
	now   func() time.Time
}

var _ interfaces.IResultPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string, log *zap.Logger) *KafkaPublisher {
	if topic == "" {
		topic = DefaultResultsTopic
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{}, // partition by message key
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(w, topic, log)
}

func newKafkaPublisher(w messageWriter, topic string, log *zap.Logger) *KafkaPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &KafkaPublisher{w: w, topic: topic, log: log.Named("events"), now: time.Now}
}

func (p *KafkaPublisher) Publish(ctx context.Context, r entities.PaymentResultRecord) error {
	evt := NewResultEnvelope(r)
	evt.OccurredAt = p.now().UTC()
	val, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode result event: %w", err)
	}
	if err := p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(r.ID),
		Value: val,
	}); err != nil {
		return fmt.Errorf("publish result event: %w", err)
	}
	p.log.Debug("result event published", zap.String("token", r.ID), zap.String("topic", p.topic))
	return nil
}

func (p *KafkaPublisher) Close() error { return p.w.Close() }
