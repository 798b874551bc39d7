package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"posada/config"
	"posada/infras/kafka"
	"posada/infras/otel"
	"posada/shared/constant"
)

const (
	TypeReservationCreated   = "reservation.created"
	TypeReservationCancelled = "reservation.cancelled"
)

// Envelope is the wire shape of every domain event.
type Envelope struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	OccurredAt string `json:"occurred_at"`
	Payload    any    `json:"payload"`
}

// Publisher emits domain events after a successful persist. Publishing is
// best effort: a failed publish is logged and never fails the operation that
// produced the event.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any)
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _, _ string, _ any) {}

func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, domain events will not be published")

		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, eventType, key string, payload any) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	envelope := Envelope{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Payload:    payload,
	}

	err := p.client.SendMessages(ctx, p.topic, kafka.Message{
		Key:   key,
		Value: envelope,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", eventType).Str("key", key).Msg("failed to publish domain event")
	}
}
