package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posada/config"
	"posada/infras/kafka"
	kafkaMocks "posada/infras/kafka/mocks"
	"posada/infras/otel/mocks"
	"posada/internal/events"
)

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "posada.reservations"

	pub := events.New(cfg, mockClient, mocks.NewOtel())

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "posada.reservations", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "R1", messages[0].Key)

			envelope, ok := messages[0].Value.(events.Envelope)
			require.True(t, ok)
			assert.Equal(t, events.TypeReservationCreated, envelope.Type)
			assert.NotEmpty(t, envelope.EventID)

			payload, err := json.Marshal(envelope.Payload)
			require.NoError(t, err)
			assert.JSONEq(t, `{"id": "R1"}`, string(payload))

			return nil
		})

	pub.Publish(context.Background(), events.TypeReservationCreated, "R1", map[string]string{"id": "R1"})
}

func TestPublisher_PublishFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClient := kafkaMocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker unreachable"))

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "posada.reservations"

	pub := events.New(cfg, mockClient, mocks.NewOtel())

	// must not panic or propagate
	pub.Publish(context.Background(), events.TypeReservationCancelled, "R1", nil)
}

func TestPublisher_DisabledKafkaIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	pub := events.New(cfg, mockClient, mocks.NewOtel())

	// no SendMessages expectation: the noop publisher never touches the client
	pub.Publish(context.Background(), events.TypeReservationCreated, "R1", nil)
}
