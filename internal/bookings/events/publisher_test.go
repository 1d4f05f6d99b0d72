package events

import (
	"context"
	"errors"
	"testing"

	"luxestay/pkg/kafka"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"
)

type mockProducer struct {
	publishFunc func(ctx context.Context, msg kafka.Message) error
	published   []kafka.Message
}

func (m *mockProducer) Publish(ctx context.Context, msg kafka.Message) error {
	m.published = append(m.published, msg)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, msg)
	}
	return nil
}

func TestKafkaPublisher_PublishBookingCreated(t *testing.T) {
	producer := &mockProducer{}
	publisher := NewKafkaPublisher(producer)

	event := &model.BookingCreatedEvent{BookingID: "b-1", TransactionID: "123456", UserID: "u-1"}
	if err := publisher.PublishBookingCreated(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(producer.published) != 1 {
		t.Fatalf("expected 1 message, got %d", len(producer.published))
	}
	msg := producer.published[0]
	if msg.Key != "u-1" {
		t.Errorf("expected key u-1, got %s", msg.Key)
	}
	if msg.GetEventType() != kafka.EventTypeBookingCreated {
		t.Errorf("expected event type %s, got %s", kafka.EventTypeBookingCreated, msg.GetEventType())
	}
	if msg.GetCorrelationID() != "123456" {
		t.Errorf("expected correlation id 123456, got %s", msg.GetCorrelationID())
	}

	var decoded model.BookingCreatedEvent
	if err := msg.DecodeValue(&decoded); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if decoded.BookingID != "b-1" {
		t.Errorf("expected booking b-1, got %s", decoded.BookingID)
	}
}

func TestKafkaPublisher_PropagatesProducerError(t *testing.T) {
	producer := &mockProducer{
		publishFunc: func(ctx context.Context, msg kafka.Message) error {
			return kafka.ErrProducerClosed
		},
	}

	err := NewKafkaPublisher(producer).PublishBookingCreated(context.Background(), &model.BookingCreatedEvent{UserID: "u-1"})
	if !errors.Is(err, kafka.ErrProducerClosed) {
		t.Errorf("expected ErrProducerClosed, got %v", err)
	}
}

func TestLogPublisher_NeverFails(t *testing.T) {
	if err := NewLogPublisher(logger.Discard()).PublishBookingCreated(context.Background(), &model.BookingCreatedEvent{}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
