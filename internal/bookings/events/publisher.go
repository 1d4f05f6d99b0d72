package events

import (
	"context"
	"fmt"

	"luxestay/pkg/kafka"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"
)

const (
	SchemaVersion = "1"
	Source        = "luxestay-api"
)

type Publisher interface {
	PublishBookingCreated(ctx context.Context, event *model.BookingCreatedEvent) error
}

// MessagePublisher is the subset of *kafka.Producer used here.
type MessagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type kafkaPublisher struct {
	producer MessagePublisher
}

func NewKafkaPublisher(producer MessagePublisher) Publisher {
	return &kafkaPublisher{producer: producer}
}

// PublishBookingCreated keys events by user so one user's bookings stay ordered.
func (p *kafkaPublisher) PublishBookingCreated(ctx context.Context, event *model.BookingCreatedEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(event.UserID).
		WithValue(event).
		WithEventType(kafka.EventTypeBookingCreated).
		WithCorrelationID(event.TransactionID).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build booking event: %w", err)
	}
	return p.producer.Publish(ctx, msg)
}

type logPublisher struct {
	log *logger.Logger
}

// NewLogPublisher is used when Kafka is disabled.
func NewLogPublisher(log *logger.Logger) Publisher {
	return &logPublisher{log: log}
}

func (p *logPublisher) PublishBookingCreated(_ context.Context, event *model.BookingCreatedEvent) error {
	p.log.Info("Booking event not published, Kafka disabled",
		"event_type", kafka.EventTypeBookingCreated,
		"booking_id", event.BookingID,
		"transaction_id", event.TransactionID,
	)
	return nil
}
