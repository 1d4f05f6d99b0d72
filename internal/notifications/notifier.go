// Package notifications consumes booking events and sends guest
// confirmations.
package notifications

import (
	"context"
	"fmt"

	"luxestay/pkg/kafka"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"
)

// Sender delivers a booking confirmation to the guest.
type Sender interface {
	SendConfirmation(ctx context.Context, event *model.BookingCreatedEvent) error
}

type logSender struct {
	log *logger.Logger
}

// NewLogSender writes confirmations to the log. It stands in until an email
// provider is configured.
func NewLogSender(log *logger.Logger) Sender {
	return &logSender{log: log}
}

func (s *logSender) SendConfirmation(_ context.Context, event *model.BookingCreatedEvent) error {
	s.log.Info("Booking confirmation sent",
		"booking_id", event.BookingID,
		"transaction_id", event.TransactionID,
		"user_id", event.UserID,
		"hotel_name", event.HotelName,
		"city", event.City,
		"check_in", event.CheckIn,
		"check_out", event.CheckOut,
		"total_price", event.TotalPrice,
	)
	return nil
}

// BookingCreatedHandler ignores other event types. Undecodable or incomplete
// events are permanent failures and go to the DLQ; sender errors are retried.
func BookingCreatedHandler(sender Sender, log *logger.Logger) kafka.MessageHandler {
	return func(ctx context.Context, msg kafka.Message) error {
		if eventType := msg.GetEventType(); eventType != kafka.EventTypeBookingCreated {
			log.Debug("Skipping event", "event_type", eventType, "event_id", msg.GetEventID())
			return nil
		}

		var event model.BookingCreatedEvent
		if err := msg.DecodeValue(&event); err != nil {
			return err
		}
		if event.BookingID == "" || event.UserID == "" {
			return kafka.NewPermanentError("booking event is missing ids", fmt.Errorf("event %s", msg.GetEventID()))
		}

		if err := sender.SendConfirmation(ctx, &event); err != nil {
			return kafka.NewTransientError("failed to send confirmation", err)
		}
		return nil
	}
}
