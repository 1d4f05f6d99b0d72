package notifications

import (
	"context"
	"errors"
	"testing"

	"luxestay/pkg/kafka"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"
)

type mockSender struct {
	sendFunc func(ctx context.Context, event *model.BookingCreatedEvent) error
}

func (m *mockSender) SendConfirmation(ctx context.Context, event *model.BookingCreatedEvent) error {
	return m.sendFunc(ctx, event)
}

func bookingMessage(t *testing.T, event *model.BookingCreatedEvent) kafka.Message {
	t.Helper()
	msg, err := kafka.NewMessage().
		WithKey(event.UserID).
		WithValue(event).
		WithEventType(kafka.EventTypeBookingCreated).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return msg
}

func TestBookingCreatedHandler_Sends(t *testing.T) {
	var got *model.BookingCreatedEvent
	sender := &mockSender{
		sendFunc: func(ctx context.Context, event *model.BookingCreatedEvent) error {
			got = event
			return nil
		},
	}

	handler := BookingCreatedHandler(sender, logger.Discard())
	err := handler(context.Background(), bookingMessage(t, &model.BookingCreatedEvent{
		BookingID: "b-1", TransactionID: "482913", UserID: "u-1", HotelName: "Hotel Lumiere",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.TransactionID != "482913" {
		t.Errorf("unexpected event: %+v", got)
	}
}

func TestBookingCreatedHandler_Failures(t *testing.T) {
	okSender := &mockSender{sendFunc: func(ctx context.Context, event *model.BookingCreatedEvent) error { return nil }}
	failingSender := &mockSender{sendFunc: func(ctx context.Context, event *model.BookingCreatedEvent) error {
		return errors.New("smtp down")
	}}

	badValue := kafka.Message{
		Value:   []byte(`{not json`),
		Headers: map[string]string{kafka.HeaderEventType: kafka.EventTypeBookingCreated},
	}

	tests := []struct {
		name      string
		sender    Sender
		msg       kafka.Message
		retryable bool
	}{
		{"bad json", okSender, badValue, false},
		{"missing ids", okSender, bookingMessage(t, &model.BookingCreatedEvent{HotelName: "x"}), false},
		{"sender failure", failingSender, bookingMessage(t, &model.BookingCreatedEvent{BookingID: "b-1", UserID: "u-1"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BookingCreatedHandler(tt.sender, logger.Discard())(context.Background(), tt.msg)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := kafka.ClassifyError(err) == kafka.ErrorTypeTransient; got != tt.retryable {
				t.Errorf("expected retryable=%v, got %v (%v)", tt.retryable, got, err)
			}
		})
	}
}

func TestBookingCreatedHandler_SkipsOtherEvents(t *testing.T) {
	sender := &mockSender{sendFunc: func(ctx context.Context, event *model.BookingCreatedEvent) error {
		t.Error("unexpected send")
		return nil
	}}

	msg := kafka.Message{Headers: map[string]string{kafka.HeaderEventType: "booking.cancelled"}}
	if err := BookingCreatedHandler(sender, logger.Discard())(context.Background(), msg); err != nil {
		t.Errorf("expected skip, got %v", err)
	}
}
