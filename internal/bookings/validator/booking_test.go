package validator

import (
	"errors"
	"testing"
	"time"

	bookingserrors "luxestay/internal/bookings/errors"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"
	"luxestay/pkg/validation"
)

func newTestValidator() *BookingValidator {
	v := NewBookingValidator(logger.Discard())
	v.now = func() time.Time { return time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC) }
	return v
}

func validRequest() *model.BookingRequest {
	price := 12500.0
	return &model.BookingRequest{
		UserID:     "65f000000000000000000001",
		HotelName:  "The Taj Mahal Palace",
		HotelID:    "ChkI2Y3H",
		City:       "Mumbai",
		CheckIn:    "2030-01-10",
		CheckOut:   "2030-01-12",
		RoomType:   "Standard Room",
		TotalPrice: &price,
		Payment: &model.Payment{
			CardNumber: "4111111111111111",
			Expiry:     "12/30",
			CVV:        "123",
			Cardholder: "Jane Doe",
		},
	}
}

func firstFieldError(t *testing.T, err error) validation.ValidationError {
	t.Helper()
	var verrs validation.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	return verrs[0]
}

func TestValidate_Success(t *testing.T) {
	if err := newTestValidator().Validate(validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_FifteenDigitCardFails(t *testing.T) {
	req := validRequest()
	req.Payment.CardNumber = "411111111111111"

	err := newTestValidator().Validate(req)
	if !errors.Is(err, bookingserrors.ErrInvalidPayment) {
		t.Fatalf("expected ErrInvalidPayment, got %v", err)
	}
}

func TestValidate_ExpiredCardFails(t *testing.T) {
	req := validRequest()
	req.Payment.Expiry = "01/25"

	if err := newTestValidator().Validate(req); !errors.Is(err, bookingserrors.ErrInvalidPayment) {
		t.Fatalf("expected ErrInvalidPayment, got %v", err)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *model.BookingRequest)
		wantField string
	}{
		{"missing user", func(r *model.BookingRequest) { r.UserID = "" }, "user_id"},
		{"missing hotel id", func(r *model.BookingRequest) { r.HotelID = "" }, "hotel_id"},
		{"missing price", func(r *model.BookingRequest) { r.TotalPrice = nil }, "total_price"},
		{"missing payment", func(r *model.BookingRequest) { r.Payment = nil }, "payment"},
		{"missing card number", func(r *model.BookingRequest) { r.Payment.CardNumber = "" }, "payment.card_number"},
		{"missing cardholder", func(r *model.BookingRequest) { r.Payment.Cardholder = "" }, "payment.cardholder"},
		{"bad check in format", func(r *model.BookingRequest) { r.CheckIn = "10/01/2030" }, "check_in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			fe := firstFieldError(t, newTestValidator().Validate(req))
			if fe.Field != tt.wantField {
				t.Errorf("expected field %s, got %s (%s)", tt.wantField, fe.Field, fe.Message)
			}
		})
	}
}

func TestValidate_CheckOutMustFollowCheckIn(t *testing.T) {
	req := validRequest()
	req.CheckOut = req.CheckIn

	fe := firstFieldError(t, newTestValidator().Validate(req))
	if fe.Field != "check_out" || fe.Message != bookingserrors.ErrInvalidStay.Error() {
		t.Errorf("expected check_out stay error, got %s: %s", fe.Field, fe.Message)
	}
}

func TestValidate_NegativePrice(t *testing.T) {
	req := validRequest()
	price := -1.0
	req.TotalPrice = &price

	fe := firstFieldError(t, newTestValidator().Validate(req))
	if fe.Message != "total_price cannot be negative" {
		t.Errorf("unexpected message: %s", fe.Message)
	}
}
