package validator

import (
	"fmt"
	"time"

	bookingserrors "luxestay/internal/bookings/errors"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"
	"luxestay/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const stayDateLayout = "2006-01-02"

var messages = map[string]string{
	"total_price.gte": "total_price cannot be negative",
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
	now      func() time.Time
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: validation.New(),
		logger:   log,
		now:      time.Now,
	}
}

// Validate checks field presence and formats, then the stay range, then the
// payment block. Payment failures wrap ErrInvalidPayment.
func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		return validation.Translate(err, messages)
	}

	checkIn, _ := time.Parse(stayDateLayout, req.CheckIn)
	checkOut, _ := time.Parse(stayDateLayout, req.CheckOut)
	if !checkOut.After(checkIn) {
		return validation.ValidationErrors{
			validation.ValidationError{
				Field:   "check_out",
				Message: bookingserrors.ErrInvalidStay.Error(),
			},
		}
	}

	if !IsPaymentValid(req.Payment, v.now()) {
		v.logger.Debug("Payment details rejected", "hotel_id", req.HotelID, "user_id", req.UserID)
		return fmt.Errorf("%w: %s", bookingserrors.ErrInvalidPayment, PaymentErrorMessage)
	}

	return nil
}
