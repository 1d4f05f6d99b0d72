package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrInvalidPayment = errors.New("invalid payment details")

	ErrInvalidStay = errors.New("check-out must be after check-in")
)
