package dialog

import "errors"

// Rejections. A rejected utterance leaves the session as it was.
var (
	ErrInvalidDate             = errors.New("invalid date")
	ErrDateInPast              = errors.New("check-in date is in the past")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out is not after check-in")
	ErrInvalidNumber           = errors.New("invalid number")
	ErrPartySizeOutOfRange     = errors.New("party size out of range")
	ErrRoomCountOutOfRange     = errors.New("room count out of range")
)
