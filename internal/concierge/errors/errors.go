package errors

import "errors"

var (
	ErrSessionNotFound = errors.New("concierge session not found")
	ErrInvalidSession  = errors.New("invalid session ID")
	ErrSessionBusy     = errors.New("concierge session is locked by another request")
)
