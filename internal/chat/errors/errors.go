package errors

import "errors"

var (
	ErrNotConfigured = errors.New("chat backend is not configured")

	ErrEmptyCompletion = errors.New("chat backend returned no content")
)
