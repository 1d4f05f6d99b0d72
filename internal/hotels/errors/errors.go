package errors

import "errors"

var (
	// ErrNoResult is returned for every failed upstream call. Callers treat it
	// as recoverable; the wrapped reason is one of the errors below.
	ErrNoResult = errors.New("no hotel result")

	ErrUpstreamUnavailable = errors.New("hotel search service unavailable")

	ErrUpstreamRejected = errors.New("hotel search service rejected the request")

	ErrInvalidLink = errors.New("link is not a SerpApi URL")
)
