package middleware

import (
	"context"
	"net/http"

	apperrors "luxestay/pkg/errors"
	httputil "luxestay/pkg/http"
	"luxestay/pkg/logger"
)

type contextKey string

const (
	RequestIDKey    contextKey = "request_id"
	RequestIDHeader            = "X-Request-ID"
)

// RequestID returns the ID assigned by RequestLogging, or "" outside a request.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func reject(w http.ResponseWriter, log *logger.Logger, r *http.Request, err *apperrors.AppError) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		log.Error("failed to write error response",
			"request_id", RequestID(r.Context()),
			"operation", "WriteError",
			"error", writeErr,
		)
	}
}
