package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "luxestay/pkg/errors"
)

// DecodeJSON reads a JSON request body into v. Malformed or empty bodies and
// bodies over the size limit are reported as invalid input.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return apperrors.InvalidInput("Request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return apperrors.InvalidInput("Request body too large")
		case errors.Is(err, io.EOF):
			return apperrors.InvalidInput("Request body is required")
		default:
			return apperrors.InvalidInput("Invalid request body")
		}
	}
	return nil
}

// QueryInt parses an optional integer query parameter. Missing values return 0.
func QueryInt(r *http.Request, name string) (int, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, s))
	}
	return v, nil
}

// QueryBool parses an optional boolean query parameter. Missing values return false.
func QueryBool(r *http.Request, name string) (bool, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, s))
	}
	return v, nil
}
