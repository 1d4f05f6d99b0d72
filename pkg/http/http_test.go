package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "luxestay/pkg/errors"
)

func TestWriteError_StatusAndBody(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"not found", apperrors.NotFound("Session"), http.StatusNotFound, apperrors.CodeNotFound},
		{"validation", apperrors.Validation("Validation failed", nil), http.StatusUnprocessableEntity, apperrors.CodeValidation},
		{"plain error", errors.New("mongo: no reachable servers"), http.StatusInternalServerError, apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			_ = WriteError(rec, tt.err)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			var body apperrors.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, body.Code)
			}
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := apperrors.Internal("Failed", errors.New("secret")).WithDetails(map[string]any{"query": "db.users"})
	_ = WriteError(rec, err)

	if strings.Contains(rec.Body.String(), "db.users") || strings.Contains(rec.Body.String(), "secret") {
		t.Errorf("expected internal details to be hidden, got %s", rec.Body.String())
	}
}

func TestWriteList(t *testing.T) {
	rec := httptest.NewRecorder()
	_ = WriteList(rec, []string{"a", "b"}, 2)

	var body struct {
		Data  []string `json:"data"`
		Count int      `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Count != 2 || len(body.Data) != 2 {
		t.Errorf("expected 2 items, got %+v", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
}

func TestWriteCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	_ = WriteCreated(rec, map[string]string{"id": "1"})

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":{"id":"1"}`) {
		t.Errorf("expected data envelope, got %s", rec.Body.String())
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{"valid", `{"name":"Paris"}`, ""},
		{"empty", ``, "Request body is required"},
		{"malformed", `{"name":`, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(req, &p)

			if tt.expectedMessage == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if p.Name != "Paris" {
					t.Errorf("expected Paris, got %s", p.Name)
				}
				return
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeInvalidInput || appErr.Message != tt.expectedMessage {
				t.Errorf("expected %s %q, got %s %q", apperrors.CodeInvalidInput, tt.expectedMessage, appErr.Code, appErr.Message)
			}
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("x", 64)+`"}`))
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	var p map[string]string
	err := DecodeJSON(req, &p)
	if appErr := apperrors.AsAppError(err); appErr.Message != "Request body too large" {
		t.Errorf("expected too large error, got %v", err)
	}
}

func TestQueryParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?adults=2&free=true&bad=x", nil)

	if v, err := QueryInt(req, "adults"); err != nil || v != 2 {
		t.Errorf("expected 2, got %d (%v)", v, err)
	}
	if v, err := QueryInt(req, "missing"); err != nil || v != 0 {
		t.Errorf("expected 0 for missing, got %d (%v)", v, err)
	}
	if _, err := QueryInt(req, "bad"); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
	if v, err := QueryBool(req, "free"); err != nil || !v {
		t.Errorf("expected true, got %v (%v)", v, err)
	}
	if _, err := QueryBool(req, "bad"); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
}
