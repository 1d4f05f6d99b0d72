package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "luxestay/pkg/errors"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockBookingService struct {
	createFunc func(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error)
	listFunc   func(ctx context.Context, userID string) ([]*model.Booking, error)
}

func (m *mockBookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
	return m.createFunc(ctx, req)
}

func (m *mockBookingService) ListForUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	return m.listFunc(ctx, userID)
}

func newRouter(svc *mockBookingService) *httprouter.Router {
	router := httprouter.New()
	NewBookingHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestCreate_Returns201(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
			if req.HotelID != "h-1" {
				t.Errorf("expected hotel h-1, got %s", req.HotelID)
			}
			return &model.BookingConfirmation{Message: "Booking confirmed successfully", BookingID: "b-1", TransactionID: "123456"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"hotel_id":"h-1"}`))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body struct {
		Data model.BookingConfirmation `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if body.Data.TransactionID != "123456" || body.Data.BookingID != "b-1" {
		t.Errorf("unexpected confirmation: %+v", body.Data)
	}
}

func TestCreate_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"malformed json", `{"hotel_id":`, nil, http.StatusBadRequest},
		{"invalid payment", `{}`, apperrors.InvalidInput("Invalid payment details."), http.StatusBadRequest},
		{"validation", `{}`, apperrors.Validation("city is required", map[string]any{"city": "city is required"}), http.StatusUnprocessableEntity},
		{"unknown user", `{}`, apperrors.NotFoundWithID("User", "u-1"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{
				createFunc: func(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
					return nil, tt.err
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestListForUser(t *testing.T) {
	svc := &mockBookingService{
		listFunc: func(ctx context.Context, userID string) ([]*model.Booking, error) {
			if userID != "u-42" {
				t.Errorf("expected u-42, got %s", userID)
			}
			return []*model.Booking{{ID: "b-1"}, {ID: "b-2"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/user/u-42", nil)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data  []model.Booking `json:"data"`
		Count int             `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if body.Count != 2 || len(body.Data) != 2 {
		t.Errorf("expected 2 bookings, got %+v", body)
	}
}
