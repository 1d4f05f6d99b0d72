package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"luxestay/internal/hotels/gateway"
	apperrors "luxestay/pkg/errors"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockHotelService struct {
	searchFunc func(ctx context.Context, opts gateway.SearchOptions) (*model.HotelSearchResult, error)
	tokenFunc  func(ctx context.Context, token, checkIn, checkOut string, locale gateway.Locale) (*model.Hotel, error)
	linkFunc   func(ctx context.Context, link string) (*model.Hotel, error)
}

func (m *mockHotelService) Search(ctx context.Context, opts gateway.SearchOptions) (*model.HotelSearchResult, error) {
	return m.searchFunc(ctx, opts)
}

func (m *mockHotelService) GetByToken(ctx context.Context, token, checkIn, checkOut string, locale gateway.Locale) (*model.Hotel, error) {
	return m.tokenFunc(ctx, token, checkIn, checkOut, locale)
}

func (m *mockHotelService) GetByLink(ctx context.Context, link string) (*model.Hotel, error) {
	return m.linkFunc(ctx, link)
}

func serve(svc *mockHotelService, target string) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewHotelHandler(svc, logger.Discard()).RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSearch_ParsesQuery(t *testing.T) {
	svc := &mockHotelService{
		searchFunc: func(ctx context.Context, opts gateway.SearchOptions) (*model.HotelSearchResult, error) {
			if opts.Query != "Goa" || opts.Adults != 3 || opts.MinPrice != 0 || !opts.FreeCancellation {
				t.Errorf("unexpected options: %+v", opts)
			}
			if opts.Locale.Currency != "USD" {
				t.Errorf("expected USD override, got %s", opts.Locale.Currency)
			}
			return &model.HotelSearchResult{Hotels: []model.Hotel{}}, nil
		},
	}

	rec := serve(svc, "/api/v1/hotels/search?destination=Goa&check_in_date=2030-01-01&check_out_date=2030-01-02&adults=3&min_price=0&free_cancellation=true&currency=USD")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestSearch_BadNumber(t *testing.T) {
	svc := &mockHotelService{}
	rec := serve(svc, "/api/v1/hotels/search?q=Goa&adults=two")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"search unavailable", "/api/v1/hotels/search?q=Goa", apperrors.Unavailable("Hotel search"), http.StatusServiceUnavailable},
		{"detail not found", "/api/v1/hotels/property/tok", apperrors.NotFound("Hotel"), http.StatusNotFound},
		{"link invalid", "/api/v1/hotels/link?url=https://evil.example", apperrors.InvalidInput("Invalid URL domain"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockHotelService{
				searchFunc: func(ctx context.Context, opts gateway.SearchOptions) (*model.HotelSearchResult, error) {
					return nil, tt.err
				},
				tokenFunc: func(ctx context.Context, token, checkIn, checkOut string, locale gateway.Locale) (*model.Hotel, error) {
					return nil, tt.err
				},
				linkFunc: func(ctx context.Context, link string) (*model.Hotel, error) {
					return nil, tt.err
				},
			}
			if rec := serve(svc, tt.target); rec.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestGetByToken_PassesDates(t *testing.T) {
	svc := &mockHotelService{
		tokenFunc: func(ctx context.Context, token, checkIn, checkOut string, locale gateway.Locale) (*model.Hotel, error) {
			if token != "ChkI" || checkIn != "2030-01-01" || checkOut != "2030-01-03" {
				t.Errorf("unexpected arguments: %s %s %s", token, checkIn, checkOut)
			}
			return &model.Hotel{ID: token}, nil
		},
	}

	rec := serve(svc, "/api/v1/hotels/property/ChkI?check_in_date=2030-01-01&check_out_date=2030-01-03")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
