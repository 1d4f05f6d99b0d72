package service

import (
	"context"
	"fmt"
	"testing"

	hotelserrors "luxestay/internal/hotels/errors"
	"luxestay/internal/hotels/gateway"
	"luxestay/pkg/config"
	apperrors "luxestay/pkg/errors"
	"luxestay/pkg/logger"
)

type mockGateway struct {
	searchFunc func(ctx context.Context, opts gateway.SearchOptions) (gateway.Payload, error)
	detailFunc func(ctx context.Context, token, checkIn, checkOut string, locale gateway.Locale) (gateway.Payload, error)
	linkFunc   func(ctx context.Context, link string) (gateway.Payload, error)
}

func (m *mockGateway) Search(ctx context.Context, opts gateway.SearchOptions) (gateway.Payload, error) {
	return m.searchFunc(ctx, opts)
}

func (m *mockGateway) Detail(ctx context.Context, token, checkIn, checkOut string, locale gateway.Locale) (gateway.Payload, error) {
	return m.detailFunc(ctx, token, checkIn, checkOut, locale)
}

func (m *mockGateway) DetailByLink(ctx context.Context, link string) (gateway.Payload, error) {
	return m.linkFunc(ctx, link)
}

func newTestService(gw *mockGateway) HotelService {
	return NewHotelService(gw, &config.Config{Log: logger.Discard()})
}

func validOptions() gateway.SearchOptions {
	return gateway.SearchOptions{Query: " Paris ", CheckInDate: "2030-05-01", CheckOutDate: "2030-05-04", Adults: 2}
}

func TestSearch_Success(t *testing.T) {
	gw := &mockGateway{
		searchFunc: func(ctx context.Context, opts gateway.SearchOptions) (gateway.Payload, error) {
			if opts.Query != "Paris" {
				t.Errorf("expected trimmed query, got %q", opts.Query)
			}
			return gateway.Payload{
				"properties": []any{map[string]any{"name": "Le Meurice", "property_token": "t1"}},
			}, nil
		},
	}

	result, err := newTestService(gw).Search(context.Background(), validOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Hotels) != 1 || result.Hotels[0].Name != "Le Meurice" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestSearch_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *gateway.SearchOptions)
		want   string
	}{
		{"missing destination", func(o *gateway.SearchOptions) { o.Query = "  " }, "Destination is required"},
		{"missing check in", func(o *gateway.SearchOptions) { o.CheckInDate = "" }, "Check-in date is required"},
		{"missing check out", func(o *gateway.SearchOptions) { o.CheckOutDate = "" }, "Check-out date is required"},
		{"bad date", func(o *gateway.SearchOptions) { o.CheckInDate = "01-05-2030" }, "check_in_date must be a date in YYYY-MM-DD format"},
		{"same day", func(o *gateway.SearchOptions) { o.CheckOutDate = o.CheckInDate }, "Check-out date must be after check-in date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &mockGateway{
				searchFunc: func(ctx context.Context, opts gateway.SearchOptions) (gateway.Payload, error) {
					t.Fatal("gateway should not be called")
					return nil, nil
				},
			}
			opts := validOptions()
			tt.mutate(&opts)

			_, err := newTestService(gw).Search(context.Background(), opts)
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeInvalidInput || appErr.Message != tt.want {
				t.Errorf("expected invalid input %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSearch_UpstreamFailure(t *testing.T) {
	gw := &mockGateway{
		searchFunc: func(ctx context.Context, opts gateway.SearchOptions) (gateway.Payload, error) {
			return nil, fmt.Errorf("%w: %w", hotelserrors.ErrNoResult, hotelserrors.ErrUpstreamUnavailable)
		},
	}

	_, err := newTestService(gw).Search(context.Background(), validOptions())
	if !apperrors.HasCode(err, apperrors.CodeUnavailable) {
		t.Errorf("expected unavailable, got %v", err)
	}
}

func TestGetByToken(t *testing.T) {
	gw := &mockGateway{
		detailFunc: func(ctx context.Context, token, checkIn, checkOut string, locale gateway.Locale) (gateway.Payload, error) {
			return gateway.Payload{"place_results": map[string]any{"name": "Hotel Lutetia"}}, nil
		},
	}

	hotel, err := newTestService(gw).GetByToken(context.Background(), "tok-9", "", "", gateway.Locale{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hotel.ID != "tok-9" {
		t.Errorf("expected token as fallback id, got %s", hotel.ID)
	}
	if hotel.Name != "Hotel Lutetia" {
		t.Errorf("expected unwrapped name, got %s", hotel.Name)
	}
}

func TestGetByToken_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"rejected", fmt.Errorf("%w: %w", hotelserrors.ErrNoResult, hotelserrors.ErrUpstreamRejected), apperrors.CodeNotFound},
		{"unavailable", fmt.Errorf("%w: %w", hotelserrors.ErrNoResult, hotelserrors.ErrUpstreamUnavailable), apperrors.CodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &mockGateway{
				detailFunc: func(ctx context.Context, token, checkIn, checkOut string, locale gateway.Locale) (gateway.Payload, error) {
					return nil, tt.err
				},
			}
			_, err := newTestService(gw).GetByToken(context.Background(), "tok", "", "", gateway.Locale{})
			if !apperrors.HasCode(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestGetByLink(t *testing.T) {
	gw := &mockGateway{
		linkFunc: func(ctx context.Context, link string) (gateway.Payload, error) {
			if link == "https://evil.example/" {
				return nil, hotelserrors.ErrInvalidLink
			}
			return gateway.Payload{"name": "Linked"}, nil
		},
	}
	svc := newTestService(gw)

	if _, err := svc.GetByLink(context.Background(), ""); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input for empty link, got %v", err)
	}
	if _, err := svc.GetByLink(context.Background(), "https://evil.example/"); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input for foreign link, got %v", err)
	}

	hotel, err := svc.GetByLink(context.Background(), "https://serpapi.com/search.json?property_token=p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hotel.Name != "Linked" || len(hotel.ID) != len("from_link_0000") {
		t.Errorf("unexpected hotel: %+v", hotel)
	}
}
