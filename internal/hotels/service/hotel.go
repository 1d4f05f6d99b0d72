package service

import (
	"context"
	"errors"
	"time"

	hotelserrors "luxestay/internal/hotels/errors"
	"luxestay/internal/hotels/gateway"
	"luxestay/internal/hotels/normalize"
	"luxestay/pkg/config"
	apperrors "luxestay/pkg/errors"
	"luxestay/pkg/model"
	"luxestay/pkg/sanitizer"
)

const dateLayout = "2006-01-02"

type HotelService interface {
	Search(ctx context.Context, opts gateway.SearchOptions) (*model.HotelSearchResult, error)
	GetByToken(ctx context.Context, token, checkIn, checkOut string, locale gateway.Locale) (*model.Hotel, error)
	GetByLink(ctx context.Context, link string) (*model.Hotel, error)
}

type hotelService struct {
	gateway gateway.Gateway
	cfg     *config.Config
}

func NewHotelService(gw gateway.Gateway, cfg *config.Config) HotelService {
	return &hotelService{
		gateway: gw,
		cfg:     cfg,
	}
}

func (s *hotelService) Search(ctx context.Context, opts gateway.SearchOptions) (*model.HotelSearchResult, error) {
	opts.Query = sanitizer.NormalizeCity(opts.Query)
	if err := validateSearch(opts); err != nil {
		return nil, err
	}

	payload, err := s.gateway.Search(ctx, opts)
	if err != nil {
		return nil, apperrors.UpstreamUnavailable("Hotel search", err)
	}

	result := normalize.Search(payload)
	s.cfg.Log.Debug("Hotel search normalized", "q", opts.Query, "count", len(result.Hotels))
	return result, nil
}

func (s *hotelService) GetByToken(ctx context.Context, token, checkIn, checkOut string, locale gateway.Locale) (*model.Hotel, error) {
	if token == "" {
		return nil, apperrors.InvalidInput("Property token is required")
	}

	payload, err := s.gateway.Detail(ctx, token, checkIn, checkOut, locale)
	if err != nil {
		return nil, detailError(err)
	}

	hotel := normalize.Detail(payload, token)
	return &hotel, nil
}

func (s *hotelService) GetByLink(ctx context.Context, link string) (*model.Hotel, error) {
	if link == "" {
		return nil, apperrors.InvalidInput("URL parameter is required")
	}

	payload, err := s.gateway.DetailByLink(ctx, link)
	if err != nil {
		if errors.Is(err, hotelserrors.ErrInvalidLink) {
			return nil, apperrors.InvalidInput("Invalid URL domain")
		}
		return nil, detailError(err)
	}

	hotel := normalize.Detail(payload, normalize.LinkFallbackID())
	return &hotel, nil
}

// detailError reports a rejected lookup as a missing hotel and a transport
// failure as an unavailable upstream.
func detailError(err error) error {
	if errors.Is(err, hotelserrors.ErrUpstreamRejected) {
		return apperrors.NotFound("Hotel").WithCause(err)
	}
	return apperrors.UpstreamUnavailable("Hotel search", err)
}

func validateSearch(opts gateway.SearchOptions) error {
	if opts.Query == "" {
		return apperrors.InvalidInput("Destination is required")
	}
	if opts.CheckInDate == "" {
		return apperrors.InvalidInput("Check-in date is required")
	}
	if opts.CheckOutDate == "" {
		return apperrors.InvalidInput("Check-out date is required")
	}

	checkIn, err := time.Parse(dateLayout, opts.CheckInDate)
	if err != nil {
		return apperrors.InvalidInput("check_in_date must be a date in YYYY-MM-DD format")
	}
	checkOut, err := time.Parse(dateLayout, opts.CheckOutDate)
	if err != nil {
		return apperrors.InvalidInput("check_out_date must be a date in YYYY-MM-DD format")
	}
	if !checkOut.After(checkIn) {
		return apperrors.InvalidInput("Check-out date must be after check-in date")
	}
	return nil
}
