package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"

	accountserrors "luxestay/internal/accounts/errors"
	bookingserrors "luxestay/internal/bookings/errors"
	"luxestay/internal/bookings/events"
	"luxestay/internal/bookings/repository"
	"luxestay/internal/bookings/validator"
	"luxestay/pkg/config"
	apperrors "luxestay/pkg/errors"
	"luxestay/pkg/model"
	"luxestay/pkg/sanitizer"
	"luxestay/pkg/validation"

	"go.mongodb.org/mongo-driver/mongo"
)

const ConfirmationMessage = "Booking confirmed successfully"

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error)
	ListForUser(ctx context.Context, userID string) ([]*model.Booking, error)
}

// AccountLookup is satisfied by the accounts repository.
type AccountLookup interface {
	FindByID(ctx context.Context, id string) (*model.Account, error)
}

type bookingService struct {
	repo          repository.BookingRepository
	accounts      AccountLookup
	validator     *validator.BookingValidator
	publisher     events.Publisher
	cfg           *config.Config
	transactionID func() string
}

func NewBookingService(
	repo repository.BookingRepository,
	accounts AccountLookup,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:          repo,
		accounts:      accounts,
		validator:     validator,
		publisher:     publisher,
		cfg:           cfg,
		transactionID: newTransactionID,
	}
}

func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
	s.sanitize(req)
	if err := s.validate(req); err != nil {
		return nil, err
	}

	booking := req.ToBooking()
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyAccount(sessCtx, booking.UserID); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "user_id", booking.UserID, "hotel_id", booking.HotelID, "error", err)
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	confirmation := &model.BookingConfirmation{
		Message:       ConfirmationMessage,
		BookingID:     booking.ID,
		TransactionID: s.transactionID(),
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"user_id", booking.UserID,
		"hotel_id", booking.HotelID,
		"transaction_id", confirmation.TransactionID,
	)

	s.publishCreated(ctx, booking, confirmation.TransactionID)
	return confirmation, nil
}

func (s *bookingService) ListForUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	bookings, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

// publishCreated never fails the request; the booking is already stored.
func (s *bookingService) publishCreated(ctx context.Context, booking *model.Booking, transactionID string) {
	event := &model.BookingCreatedEvent{
		BookingID:     booking.ID,
		TransactionID: transactionID,
		UserID:        booking.UserID,
		HotelName:     booking.HotelName,
		City:          booking.City,
		CheckIn:       booking.CheckIn,
		CheckOut:      booking.CheckOut,
		RoomType:      booking.RoomType,
		TotalPrice:    booking.TotalPrice,
		BookingDate:   booking.BookingDate,
	}
	if err := s.publisher.PublishBookingCreated(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event", "booking_id", booking.ID, "error", err)
	}
}

func (s *bookingService) verifyAccount(ctx context.Context, userID string) error {
	_, err := s.accounts.FindByID(ctx, userID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, accountserrors.ErrNotFound):
		return apperrors.NotFoundWithID("User", userID)
	case errors.Is(err, accountserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid user ID format")
	default:
		return apperrors.Internal("Failed to verify user", err)
	}
}

func (s *bookingService) validate(req *model.BookingRequest) error {
	err := s.validator.Validate(req)
	if err == nil {
		return nil
	}
	if errors.Is(err, bookingserrors.ErrInvalidPayment) {
		s.cfg.Log.Warn("Booking rejected", "user_id", req.UserID, "reason", "invalid payment")
		return apperrors.InvalidInput(validator.PaymentErrorMessage)
	}
	s.cfg.Log.Warn("Booking validation failed", "user_id", req.UserID, "error", err)
	return validation.ToAppError(err)
}

func (s *bookingService) sanitize(req *model.BookingRequest) {
	req.UserID = sanitizer.TrimAndNormalize(req.UserID)
	req.HotelID = sanitizer.TrimAndNormalize(req.HotelID)
	req.HotelName = sanitizer.NormalizeName(req.HotelName)
	req.City = sanitizer.NormalizeCity(req.City)
	req.RoomType = sanitizer.TrimAndNormalize(req.RoomType)
	if req.Payment != nil {
		req.Payment.Cardholder = sanitizer.NormalizeName(req.Payment.Cardholder)
	}
}

func newTransactionID() string {
	return strconv.Itoa(rand.IntN(900000) + 100000)
}
