package service

import (
	"context"
	"errors"

	bookingerrors "tripplanner/internal/bookings/errors"
	"tripplanner/internal/bookings/repository"
	"tripplanner/internal/bookings/validator"
	"tripplanner/pkg/config"
	apperrors "tripplanner/pkg/errors"
	"tripplanner/pkg/events"
	"tripplanner/pkg/model"
)

type BookingService interface {
	GetAll(ctx context.Context) ([]*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	Create(ctx context.Context, payload *validator.BookingPayload) (*model.Booking, error)
	Update(ctx context.Context, id string, payload *validator.BookingPayload) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	bookingValidator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to fetch bookings", err)
	}

	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, id, "Failed to fetch booking")
	}
	return booking, nil
}

// Create validates the payload, including the trip existence lookup, then
// inserts. The trip may be deleted between the check and the insert; that
// window is accepted.
func (s *bookingService) Create(ctx context.Context, payload *validator.BookingPayload) (*model.Booking, error) {
	booking, appErr := s.validator.Validate(ctx, payload)
	if appErr != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", appErr.Message)
		return nil, appErr
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created", "id", booking.ID, "trip_id", booking.TripID)
	s.publisher.Publish(ctx, events.Event{Entity: events.EntityBooking, Action: events.ActionCreated, ID: booking.ID})
	return booking, nil
}

func (s *bookingService) Update(ctx context.Context, id string, payload *validator.BookingPayload) (*model.Booking, error) {
	booking, appErr := s.validator.Validate(ctx, payload)
	if appErr != nil {
		s.cfg.Log.Warn("Booking validation failed", "id", id, "error", appErr.Message)
		return nil, appErr
	}

	if err := s.repo.Replace(ctx, id, booking); err != nil {
		return nil, s.mapRepoError(err, id, "Failed to update booking")
	}

	s.cfg.Log.Info("Booking updated", "id", id)
	s.publisher.Publish(ctx, events.Event{Entity: events.EntityBooking, Action: events.ActionUpdated, ID: id})
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err, id, "Failed to delete booking")
	}

	s.cfg.Log.Info("Booking deleted", "id", id)
	s.publisher.Publish(ctx, events.Event{Entity: events.EntityBooking, Action: events.ActionDeleted, ID: id})
	return nil
}

func (s *bookingService) mapRepoError(err error, id string, internalMessage string) error {
	switch {
	case errors.Is(err, bookingerrors.ErrNotFound):
		return apperrors.NotFound("Booking not found")
	case errors.Is(err, bookingerrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid booking ID")
	default:
		s.cfg.Log.Error(internalMessage, "id", id, "error", err)
		return apperrors.Internal(internalMessage, err)
	}
}
