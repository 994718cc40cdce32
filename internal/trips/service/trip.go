package service

import (
	"context"
	"errors"

	triperrors "tripplanner/internal/trips/errors"
	"tripplanner/internal/trips/repository"
	"tripplanner/internal/trips/validator"
	"tripplanner/pkg/config"
	apperrors "tripplanner/pkg/errors"
	"tripplanner/pkg/events"
	"tripplanner/pkg/model"
)

type TripService interface {
	GetAll(ctx context.Context) ([]*model.Trip, error)
	GetByID(ctx context.Context, id string) (*model.Trip, error)
	Create(ctx context.Context, payload *validator.TripPayload) (*model.Trip, error)
	Update(ctx context.Context, id string, payload *validator.TripPayload) (*model.Trip, error)
	Delete(ctx context.Context, id string) error
}

type tripService struct {
	repo      repository.TripRepository
	validator *validator.TripValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewTripService(
	repo repository.TripRepository,
	tripValidator *validator.TripValidator,
	publisher events.Publisher,
	cfg *config.Config,
) TripService {
	return &tripService{
		repo:      repo,
		validator: tripValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *tripService) GetAll(ctx context.Context) ([]*model.Trip, error) {
	trips, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list trips", "error", err)
		return nil, apperrors.Internal("Failed to fetch trips", err)
	}

	if trips == nil {
		trips = []*model.Trip{}
	}
	return trips, nil
}

func (s *tripService) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	trip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, id, "Failed to fetch trip")
	}
	return trip, nil
}

func (s *tripService) Create(ctx context.Context, payload *validator.TripPayload) (*model.Trip, error) {
	trip, appErr := s.validator.Validate(payload)
	if appErr != nil {
		s.cfg.Log.Warn("Trip validation failed", "error", appErr.Message)
		return nil, appErr
	}

	if err := s.repo.Insert(ctx, trip); err != nil {
		s.cfg.Log.Error("Failed to create trip", "error", err)
		return nil, apperrors.Internal("Failed to create trip", err)
	}

	s.cfg.Log.Info("Trip created", "id", trip.ID, "destination", trip.Destination)
	s.publisher.Publish(ctx, events.Event{Entity: events.EntityTrip, Action: events.ActionCreated, ID: trip.ID})
	return trip, nil
}

func (s *tripService) Update(ctx context.Context, id string, payload *validator.TripPayload) (*model.Trip, error) {
	trip, appErr := s.validator.Validate(payload)
	if appErr != nil {
		s.cfg.Log.Warn("Trip validation failed", "id", id, "error", appErr.Message)
		return nil, appErr
	}

	if err := s.repo.Replace(ctx, id, trip); err != nil {
		return nil, s.mapRepoError(err, id, "Failed to update trip")
	}

	s.cfg.Log.Info("Trip updated", "id", id)
	s.publisher.Publish(ctx, events.Event{Entity: events.EntityTrip, Action: events.ActionUpdated, ID: id})
	return trip, nil
}

func (s *tripService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err, id, "Failed to delete trip")
	}

	s.cfg.Log.Info("Trip deleted", "id", id)
	s.publisher.Publish(ctx, events.Event{Entity: events.EntityTrip, Action: events.ActionDeleted, ID: id})
	return nil
}

func (s *tripService) mapRepoError(err error, id string, internalMessage string) error {
	switch {
	case errors.Is(err, triperrors.ErrNotFound):
		return apperrors.NotFound("Trip not found")
	case errors.Is(err, triperrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid trip ID")
	default:
		s.cfg.Log.Error(internalMessage, "id", id, "error", err)
		return apperrors.Internal(internalMessage, err)
	}
}
