package validator

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	triperrors "tripplanner/internal/trips/errors"
	apperrors "tripplanner/pkg/errors"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/model"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BookingPayload is the submitted shape of a booking.
type BookingPayload struct {
	TripID        string      `json:"tripId"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	NumTravelers  json.Number `json:"numTravelers"`
	Status        string      `json:"status"`
}

const requiredFieldsMessage = "All fields are required: tripId, customerName, customerEmail, numTravelers"

// TripFinder resolves a trip id against the trips collection. The booking
// validator only needs existence; it discards the document.
type TripFinder interface {
	FindByID(ctx context.Context, id string) (*model.Trip, error)
}

type BookingValidator struct {
	validate *validator.Validate
	trips    TripFinder
	log      *logger.Logger
}

func NewBookingValidator(trips TripFinder, log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		trips:    trips,
		log:      log,
	}
}

// Validate checks a submitted payload and returns the normalized booking.
// The tripId existence lookup runs last and is the one check that can yield
// a 404 instead of a 400.
func (v *BookingValidator) Validate(ctx context.Context, p *BookingPayload) (*model.Booking, *apperrors.AppError) {
	if p.TripID == "" || p.CustomerName == "" || p.CustomerEmail == "" || p.NumTravelers.String() == "" {
		return nil, apperrors.InvalidInput(requiredFieldsMessage)
	}

	if err := v.validate.Var(p.TripID, "mongodb"); err != nil {
		return nil, apperrors.InvalidInput("Invalid tripId format")
	}

	if !emailRegex.MatchString(p.CustomerEmail) {
		return nil, apperrors.InvalidInput("Invalid email format")
	}

	travelers, err := p.NumTravelers.Float64()
	if err != nil || travelers <= 0 {
		return nil, apperrors.InvalidInput("numTravelers must be a positive number")
	}

	status := model.StatusPending
	if p.Status != "" {
		status = strings.ToLower(p.Status)
		if err := v.validate.Var(status, "oneof=pending confirmed cancelled"); err != nil {
			return nil, apperrors.InvalidInput("status must be one of: pending, confirmed, cancelled")
		}
	}

	if _, err := v.trips.FindByID(ctx, p.TripID); err != nil {
		if errors.Is(err, triperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Trip is not found")
		}
		v.log.Error("Failed to resolve tripId during booking validation", "trip_id", p.TripID, "error", err)
		return nil, apperrors.Internal("Failed to validate booking", err)
	}

	return &model.Booking{
		TripID:        p.TripID,
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		NumTravelers:  travelers,
		Status:        status,
	}, nil
}
