package validator

import (
	"encoding/json"
	"strings"

	apperrors "tripplanner/pkg/errors"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/model"

	"github.com/go-playground/validator/v10"
)

// TripPayload is the submitted shape of a trip. Numeric fields decode as
// json.Number so that both 10 and "10" are accepted, matching the documents
// clients have always sent.
type TripPayload struct {
	Title        string      `json:"title"`
	Destination  string      `json:"destination"`
	Category     string      `json:"category"`
	DurationDays json.Number `json:"durationDays"`
	Price        json.Number `json:"price"`
	Difficulty   string      `json:"difficulty"`
	Description  string      `json:"description"`
}

const requiredFieldsMessage = "All fields are required: title, destination, category, durationDays, price, difficulty, description"

type TripValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewTripValidator(log *logger.Logger) *TripValidator {
	return &TripValidator{
		validate: validator.New(),
		log:      log,
	}
}

// Validate checks a submitted payload and returns the normalized trip, or
// an AppError carrying the status and message to surface.
func (v *TripValidator) Validate(p *TripPayload) (*model.Trip, *apperrors.AppError) {
	if p.Title == "" || p.Destination == "" || p.Category == "" ||
		p.DurationDays.String() == "" || p.Price.String() == "" ||
		p.Difficulty == "" || p.Description == "" {
		return nil, apperrors.InvalidInput(requiredFieldsMessage)
	}

	duration, err := p.DurationDays.Int64()
	if err != nil || duration <= 0 {
		return nil, apperrors.InvalidInput("durationDays must be a positive number")
	}

	price, err := p.Price.Float64()
	if err != nil || price < 0 {
		return nil, apperrors.InvalidInput("price cannot be a negative number")
	}

	difficulty := strings.ToLower(p.Difficulty)
	if err := v.validate.Var(difficulty, "oneof=easy moderate hard"); err != nil {
		return nil, apperrors.InvalidInput("difficulty must be one of the following: easy, moderate, hard")
	}

	return &model.Trip{
		Title:        p.Title,
		Destination:  p.Destination,
		Category:     p.Category,
		DurationDays: duration,
		Price:        price,
		Difficulty:   difficulty,
		Description:  p.Description,
	}, nil
}
