package validator

import (
	"encoding/json"
	"net/http"
	"testing"

	"tripplanner/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func validPayload() *TripPayload {
	return &TripPayload{
		Title:        "Inca Trail Trek",
		Destination:  "Peru",
		Category:     "hiking",
		DurationDays: json.Number("4"),
		Price:        json.Number("899.50"),
		Difficulty:   "hard",
		Description:  "Four day trek to Machu Picchu",
	}
}

func TestValidate_Valid(t *testing.T) {
	v := NewTripValidator(testLogger())

	trip, appErr := v.Validate(validPayload())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if trip.DurationDays != 4 {
		t.Errorf("expected durationDays 4, got %d", trip.DurationDays)
	}
	if trip.Price != 899.50 {
		t.Errorf("expected price 899.50, got %f", trip.Price)
	}
	if trip.Difficulty != "hard" {
		t.Errorf("expected difficulty hard, got %s", trip.Difficulty)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	v := NewTripValidator(testLogger())

	tests := []struct {
		name   string
		mutate func(*TripPayload)
	}{
		{"missing title", func(p *TripPayload) { p.Title = "" }},
		{"missing destination", func(p *TripPayload) { p.Destination = "" }},
		{"missing category", func(p *TripPayload) { p.Category = "" }},
		{"missing durationDays", func(p *TripPayload) { p.DurationDays = "" }},
		{"missing price", func(p *TripPayload) { p.Price = "" }},
		{"missing difficulty", func(p *TripPayload) { p.Difficulty = "" }},
		{"missing description", func(p *TripPayload) { p.Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(p)

			_, appErr := v.Validate(p)
			if appErr == nil {
				t.Fatal("expected an error")
			}
			if appErr.HTTPStatus != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", appErr.HTTPStatus)
			}
			if appErr.Message != requiredFieldsMessage {
				t.Errorf("expected enumerated-fields message, got %q", appErr.Message)
			}
		})
	}
}

func TestValidate_DurationDays(t *testing.T) {
	v := NewTripValidator(testLogger())

	tests := []struct {
		name      string
		value     json.Number
		wantError bool
	}{
		{"positive", json.Number("7"), false},
		{"zero", json.Number("0"), true},
		{"negative", json.Number("-3"), true},
		{"fractional", json.Number("3.5"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			p.DurationDays = tt.value

			_, appErr := v.Validate(p)
			if (appErr != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", appErr, tt.wantError)
			}
			if tt.wantError && appErr.Message != "durationDays must be a positive number" {
				t.Errorf("unexpected message: %q", appErr.Message)
			}
		})
	}
}

func TestValidate_Price(t *testing.T) {
	v := NewTripValidator(testLogger())

	tests := []struct {
		name      string
		value     json.Number
		wantError bool
	}{
		{"positive", json.Number("100"), false},
		{"zero allowed", json.Number("0"), false},
		{"negative", json.Number("-1"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			p.Price = tt.value

			_, appErr := v.Validate(p)
			if (appErr != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", appErr, tt.wantError)
			}
		})
	}
}

func TestValidate_DifficultyNormalization(t *testing.T) {
	v := NewTripValidator(testLogger())

	tests := []struct {
		name       string
		difficulty string
		want       string
		wantError  bool
	}{
		{"lowercase", "easy", "easy", false},
		{"uppercase", "EASY", "easy", false},
		{"mixed case", "Moderate", "moderate", false},
		{"hard", "hard", "hard", false},
		{"unknown value", "extreme", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			p.Difficulty = tt.difficulty

			trip, appErr := v.Validate(p)
			if (appErr != nil) != tt.wantError {
				t.Fatalf("Validate() error = %v, wantError %v", appErr, tt.wantError)
			}
			if !tt.wantError && trip.Difficulty != tt.want {
				t.Errorf("expected difficulty %q, got %q", tt.want, trip.Difficulty)
			}
		})
	}
}
