package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "Trip not found",
			},
			expected: "NOT_FOUND: Trip not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("connection refused"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appErr := Internal("wrapped", cause)

	if errors.Unwrap(appErr) != cause {
		t.Errorf("Unwrap() should return the original error")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("Trip not found"), CodeNotFound, http.StatusNotFound},
		{"invalid input", InvalidInput("Invalid trip ID"), CodeInvalidInput, http.StatusBadRequest},
		{"unauthorized", Unauthorized("Unauthorized"), CodeUnauthorized, http.StatusUnauthorized},
		{"internal", Internal("boom", errors.New("cause")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Booking not found")
	regularErr := errors.New("driver: connection reset")

	if result := AsAppError(appErr); result != appErr {
		t.Errorf("AsAppError() should return the same AppError")
	}

	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap unknown errors as internal, got %s", result.Code)
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should keep the original error as cause")
	}
	if result.Message != "An unexpected error occurred" {
		t.Errorf("AsAppError() must not leak the cause text, got %q", result.Message)
	}
}
