package http

import (
	"encoding/json"
	"net/http"

	apperrors "tripplanner/pkg/errors"
)

// ErrorResponse is the single error body shape the API emits.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError maps an error onto its HTTP status. Anything that is not an
// AppError is downgraded to a generic 500; causes are for logs only.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.StatusCode(), ErrorResponse{Error: appErr.Message})
}
