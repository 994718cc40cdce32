package handler

import (
	"encoding/json"
	"net/http"

	"tripplanner/internal/trips/service"
	"tripplanner/internal/trips/validator"
	httputil "tripplanner/pkg/http"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Gate wraps a route with an authentication check.
type Gate func(httprouter.Handle) httprouter.Handle

type TripHandler struct {
	service service.TripService
	gate    Gate
	log     *logger.Logger
}

func NewTripHandler(service service.TripService, gate Gate, log *logger.Logger) *TripHandler {
	return &TripHandler{
		service: service,
		gate:    gate,
		log:     log,
	}
}

type tripMutationResponse struct {
	Message string      `json:"message"`
	TripID  string      `json:"tripId"`
	Trip    *model.Trip `json:"trip,omitempty"`
}

// GetAll godoc
// @Summary List all trips
// @Produce json
// @Success 200 {array} model.Trip
// @Router /trips [get]
func (h *TripHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	trips, err := h.service.GetAll(r.Context())
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, trips); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetAll", "error", err)
	}
}

// GetByID godoc
// @Summary Get a trip by id
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} model.Trip
// @Failure 400 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /trips/{id} [get]
func (h *TripHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, trip); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetByID", "error", err)
	}
}

// Create godoc
// @Summary Create a trip
// @Accept json
// @Produce json
// @Success 201 {object} tripMutationResponse
// @Failure 400 {object} http.ErrorResponse
// @Failure 401 {object} http.ErrorResponse
// @Router /trips [post]
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload validator.TripPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeBadBody(w, "Create")
		return
	}

	trip, err := h.service.Create(r.Context(), &payload)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusCreated, tripMutationResponse{
		Message: "Trip created successfully",
		TripID:  trip.ID,
		Trip:    trip,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Create", "error", err)
	}
}

// Update godoc
// @Summary Replace a trip
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} tripMutationResponse
// @Failure 400 {object} http.ErrorResponse
// @Failure 401 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /trips/{id} [put]
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var payload validator.TripPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeBadBody(w, "Update")
		return
	}

	trip, err := h.service.Update(r.Context(), id, &payload)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, tripMutationResponse{
		Message: "Trip updated successfully",
		TripID:  id,
		Trip:    trip,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Update", "error", err)
	}
}

// Delete godoc
// @Summary Delete a trip
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} tripMutationResponse
// @Failure 400 {object} http.ErrorResponse
// @Failure 401 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /trips/{id} [delete]
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, tripMutationResponse{
		Message: "Trip deleted successfully",
		TripID:  id,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Delete", "error", err)
	}
}

func (h *TripHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/trips", h.GetAll)
	router.GET("/trips/:id", h.GetByID)
	router.POST("/trips", h.gate(h.Create))
	router.PUT("/trips/:id", h.gate(h.Update))
	router.DELETE("/trips/:id", h.gate(h.Delete))
}

func (h *TripHandler) writeError(w http.ResponseWriter, op string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", op, "error", writeErr)
	}
}

func (h *TripHandler) writeBadBody(w http.ResponseWriter, op string) {
	if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
	}); writeErr != nil {
		h.log.Error("failed to write JSON response", "handler", op, "error", writeErr)
	}
}
