package handler

import (
	"encoding/json"
	"net/http"

	"tripplanner/internal/bookings/service"
	"tripplanner/internal/bookings/validator"
	httputil "tripplanner/pkg/http"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Gate wraps a route with an authentication check.
type Gate func(httprouter.Handle) httprouter.Handle

type BookingHandler struct {
	service service.BookingService
	gate    Gate
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, gate Gate, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		gate:    gate,
		log:     log,
	}
}

type bookingMutationResponse struct {
	Message   string         `json:"message"`
	BookingID string         `json:"bookingId"`
	Booking   *model.Booking `json:"booking,omitempty"`
}

// GetAll godoc
// @Summary List all bookings
// @Produce json
// @Success 200 {array} model.Booking
// @Router /bookings [get]
func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.GetAll(r.Context())
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, bookings); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetAll", "error", err)
	}
}

// GetByID godoc
// @Summary Get a booking by id
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} model.Booking
// @Failure 400 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, booking); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetByID", "error", err)
	}
}

// Create godoc
// @Summary Create a booking
// @Accept json
// @Produce json
// @Success 201 {object} bookingMutationResponse
// @Failure 400 {object} http.ErrorResponse
// @Failure 401 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload validator.BookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeBadBody(w, "Create")
		return
	}

	booking, err := h.service.Create(r.Context(), &payload)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusCreated, bookingMutationResponse{
		Message:   "Booking created successfully",
		BookingID: booking.ID,
		Booking:   booking,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Create", "error", err)
	}
}

// Update godoc
// @Summary Replace a booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} bookingMutationResponse
// @Failure 400 {object} http.ErrorResponse
// @Failure 401 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /bookings/{id} [put]
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var payload validator.BookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeBadBody(w, "Update")
		return
	}

	booking, err := h.service.Update(r.Context(), id, &payload)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, bookingMutationResponse{
		Message:   "Booking updated successfully",
		BookingID: id,
		Booking:   booking,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Update", "error", err)
	}
}

// Delete godoc
// @Summary Delete a booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} bookingMutationResponse
// @Failure 400 {object} http.ErrorResponse
// @Failure 401 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, bookingMutationResponse{
		Message:   "Booking deleted successfully",
		BookingID: id,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Delete", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/bookings", h.GetAll)
	router.GET("/bookings/:id", h.GetByID)
	router.POST("/bookings", h.gate(h.Create))
	router.PUT("/bookings/:id", h.gate(h.Update))
	router.DELETE("/bookings/:id", h.gate(h.Delete))
}

func (h *BookingHandler) writeError(w http.ResponseWriter, op string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", op, "error", writeErr)
	}
}

func (h *BookingHandler) writeBadBody(w http.ResponseWriter, op string) {
	if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
	}); writeErr != nil {
		h.log.Error("failed to write JSON response", "handler", op, "error", writeErr)
	}
}
