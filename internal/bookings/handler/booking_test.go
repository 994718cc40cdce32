package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripplanner/internal/bookings/validator"
	apperrors "tripplanner/pkg/errors"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Mock service for testing
type mockBookingService struct {
	getAllFunc func(ctx context.Context) ([]*model.Booking, error)
	createFunc func(ctx context.Context, payload *validator.BookingPayload) (*model.Booking, error)
	updateFunc func(ctx context.Context, id string, payload *validator.BookingPayload) (*model.Booking, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockBookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return &model.Booking{ID: id}, nil
}

func (m *mockBookingService) Create(ctx context.Context, payload *validator.BookingPayload) (*model.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, payload)
	}
	return &model.Booking{ID: "64a0c5e2f1d2a31234567891"}, nil
}

func (m *mockBookingService) Update(ctx context.Context, id string, payload *validator.BookingPayload) (*model.Booking, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, payload)
	}
	return &model.Booking{ID: id}, nil
}

func (m *mockBookingService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func passthroughGate(next httprouter.Handle) httprouter.Handle { return next }

func newTestHandler(svc *mockBookingService) *BookingHandler {
	log := logger.New(logger.Config{Level: "error", Service: "test"})
	return NewBookingHandler(svc, passthroughGate, log)
}

func TestCreate_InvalidBody(t *testing.T) {
	h := newTestHandler(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreate_ResponseShape(t *testing.T) {
	h := newTestHandler(&mockBookingService{
		createFunc: func(ctx context.Context, payload *validator.BookingPayload) (*model.Booking, error) {
			return &model.Booking{
				ID:     "64a0c5e2f1d2a31234567891",
				TripID: payload.TripID,
				Status: model.StatusPending,
			}, nil
		},
	})

	body := `{"tripId":"64a0c5e2f1d2a31234567890","customerName":"Dana","customerEmail":"dana@example.com","numTravelers":2}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var resp struct {
		Message   string         `json:"message"`
		BookingID string         `json:"bookingId"`
		Booking   *model.Booking `json:"booking"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Booking created successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.BookingID == "" || resp.Booking == nil {
		t.Errorf("expected bookingId and booking in response, got %+v", resp)
	}
}

func TestCreate_MissingTripPropagates404(t *testing.T) {
	h := newTestHandler(&mockBookingService{
		createFunc: func(ctx context.Context, payload *validator.BookingPayload) (*model.Booking, error) {
			return nil, apperrors.NotFound("Trip is not found")
		},
	})

	body := `{"tripId":"64a0c5e2f1d2a31234567890","customerName":"Dana","customerEmail":"dana@example.com","numTravelers":2}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Trip is not found") {
		t.Errorf("expected trip lookup message, got %s", w.Body.String())
	}
}

func TestDelete_NotFound(t *testing.T) {
	h := newTestHandler(&mockBookingService{
		deleteFunc: func(ctx context.Context, id string) error {
			return apperrors.NotFound("Booking not found")
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/bookings/64a0c5e2f1d2a31234567891", nil)
	w := httptest.NewRecorder()

	h.Delete(w, req, httprouter.Params{{Key: "id", Value: "64a0c5e2f1d2a31234567891"}})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGateAppliedToMutatingRoutesOnly(t *testing.T) {
	gated := map[string]bool{}
	gate := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			gated[r.Method+" "+r.URL.Path] = true
			next(w, r, ps)
		}
	}

	log := logger.New(logger.Config{Level: "error", Service: "test"})
	h := NewBookingHandler(&mockBookingService{}, gate, log)

	router := httprouter.New()
	h.RegisterRoutes(router)

	requests := []struct {
		method, path string
		wantGated    bool
	}{
		{http.MethodGet, "/bookings", false},
		{http.MethodGet, "/bookings/64a0c5e2f1d2a31234567891", false},
		{http.MethodPost, "/bookings", true},
		{http.MethodPut, "/bookings/64a0c5e2f1d2a31234567891", true},
		{http.MethodDelete, "/bookings/64a0c5e2f1d2a31234567891", true},
	}

	for _, tt := range requests {
		var body *strings.Reader
		if tt.method == http.MethodPost || tt.method == http.MethodPut {
			body = strings.NewReader(`{}`)
		} else {
			body = strings.NewReader("")
		}
		req := httptest.NewRequest(tt.method, tt.path, body)
		router.ServeHTTP(httptest.NewRecorder(), req)

		key := tt.method + " " + tt.path
		if gated[key] != tt.wantGated {
			t.Errorf("%s: gated = %v, want %v", key, gated[key], tt.wantGated)
		}
	}
}
