package handler

import (
	"context"
	"net/http"
	"time"

	"tripplanner/internal/auth/google"
	"tripplanner/internal/auth/service"
	"tripplanner/internal/auth/session"
	"tripplanner/pkg/config"
	httputil "tripplanner/pkg/http"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/model"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const (
	stateCookieName = "trip.oauth.state"
	stateTTL        = 10 * time.Minute
)

// OAuthProvider is the slice of the Google client the handler exercises.
type OAuthProvider interface {
	AuthURL(state string) string
	FetchProfile(ctx context.Context, code string) (*google.Profile, error)
}

type AuthHandler struct {
	provider OAuthProvider
	service  service.AuthService
	store    session.Store
	codec    *session.Codec
	log      *logger.Logger
}

func NewAuthHandler(
	provider OAuthProvider,
	authService service.AuthService,
	store session.Store,
	codec *session.Codec,
	log *logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		service:  authService,
		store:    store,
		codec:    codec,
		log:      log,
	}
}

type loginResponse struct {
	Message string            `json:"message"`
	User    model.UserSummary `json:"user"`
}

type logoutResponse struct {
	Message string `json:"message"`
}

// Login godoc
// @Summary Redirect to the Google consent screen
// @Success 302
// @Router /auth/google [get]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     config.GoogleCallbackPath,
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.provider.AuthURL(state), http.StatusFound)
}

// Callback godoc
// @Summary Complete the Google login and start a session
// @Success 302
// @Router /auth/google/callback [get]
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.clearStateCookie(w)

	query := r.URL.Query()
	if errCode := query.Get("error"); errCode != "" {
		h.log.Warn("Google login declined", "error", errCode)
		h.redirectFailure(w, r)
		return
	}

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != query.Get("state") {
		h.log.Warn("OAuth state mismatch")
		h.redirectFailure(w, r)
		return
	}

	profile, err := h.provider.FetchProfile(r.Context(), query.Get("code"))
	if err != nil {
		h.log.Error("Failed to fetch Google profile", "error", err)
		h.redirectFailure(w, r)
		return
	}

	user, err := h.service.ResolveUser(r.Context(), profile)
	if err != nil {
		h.log.Error("Failed to resolve user", "error", err)
		h.redirectFailure(w, r)
		return
	}

	sessionID := h.store.Create(user.ID)
	h.codec.SetCookie(w, sessionID)
	h.log.Info("User logged in", "user_id", user.ID)

	http.Redirect(w, r, "/auth/success", http.StatusFound)
}

// Success godoc
// @Summary Report the outcome of a completed login
// @Produce json
// @Success 200 {object} loginResponse
// @Failure 401 {object} http.ErrorResponse
// @Router /auth/success [get]
func (h *AuthHandler) Success(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := session.Principal(r.Context())
	if user == nil {
		h.writeJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{Error: "Not authenticated"}, "Success")
		return
	}

	h.writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		User:    user.Summary(),
	}, "Success")
}

// Failure godoc
// @Summary Report a failed login
// @Produce json
// @Failure 401 {object} http.ErrorResponse
// @Router /auth/failure [get]
func (h *AuthHandler) Failure(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{Error: "Authentication failed"}, "Failure")
}

// Me godoc
// @Summary Return the logged-in user
// @Produce json
// @Success 200 {object} model.UserSummary
// @Failure 401 {object} http.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := session.Principal(r.Context())
	if user == nil {
		h.writeJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{Error: "Not authenticated"}, "Me")
		return
	}

	h.writeJSON(w, http.StatusOK, user.Summary(), "Me")
}

// Logout godoc
// @Summary End the session
// @Produce json
// @Success 200 {object} logoutResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if sessionID, err := h.codec.ReadCookie(r); err == nil {
		h.store.Delete(sessionID)
	}
	h.codec.ClearCookie(w)

	// Always 200, even for anonymous callers.
	h.writeJSON(w, http.StatusOK, logoutResponse{Message: "Logged out successfully"}, "Logout")
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/auth/google", h.Login)
	router.GET(config.GoogleCallbackPath, h.Callback)
	router.GET("/auth/success", h.Success)
	router.GET("/auth/failure", h.Failure)
	router.GET("/me", h.Me)
	router.GET("/auth/logout", h.Logout)
	router.POST("/auth/logout", h.Logout)
}

func (h *AuthHandler) redirectFailure(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/auth/failure", http.StatusFound)
}

func (h *AuthHandler) clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     config.GoogleCallbackPath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) writeJSON(w http.ResponseWriter, status int, data any, op string) {
	if err := httputil.WriteJSON(w, status, data); err != nil {
		h.log.Error("failed to write JSON response", "handler", op, "error", err)
	}
}
