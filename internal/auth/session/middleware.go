package session

import (
	"context"
	"errors"
	"net/http"

	autherrors "tripplanner/internal/auth/errors"
	httputil "tripplanner/pkg/http"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type contextKey string

const principalKey contextKey = "principal"

// UserFinder rehydrates the logged-in user from storage on each request.
// A deleted user is reported as autherrors.ErrNotFound; any other error is
// treated as transient.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// Principal pulls the authenticated user out of the request context.
// Returns nil for anonymous requests.
func Principal(ctx context.Context) *model.User {
	user, _ := ctx.Value(principalKey).(*model.User)
	return user
}

// WithPrincipal returns a context carrying the given user.
func WithPrincipal(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, principalKey, user)
}

// Rehydrator turns a valid session cookie into a request principal. Any
// failure along the way (missing cookie, bad signature, expired session,
// deleted user) degrades to anonymous rather than erroring.
type Rehydrator struct {
	codec *Codec
	store Store
	users UserFinder
	log   *logger.Logger
}

func NewRehydrator(codec *Codec, store Store, users UserFinder, log *logger.Logger) *Rehydrator {
	return &Rehydrator{
		codec: codec,
		store: store,
		users: users,
		log:   log,
	}
}

func (m *Rehydrator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := m.codec.ReadCookie(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := m.store.Get(sessionID)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.users.FindByID(r.Context(), userID)
		if err != nil {
			// Only a confirmed missing user invalidates the session. A
			// transient lookup failure degrades this one request to
			// anonymous and leaves the session intact.
			if errors.Is(err, autherrors.ErrNotFound) {
				m.log.Warn("session points at deleted user", "user_id", userID)
				m.store.Delete(sessionID)
			} else {
				m.log.Warn("user lookup failed, serving request as anonymous", "user_id", userID, "error", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), user)))
	})
}

type unauthorizedResponse struct {
	Message string `json:"message"`
}

// RequireAuth gates a route behind a resolved principal. The 401 body keys
// on "message", not the "error" key the resource endpoints use.
func RequireAuth(log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			if Principal(r.Context()) == nil {
				if err := httputil.WriteJSON(w, http.StatusUnauthorized, unauthorizedResponse{
					Message: "Unauthorized",
				}); err != nil {
					log.Error("failed to write JSON response", "handler", "RequireAuth", "error", err)
				}
				return
			}
			next(w, r, ps)
		}
	}
}
