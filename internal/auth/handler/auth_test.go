package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tripplanner/internal/auth/google"
	"tripplanner/internal/auth/session"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockProvider struct {
	fetchProfileFunc func(ctx context.Context, code string) (*google.Profile, error)
}

func (m *mockProvider) AuthURL(state string) string {
	return "https://accounts.example.com/consent?state=" + state
}

func (m *mockProvider) FetchProfile(ctx context.Context, code string) (*google.Profile, error) {
	if m.fetchProfileFunc != nil {
		return m.fetchProfileFunc(ctx, code)
	}
	return &google.Profile{ID: "g-123", Email: "dana@example.com", Name: "Dana Cole"}, nil
}

type mockAuthService struct {
	resolveUserFunc func(ctx context.Context, profile *google.Profile) (*model.User, error)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, profile *google.Profile) (*model.User, error) {
	if m.resolveUserFunc != nil {
		return m.resolveUserFunc(ctx, profile)
	}
	return &model.User{ID: "64a0c5e2f1d2a31234567892", GoogleID: profile.ID, Email: profile.Email, Name: profile.Name}, nil
}

type testFixture struct {
	handler *AuthHandler
	store   *session.InMemoryStore
	codec   *session.Codec
}

func newFixture(t *testing.T, provider *mockProvider, svc *mockAuthService) *testFixture {
	t.Helper()
	store := session.NewInMemoryStore(time.Hour)
	t.Cleanup(store.Stop)

	codec := session.NewCodec("secret", time.Hour)
	log := logger.New(logger.Config{Level: "error", Service: "test"})

	if provider == nil {
		provider = &mockProvider{}
	}
	if svc == nil {
		svc = &mockAuthService{}
	}

	return &testFixture{
		handler: NewAuthHandler(provider, svc, store, codec, log),
		store:   store,
		codec:   codec,
	}
}

func principalContext(ctx context.Context) context.Context {
	return session.WithPrincipal(ctx, &model.User{
		ID:    "64a0c5e2f1d2a31234567892",
		Name:  "Dana Cole",
		Email: "dana@example.com",
	})
}

func stateCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == stateCookieName {
			return c
		}
	}
	return nil
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestLogin_RedirectsWithState(t *testing.T) {
	f := newFixture(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	w := httptest.NewRecorder()
	f.handler.Login(w, req, httprouter.Params{})

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}

	c := stateCookie(w)
	if c == nil || c.Value == "" {
		t.Fatal("expected a state cookie")
	}
	location := w.Header().Get("Location")
	if !strings.Contains(location, "state="+c.Value) {
		t.Errorf("redirect %q does not carry the state cookie value", location)
	}
}

func TestCallback_SuccessStartsSession(t *testing.T) {
	f := newFixture(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=abc&state=xyz", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "xyz"})
	w := httptest.NewRecorder()
	f.handler.Callback(w, req, httprouter.Params{})

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/auth/success" {
		t.Errorf("expected redirect to /auth/success, got %q", got)
	}

	c := sessionCookie(w)
	if c == nil {
		t.Fatal("expected a session cookie")
	}
	sessionID, err := f.codec.Decode(c.Value)
	if err != nil {
		t.Fatalf("session cookie failed verification: %v", err)
	}
	if userID, ok := f.store.Get(sessionID); !ok || userID != "64a0c5e2f1d2a31234567892" {
		t.Errorf("expected stored session for resolved user, got %q (%v)", userID, ok)
	}
}

func TestCallback_FailurePaths(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		cookie   string
		provider *mockProvider
		service  *mockAuthService
	}{
		{
			name:   "provider error param",
			target: "/auth/google/callback?error=access_denied",
			cookie: "xyz",
		},
		{
			name:   "missing state cookie",
			target: "/auth/google/callback?code=abc&state=xyz",
		},
		{
			name:   "state mismatch",
			target: "/auth/google/callback?code=abc&state=other",
			cookie: "xyz",
		},
		{
			name:   "exchange failure",
			target: "/auth/google/callback?code=abc&state=xyz",
			cookie: "xyz",
			provider: &mockProvider{
				fetchProfileFunc: func(ctx context.Context, code string) (*google.Profile, error) {
					return nil, errors.New("exchange rejected")
				},
			},
		},
		{
			name:   "resolve failure",
			target: "/auth/google/callback?code=abc&state=xyz",
			cookie: "xyz",
			service: &mockAuthService{
				resolveUserFunc: func(ctx context.Context, profile *google.Profile) (*model.User, error) {
					return nil, errors.New("store down")
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.provider, tt.service)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: stateCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			f.handler.Callback(w, req, httprouter.Params{})

			if w.Code != http.StatusFound {
				t.Fatalf("expected 302, got %d", w.Code)
			}
			if got := w.Header().Get("Location"); got != "/auth/failure" {
				t.Errorf("expected redirect to /auth/failure, got %q", got)
			}
			if sessionCookie(w) != nil {
				t.Error("failed login must not set a session cookie")
			}
		})
	}
}

func TestSuccess(t *testing.T) {
	f := newFixture(t, nil, nil)

	// Anonymous.
	w := httptest.NewRecorder()
	f.handler.Success(w, httptest.NewRequest(http.MethodGet, "/auth/success", nil), httprouter.Params{})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without principal, got %d", w.Code)
	}

	// Logged in.
	req := httptest.NewRequest(http.MethodGet, "/auth/success", nil)
	req = req.WithContext(principalContext(req.Context()))
	w = httptest.NewRecorder()
	f.handler.Success(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Message string            `json:"message"`
		User    model.UserSummary `json:"user"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Login successful" || resp.User.Email != "dana@example.com" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestMe(t *testing.T) {
	f := newFixture(t, nil, nil)

	w := httptest.NewRecorder()
	f.handler.Me(w, httptest.NewRequest(http.MethodGet, "/me", nil), httprouter.Params{})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without principal, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Not authenticated") {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req = req.WithContext(principalContext(req.Context()))
	w = httptest.NewRecorder()
	f.handler.Me(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var summary model.UserSummary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if summary.ID != "64a0c5e2f1d2a31234567892" {
		t.Errorf("unexpected summary %+v", summary)
	}
}

func TestLogout(t *testing.T) {
	f := newFixture(t, nil, nil)
	sessionID := f.store.Create("64a0c5e2f1d2a31234567892")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: f.codec.Encode(sessionID)})
	w := httptest.NewRecorder()
	f.handler.Logout(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Logged out successfully") {
		t.Errorf("unexpected body %s", w.Body.String())
	}
	if _, ok := f.store.Get(sessionID); ok {
		t.Error("expected session to be deleted")
	}
	if c := sessionCookie(w); c == nil || c.MaxAge >= 0 {
		t.Error("expected the session cookie to be cleared")
	}
}

func TestLogout_AnonymousStill200(t *testing.T) {
	f := newFixture(t, nil, nil)

	w := httptest.NewRecorder()
	f.handler.Logout(w, httptest.NewRequest(http.MethodGet, "/auth/logout", nil), httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for anonymous logout, got %d", w.Code)
	}
}
