package service

import (
	"context"
	"errors"
	"testing"

	autherrors "tripplanner/internal/auth/errors"
	"tripplanner/internal/auth/google"
	"tripplanner/pkg/config"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/model"
)

// Mock repository for testing
type mockUserRepository struct {
	findByIDFunc       func(ctx context.Context, id string) (*model.User, error)
	findByGoogleIDFunc func(ctx context.Context, googleID string) (*model.User, error)
	insertFunc         func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return &model.User{ID: id}, nil
}

func (m *mockUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	if m.findByGoogleIDFunc != nil {
		return m.findByGoogleIDFunc(ctx, googleID)
	}
	return nil, autherrors.ErrNotFound
}

func (m *mockUserRepository) Insert(ctx context.Context, user *model.User) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, user)
	}
	user.ID = "64a0c5e2f1d2a31234567892"
	return nil
}

func newTestService(repo *mockUserRepository) AuthService {
	log := logger.New(logger.Config{Level: "error", Service: "test"})
	return NewAuthService(repo, &config.Config{Log: log})
}

func profile() *google.Profile {
	return &google.Profile{ID: "g-123", Email: "dana@example.com", Name: "Dana Cole"}
}

func TestResolveUser_ReturnsExisting(t *testing.T) {
	inserted := false
	repo := &mockUserRepository{
		findByGoogleIDFunc: func(ctx context.Context, googleID string) (*model.User, error) {
			return &model.User{ID: "64a0c5e2f1d2a31234567892", GoogleID: googleID}, nil
		},
		insertFunc: func(ctx context.Context, user *model.User) error {
			inserted = true
			return nil
		},
	}
	svc := newTestService(repo)

	user, err := svc.ResolveUser(context.Background(), profile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "64a0c5e2f1d2a31234567892" {
		t.Errorf("expected existing user, got %+v", user)
	}
	if inserted {
		t.Error("existing user must not trigger an insert")
	}
}

func TestResolveUser_CreatesOnFirstLogin(t *testing.T) {
	var inserted *model.User
	repo := &mockUserRepository{
		insertFunc: func(ctx context.Context, user *model.User) error {
			inserted = user
			user.ID = "64a0c5e2f1d2a31234567892"
			return nil
		},
	}
	svc := newTestService(repo)

	user, err := svc.ResolveUser(context.Background(), profile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted == nil {
		t.Fatal("expected a user insert")
	}
	if user.GoogleID != "g-123" || user.Name != "Dana Cole" {
		t.Errorf("unexpected created user %+v", user)
	}
}

func TestResolveUser_MissingNameFallsBack(t *testing.T) {
	repo := &mockUserRepository{}
	svc := newTestService(repo)

	p := profile()
	p.Name = ""

	user, err := svc.ResolveUser(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Unknown User" {
		t.Errorf("expected name fallback, got %q", user.Name)
	}
}

func TestResolveUser_DuplicateInsertRefetches(t *testing.T) {
	firstLookup := true
	repo := &mockUserRepository{
		findByGoogleIDFunc: func(ctx context.Context, googleID string) (*model.User, error) {
			if firstLookup {
				firstLookup = false
				return nil, autherrors.ErrNotFound
			}
			return &model.User{ID: "winner", GoogleID: googleID}, nil
		},
		insertFunc: func(ctx context.Context, user *model.User) error {
			return autherrors.ErrDuplicate
		},
	}
	svc := newTestService(repo)

	user, err := svc.ResolveUser(context.Background(), profile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "winner" {
		t.Errorf("expected the concurrent winner's document, got %+v", user)
	}
}

func TestResolveUser_LookupFailure(t *testing.T) {
	repo := &mockUserRepository{
		findByGoogleIDFunc: func(ctx context.Context, googleID string) (*model.User, error) {
			return nil, errors.New("socket closed")
		},
	}
	svc := newTestService(repo)

	if _, err := svc.ResolveUser(context.Background(), profile()); err == nil {
		t.Fatal("expected error on store failure")
	}
}
