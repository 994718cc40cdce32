package service

import (
	"context"
	"errors"

	autherrors "tripplanner/internal/auth/errors"
	"tripplanner/internal/auth/google"
	"tripplanner/internal/auth/repository"
	"tripplanner/pkg/config"
	apperrors "tripplanner/pkg/errors"
	"tripplanner/pkg/model"
)

type AuthService interface {
	ResolveUser(ctx context.Context, profile *google.Profile) (*model.User, error)
}

type authService struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// ResolveUser finds the local account for a Google identity, creating it on
// first login. A concurrent first login can lose the insert race against the
// unique googleId index; the loser refetches the winner's document.
func (s *authService) ResolveUser(ctx context.Context, profile *google.Profile) (*model.User, error) {
	user, err := s.repo.FindByGoogleID(ctx, profile.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, autherrors.ErrNotFound) {
		s.cfg.Log.Error("Failed to look up user", "error", err)
		return nil, apperrors.Internal("Failed to resolve user", err)
	}

	user = &model.User{
		GoogleID: profile.ID,
		Email:    profile.Email,
		Name:     profile.Name,
	}
	if user.Name == "" {
		user.Name = "Unknown User"
	}

	err = s.repo.Insert(ctx, user)
	if err == nil {
		s.cfg.Log.Info("User created", "id", user.ID)
		return user, nil
	}

	if errors.Is(err, autherrors.ErrDuplicate) {
		return s.repo.FindByGoogleID(ctx, profile.ID)
	}

	s.cfg.Log.Error("Failed to create user", "error", err)
	return nil, apperrors.Internal("Failed to resolve user", err)
}
