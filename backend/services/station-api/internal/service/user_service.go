package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"evcharge/backend/services/station-api/internal/identity"
	"evcharge/backend/services/station-api/internal/models"
	"evcharge/backend/services/station-api/internal/repository"
)

// UserRepository defines the storage contract used by the service.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) ([]models.User, error)
}

// IdentityProvider is the external service of record for credentialed
// accounts. Only the lookup call is consumed here.
type IdentityProvider interface {
	LookupByEmail(ctx context.Context, email string) (*identity.Account, error)
}

// UserService handles registration and lookup of application users.
type UserService struct {
	repo     UserRepository
	provider IdentityProvider
	logger   *zap.Logger
}

// NewUserService builds UserService.
func NewUserService(repo UserRepository, provider IdentityProvider, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, provider: provider, logger: logger}
}

// CheckEmail asks the identity provider whether an account exists for the
// email. A not-found answer from the provider is a normal outcome, not an
// error; everything else surfaces as an internal failure.
func (s *UserService) CheckEmail(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, &ValidationError{Reason: "Email is required"}
	}

	if _, err := s.provider.LookupByEmail(ctx, email); err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			return false, nil
		}
		s.logger.Error("identity provider lookup failed", zap.Error(err))
		return false, err
	}
	return true, nil
}

// Register inserts a {name, email} record, enforcing email uniqueness.
func (s *UserService) Register(ctx context.Context, name, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, &ValidationError{Reason: "Email is required"}
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, &ConflictError{Reason: "User with this email already exists"}
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user := &models.User{Name: name, Email: email}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// LoggedInUser returns the possibly empty set of users matching an email.
func (s *UserService) LoggedInUser(ctx context.Context, email string) ([]models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &ValidationError{Reason: "Email is required"}
	}
	return s.repo.FindByEmail(ctx, email)
}
