package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"go.uber.org/zap"

	"evcharge/backend/services/identity-service/internal/models"
	"evcharge/backend/services/identity-service/internal/password"
	redisstore "evcharge/backend/services/identity-service/internal/redis"
	"evcharge/backend/services/identity-service/internal/repository"
)

var (
	// ErrEmailInUse is returned when attempting to register a duplicate email.
	ErrEmailInUse = errors.New("identity: email already registered")
	// ErrAccountNotFound means no account exists for the email.
	ErrAccountNotFound = errors.New("identity: account not found")
	// ErrInvalidCredentials represents a login failure.
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	// ErrInvalidInput marks missing or malformed request fields.
	ErrInvalidInput = errors.New("identity: invalid input")
	// ErrResetTokenInvalid means the reset token is unknown or expired.
	ErrResetTokenInvalid = errors.New("identity: reset token invalid or expired")
)

// AccountRepository defines the storage contract used by the service.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdatePasswordHash(ctx context.Context, accountID int64, hash string) error
}

// ResetTokenStore holds one-time password reset tokens.
type ResetTokenStore interface {
	Save(ctx context.Context, token string, accountID int64) error
	Consume(ctx context.Context, token string) (int64, error)
}

// AccountsService contains registration, lookup, login and password
// reset logic for credentialed accounts.
type AccountsService struct {
	repo      AccountRepository
	hasher    password.Hasher
	tokenizer *TokenService
	resets    ResetTokenStore
	logger    *zap.Logger
}

// NewAccountsService builds AccountsService.
func NewAccountsService(repo AccountRepository, hasher password.Hasher, tokenizer *TokenService, resets ResetTokenStore, logger *zap.Logger) *AccountsService {
	return &AccountsService{
		repo:      repo,
		hasher:    hasher,
		tokenizer: tokenizer,
		resets:    resets,
		logger:    logger,
	}
}

// Signup registers a new credentialed account.
func (s *AccountsService) Signup(ctx context.Context, email, plainPassword string) (*models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || plainPassword == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	account := &models.Account{Email: email, PasswordHash: hash}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("account created", zap.Int64("account_id", account.ID), zap.String("email", account.Email))
	return account, nil
}

// Lookup returns the account registered under email.
func (s *AccountsService) Lookup(ctx context.Context, email string) (*models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrInvalidInput
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// Login authenticates an account and produces a JWT.
func (s *AccountsService) Login(ctx context.Context, email, plainPassword string) (string, *models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || plainPassword == "" {
		return "", nil, ErrInvalidCredentials
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.hasher.Compare(account.PasswordHash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokenizer.GenerateToken(account.ID, account.Email)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

// RequestPasswordReset issues a one-time reset token for the account. The
// token is returned to the caller; an unknown email yields ErrAccountNotFound
// so the handler can hide the distinction from end users.
func (s *AccountsService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidInput
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrAccountNotFound
		}
		return "", err
	}

	token, err := newResetToken()
	if err != nil {
		return "", err
	}
	if err := s.resets.Save(ctx, token, account.ID); err != nil {
		return "", err
	}

	s.logger.Info("password reset requested", zap.Int64("account_id", account.ID))
	return token, nil
}

// ConfirmPasswordReset consumes the token and rewrites the password hash.
func (s *AccountsService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return ErrInvalidInput
	}

	accountID, err := s.resets.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, redisstore.ErrTokenNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePasswordHash(ctx, accountID, hash); err != nil {
		return err
	}

	s.logger.Info("password reset confirmed", zap.Int64("account_id", accountID))
	return nil
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
