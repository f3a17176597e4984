package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"evcharge/backend/services/station-api/internal/identity"
	"evcharge/backend/services/station-api/internal/models"
	"evcharge/backend/services/station-api/internal/repository"
)

type fakeUserRepo struct {
	users       []models.User
	createCalls int
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.createCalls++
	user.ID = int64(len(f.users) + 1)
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	matches := make([]models.User, 0)
	for _, user := range f.users {
		if user.Email == email {
			matches = append(matches, user)
		}
	}
	return matches, nil
}

type fakeProvider struct {
	accounts map[string]*identity.Account
	err      error
}

func (f *fakeProvider) LookupByEmail(ctx context.Context, email string) (*identity.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	if account, ok := f.accounts[email]; ok {
		return account, nil
	}
	return nil, identity.ErrAccountNotFound
}

func TestCheckEmail(t *testing.T) {
	provider := &fakeProvider{accounts: map[string]*identity.Account{
		"known@example.com": {ID: 1, Email: "known@example.com"},
	}}
	svc := NewUserService(&fakeUserRepo{}, provider, zap.NewNop())

	registered, err := svc.CheckEmail(context.Background(), "known@example.com")
	if err != nil || !registered {
		t.Fatalf("registered = %v, err = %v; want true, nil", registered, err)
	}

	registered, err = svc.CheckEmail(context.Background(), "unknown@example.com")
	if err != nil {
		t.Fatalf("provider not-found must not be an error: %v", err)
	}
	if registered {
		t.Error("unknown email should report registered = false")
	}
}

func TestCheckEmailMissing(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeProvider{}, zap.NewNop())

	_, err := svc.CheckEmail(context.Background(), "  ")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestCheckEmailProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("provider exploded")}
	svc := NewUserService(&fakeUserRepo{}, provider, zap.NewNop())

	_, err := svc.CheckEmail(context.Background(), "any@example.com")
	if err == nil {
		t.Fatal("provider failure must surface as an error")
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		t.Fatal("provider failure must not map to ValidationError")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, &fakeProvider{}, zap.NewNop())

	if _, err := svc.Register(context.Background(), "Ada", "ada@example.com"); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	_, err := svc.Register(context.Background(), "Ada Again", "ada@example.com")
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("error = %v, want ConflictError", err)
	}
	if repo.createCalls != 1 {
		t.Errorf("create calls = %d, want 1", repo.createCalls)
	}
}

func TestLoggedInUser(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, &fakeProvider{}, zap.NewNop())

	if _, err := svc.Register(context.Background(), "Ada", "ada@example.com"); err != nil {
		t.Fatalf("registration: %v", err)
	}

	matches, err := svc.LoggedInUser(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "Ada" {
		t.Fatalf("matches = %+v, want one Ada", matches)
	}

	empty, err := svc.LoggedInUser(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("matches = %+v, want empty set", empty)
	}

	if _, err := svc.LoggedInUser(context.Background(), ""); err == nil {
		t.Error("missing email must fail")
	}
}
