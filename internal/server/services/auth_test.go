package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskvault/taskvault/internal/common"
	"github.com/taskvault/taskvault/internal/logging"
	"github.com/taskvault/taskvault/internal/server/config"
	"github.com/taskvault/taskvault/internal/server/models"
	"github.com/taskvault/taskvault/internal/server/repositories/accounts"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuthService(t *testing.T) (*AuthService, *accounts.MemoryRepository) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BcryptCost = bcrypt.MinCost

	repo := accounts.NewMemoryRepository()
	return NewAuthService(repo, "test-secret", cfg, testLogger()), repo
}

func TestAuthService_RegisterAuthenticateVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	ctx := context.Background()

	account, err := svc.Register(ctx, "a@x.com", "secret-password")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", account.Email)
	require.NotEqual(t, "secret-password", account.PasswordHash)
	require.False(t, account.CreatedAt.IsZero())

	token, err := svc.Authenticate(ctx, "a@x.com", "secret-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.VerifyToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", subject)
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "missing email", email: "", password: "secret-password"},
		{name: "missing password", email: "a@x.com", password: ""},
		{name: "malformed email", email: "not-an-email", password: "secret-password"},
		{name: "short password", email: "a@x.com", password: "short"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.email, tc.password)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "secret-password")
	require.NoError(t, err)

	// Second registration fails regardless of password.
	_, err = svc.Register(ctx, "a@x.com", "different-password")
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "secret-password")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.NotErrorIs(t, err, common.ErrNotFound)
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)

	_, err := svc.Authenticate(context.Background(), "nobody@x.com", "whatever1")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestAuthService_Authenticate_MissingInput(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "", "x")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Authenticate(ctx, "a@x.com", "")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BcryptCost = bcrypt.MinCost
	cfg.TokenValidity = -1 * time.Second

	repo := accounts.NewMemoryRepository()
	svc := NewAuthService(repo, "test-secret", cfg, testLogger())
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "secret-password")
	require.NoError(t, err)

	token, err := svc.Authenticate(ctx, "a@x.com", "secret-password")
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, token)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestAuthService_VerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	svc, repo := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "secret-password")
	require.NoError(t, err)

	token, err := svc.Authenticate(ctx, "a@x.com", "secret-password")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	other := NewAuthService(repo, "another-secret", cfg, testLogger())

	_, err = other.VerifyToken(ctx, token)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestAuthService_VerifyToken_MissingToken(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService(t)

	_, err := svc.VerifyToken(context.Background(), "")
	require.ErrorIs(t, err, common.ErrValidation)
}

type failingAccounts struct{ err error }

func (f *failingAccounts) Create(ctx context.Context, account *models.Account) error {
	return f.err
}

func (f *failingAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return nil, f.err
}

func TestAuthService_StoreFailure_SurfacesUnavailable(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BcryptCost = bcrypt.MinCost

	svc := NewAuthService(&failingAccounts{err: errors.New("connection refused")}, "s", cfg, testLogger())
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "secret-password")
	require.ErrorIs(t, err, common.ErrUnavailable)

	_, err = svc.Authenticate(ctx, "a@x.com", "secret-password")
	require.ErrorIs(t, err, common.ErrUnavailable)
}
