// Package services contains the application services orchestrating
// repositories, hashing, and token logic.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/taskvault/taskvault/internal/common"
	"github.com/taskvault/taskvault/internal/logging"
	"github.com/taskvault/taskvault/internal/server/auth"
	"github.com/taskvault/taskvault/internal/server/config"
	"github.com/taskvault/taskvault/internal/server/models"
	"github.com/taskvault/taskvault/internal/server/repositories/accounts"
)

// registration is validated in the core, not just the UI: the email must
// be well-formed and the password at least 8 characters.
type registration struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// AuthService implements the three authentication operations. Each call is
// an independent, stateless unit of work; the signing secret is fixed at
// construction and never mutated, so no locking is needed.
type AuthService struct {
	repo          accounts.Repository
	hasher        *auth.Hasher
	jwtSecret     []byte
	tokenValidity time.Duration
	validate      *validator.Validate
	logger        logging.Logger
}

func NewAuthService(repo accounts.Repository, secret string, cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		repo:          repo,
		hasher:        auth.NewHasher(cfg.BcryptCost),
		jwtSecret:     []byte(secret),
		tokenValidity: cfg.TokenValidity,
		validate:      validator.New(),
		logger:        logger.With("module", "auth_service"),
	}
}

// Register hashes the password and conditionally inserts the account.
// A duplicate email surfaces as common.ErrAlreadyExists; any other store
// failure as common.ErrUnavailable with the cause preserved for logs.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	if err := s.validate.Struct(registration{Email: email, Password: password}); err != nil {
		s.logger.Warn(ctx, "Signup rejected by validation", "email", email, "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "Failed to hash password", "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	account := &models.Account{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			s.logger.Warn(ctx, "Signup attempt with existing email", "email", email)
			return nil, common.ErrAlreadyExists
		}
		s.logger.Error(ctx, "Failed to create account", "email", email, "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	s.logger.Info(ctx, "Account created", "email", email)
	return account, nil
}

// Authenticate verifies the credentials and issues a session token bound
// to the account email. No session state is recorded.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(ctx, "Login attempt with non-existent email", "email", email)
			return "", common.ErrNotFound
		}
		s.logger.Error(ctx, "Failed to load account", "email", email, "error", err.Error())
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.logger.Warn(ctx, "Login attempt with incorrect password", "email", email)
			return "", common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "Password comparison failed", "email", email, "error", err.Error())
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	token, err := auth.GenerateToken(email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "Failed to sign token", "email", email, "error", err.Error())
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	s.logger.Info(ctx, "Session token issued", "email", email)
	return token, nil
}

// VerifyToken checks signature and expiry and returns the token subject.
// Expired, forged, and malformed tokens all match common.ErrInvalidToken;
// the distinct failure mode is logged here, not exposed to the caller.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: token is required", common.ErrValidation)
	}

	subject, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrTokenExpired):
			s.logger.Warn(ctx, "Verification of expired token", "error", err.Error())
		default:
			s.logger.Warn(ctx, "Invalid token verification attempt", "error", err.Error())
		}
		return "", err
	}

	s.logger.Debug(ctx, "Token verified", "email", subject)
	return subject, nil
}
