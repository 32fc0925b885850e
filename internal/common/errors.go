// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match them.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnavailable        = errors.New("service unavailable")

	// Token errors. ErrTokenExpired wraps ErrInvalidToken so callers that
	// only care about validity can match the broader sentinel.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = fmt.Errorf("token expired: %w", ErrInvalidToken)
)
