// Package auth implements the token and password primitives behind the
// authentication service: HS256 session tokens and bcrypt password hashes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskvault/taskvault/internal/common"
)

// Claims carries the registered claim set; the account email travels in
// the standard Subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken issues a signed session token binding subject (the account
// email) for the given validity window.
func GenerateToken(subject string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the embedded subject.
//
// Returned errors distinguish the failure mode so the caller can log it:
// common.ErrTokenExpired for an expired token, common.ErrInvalidToken for
// malformed input or a signature mismatch. Both match
// common.ErrInvalidToken via errors.Is, so clients see a single case.
func ParseToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", fmt.Errorf("%w: %v", common.ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", fmt.Errorf("%w: malformed: %v", common.ErrInvalidToken, err)
		default:
			return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
		}
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
