package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskvault/taskvault/internal/common"
)

// Hasher computes and verifies salted password hashes with a configurable
// bcrypt work factor.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of password. The salt is generated by
// bcrypt and embedded in the returned hash.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// Compare checks password against the stored hash. bcrypt performs the
// comparison in constant time. A mismatch maps to
// common.ErrInvalidCredentials; anything else is a real failure.
func (h *Hasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return common.ErrInvalidCredentials
		}
		return fmt.Errorf("comparing password: %w", err)
	}
	return nil
}
