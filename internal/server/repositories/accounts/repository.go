// Package accounts persists credential records. The store contract is the
// one the authentication flow depends on: a conditional insert that fails
// when the email is already present, and a point lookup by email.
package accounts

import (
	"context"

	"github.com/taskvault/taskvault/internal/server/models"
)

type Repository interface {
	// Create inserts the account if and only if no account with the same
	// email exists. Returns common.ErrAlreadyExists otherwise. When raced,
	// the backing store guarantees exactly one Create per email succeeds.
	Create(ctx context.Context, account *models.Account) error

	// GetByEmail returns the account or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
