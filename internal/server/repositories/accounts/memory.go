package accounts

import (
	"context"
	"sync"

	"github.com/taskvault/taskvault/internal/common"
	"github.com/taskvault/taskvault/internal/server/models"
)

// MemoryRepository is an in-process Repository used by tests and the
// memory backend. The mutex supplies the same exactly-one-winner guarantee
// the external stores give via their conditional write.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]models.Account)}
}

func (r *MemoryRepository) Create(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Email]; ok {
		return common.ErrAlreadyExists
	}

	r.accounts[account.Email] = *account
	return nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, common.ErrNotFound
	}

	return &account, nil
}
