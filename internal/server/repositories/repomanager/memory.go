package repomanager

import (
	"github.com/taskvault/taskvault/internal/server/repositories/accounts"
	"github.com/taskvault/taskvault/internal/server/repositories/tasks"
)

type MemoryRepositoryManager struct {
	accounts *accounts.MemoryRepository
	tasks    *tasks.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		accounts: accounts.NewMemoryRepository(),
		tasks:    tasks.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *MemoryRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}
