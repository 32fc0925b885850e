// Package repomanager selects and wires a store backend. Concrete managers
// vend repository implementations bound to their backend's handle.
package repomanager

import (
	"context"
	"fmt"

	sc "github.com/taskvault/taskvault/internal/server/config"
	"github.com/taskvault/taskvault/internal/server/repositories/accounts"
	"github.com/taskvault/taskvault/internal/server/repositories/tasks"
)

type RepositoryManager interface {
	Accounts() accounts.Repository
	Tasks() tasks.Repository
	Close() error
}

// FromConfig constructs the manager for the configured backend. Postgres
// managers run their schema migrations before returning.
func FromConfig(ctx context.Context, cfg *sc.Config) (RepositoryManager, error) {
	switch cfg.StoreBackend {
	case sc.BackendMemory:
		return NewMemoryRepositoryManager(), nil
	case sc.BackendPostgres:
		return NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	case sc.BackendDynamo:
		return NewDynamoRepositoryManager(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
