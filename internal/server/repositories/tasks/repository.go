// Package tasks persists per-account to-do items.
package tasks

import (
	"context"

	"github.com/taskvault/taskvault/internal/server/models"
)

type Repository interface {
	// Create inserts a new task.
	Create(ctx context.Context, task *models.Task) error

	// ListByEmail returns the account's tasks, oldest first.
	ListByEmail(ctx context.Context, email string) ([]models.Task, error)

	// SetCompleted updates the completion flag of the account's task.
	// Returns common.ErrNotFound when the task does not exist or belongs
	// to another account.
	SetCompleted(ctx context.Context, email, id string, completed bool) error

	// Delete removes the account's task, common.ErrNotFound when absent.
	Delete(ctx context.Context, email, id string) error
}
