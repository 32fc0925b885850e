package tasks

import (
	"context"
	"sort"
	"sync"

	"github.com/taskvault/taskvault/internal/common"
	"github.com/taskvault/taskvault/internal/server/models"
)

// MemoryRepository is an in-process Repository for tests and the memory
// backend.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks map[string]map[string]models.Task // email -> id -> task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make(map[string]map[string]models.Task)}
}

func (r *MemoryRepository) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID, ok := r.tasks[task.Email]
	if !ok {
		byID = make(map[string]models.Task)
		r.tasks[task.Email] = byID
	}

	byID[task.ID] = *task
	return nil
}

func (r *MemoryRepository) ListByEmail(ctx context.Context, email string) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.tasks[email]
	list := make([]models.Task, 0, len(byID))
	for _, task := range byID {
		list = append(list, task)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})

	return list, nil
}

func (r *MemoryRepository) SetCompleted(ctx context.Context, email, id string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[email][id]
	if !ok {
		return common.ErrNotFound
	}

	task.Completed = completed
	r.tasks[email][id] = task
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, email, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[email][id]; !ok {
		return common.ErrNotFound
	}

	delete(r.tasks[email], id)
	return nil
}
