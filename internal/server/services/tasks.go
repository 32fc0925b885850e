package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/common"
	"github.com/taskvault/taskvault/internal/logging"
	"github.com/taskvault/taskvault/internal/server/models"
	"github.com/taskvault/taskvault/internal/server/repositories/tasks"
)

// TaskService manages the per-account task list. Every operation is scoped
// to the email taken from a verified session token.
type TaskService struct {
	repo   tasks.Repository
	logger logging.Logger
}

func NewTaskService(repo tasks.Repository, logger logging.Logger) *TaskService {
	return &TaskService{
		repo:   repo,
		logger: logger.With("module", "task_service"),
	}
}

func (s *TaskService) Add(ctx context.Context, email, title string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	task := &models.Task{
		ID:        uuid.NewString(),
		Email:     email,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error(ctx, "Failed to create task", "email", email, "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	s.logger.Info(ctx, "Task created", "email", email, "task_id", task.ID)
	return task, nil
}

func (s *TaskService) List(ctx context.Context, email string) ([]models.Task, error) {
	list, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error(ctx, "Failed to list tasks", "email", email, "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	return list, nil
}

func (s *TaskService) SetCompleted(ctx context.Context, email, id string, completed bool) error {
	if id == "" {
		return fmt.Errorf("%w: task id is required", common.ErrValidation)
	}

	err := s.repo.SetCompleted(ctx, email, id, completed)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		s.logger.Error(ctx, "Failed to update task", "email", email, "task_id", id, "error", err.Error())
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	return nil
}

func (s *TaskService) Remove(ctx context.Context, email, id string) error {
	if id == "" {
		return fmt.Errorf("%w: task id is required", common.ErrValidation)
	}

	err := s.repo.Delete(ctx, email, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		s.logger.Error(ctx, "Failed to delete task", "email", email, "task_id", id, "error", err.Error())
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	s.logger.Info(ctx, "Task deleted", "email", email, "task_id", id)
	return nil
}
