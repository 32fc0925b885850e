package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskvault/taskvault/internal/common"
	"github.com/taskvault/taskvault/internal/server/models"
)

func seed(t *testing.T, repo *MemoryRepository, email string, titles ...string) []models.Task {
	t.Helper()
	ctx := context.Background()
	created := make([]models.Task, 0, len(titles))
	base := time.Now()
	for i, title := range titles {
		task := models.Task{
			ID:        title + "-id",
			Email:     email,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Create(ctx, &task); err != nil {
			t.Fatalf("Create(%q): %v", title, err)
		}
		created = append(created, task)
	}
	return created
}

func TestMemoryRepository_ListByEmail_OrderAndScope(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	seed(t, repo, "a@x.com", "first", "second", "third")
	seed(t, repo, "b@x.com", "other")

	list, err := repo.ListByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("ListByEmail: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	for i, want := range []string{"first", "second", "third"} {
		if list[i].Title != want {
			t.Fatalf("list[%d].Title = %q, want %q", i, list[i].Title, want)
		}
	}
}

func TestMemoryRepository_SetCompleted(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	created := seed(t, repo, "a@x.com", "todo")
	ctx := context.Background()

	if err := repo.SetCompleted(ctx, "a@x.com", created[0].ID, true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}

	list, _ := repo.ListByEmail(ctx, "a@x.com")
	if !list[0].Completed {
		t.Fatalf("task should be completed")
	}

	// Another account must not reach the task.
	err := repo.SetCompleted(ctx, "b@x.com", created[0].ID, true)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign account, got %v", err)
	}
}

func TestMemoryRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	created := seed(t, repo, "a@x.com", "todo")
	ctx := context.Background()

	if err := repo.Delete(ctx, "a@x.com", created[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	err := repo.Delete(ctx, "a@x.com", created[0].ID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	list, _ := repo.ListByEmail(ctx, "a@x.com")
	if len(list) != 0 {
		t.Fatalf("len = %d, want 0", len(list))
	}
}
