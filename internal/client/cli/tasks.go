package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskvault/taskvault/internal/common"
)

func (a *App) ListTasks(ctx context.Context) error {
	token, err := a.loadToken()
	if err != nil {
		return err
	}

	tasks, err := a.api.ListTasks(ctx, token)
	if err != nil {
		return a.taskError(err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks.")
		return nil
	}

	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.out, "[%s] %s  %s\n", mark, t.ID, t.Title)
	}
	return nil
}

func (a *App) AddTask(ctx context.Context, title string) error {
	token, err := a.loadToken()
	if err != nil {
		return err
	}

	task, err := a.api.AddTask(ctx, token, title)
	if err != nil {
		return a.taskError(err)
	}

	fmt.Fprintf(a.out, "Added %s\n", task.ID)
	return nil
}

func (a *App) CompleteTask(ctx context.Context, id string) error {
	token, err := a.loadToken()
	if err != nil {
		return err
	}

	if err := a.api.SetTaskCompleted(ctx, token, id, true); err != nil {
		return a.taskError(err)
	}

	fmt.Fprintln(a.out, "Done.")
	return nil
}

func (a *App) RemoveTask(ctx context.Context, id string) error {
	token, err := a.loadToken()
	if err != nil {
		return err
	}

	if err := a.api.DeleteTask(ctx, token, id); err != nil {
		return a.taskError(err)
	}

	fmt.Fprintln(a.out, "Removed.")
	return nil
}

// taskError drops the stored token when the server rejects it, so the
// next command prompts for a fresh login instead of failing the same way.
func (a *App) taskError(err error) error {
	if errors.Is(err, common.ErrInvalidToken) {
		a.session.Clear()
		return fmt.Errorf("session expired, run 'taskauth login'")
	}
	return err
}
