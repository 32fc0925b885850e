// Package cli implements the taskauth command line client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/taskvault/taskvault/internal/client/api"
	"github.com/taskvault/taskvault/internal/client/config"
	"github.com/taskvault/taskvault/internal/client/session"
)

type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Store
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	store, err := session.NewStore()
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		api:     api.NewClient(cfg.ServerAddr, cfg.RequestTimeout),
		session: store,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

const usage = `Usage: taskauth [-s server] <command>

Commands:
  signup              create an account
  login               sign in and store a session token
  whoami              show the signed-in account
  logout              discard the stored session token
  task list           list your tasks
  task add <title>    add a task
  task done <id>      mark a task completed
  task rm <id>        delete a task
`

// Run dispatches a single subcommand and returns its error, if any.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return nil
	}

	switch args[0] {
	case "signup":
		return a.Signup(ctx)
	case "login":
		return a.Login(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "logout":
		return a.Logout(ctx)
	case "task":
		return a.runTask(ctx, args[1:])
	case "help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (a *App) runTask(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("task subcommand required")
	}

	switch args[0] {
	case "list":
		return a.ListTasks(ctx)
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: task add <title>")
		}
		return a.AddTask(ctx, args[1])
	case "done":
		if len(args) < 2 {
			return fmt.Errorf("usage: task done <id>")
		}
		return a.CompleteTask(ctx, args[1])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: task rm <id>")
		}
		return a.RemoveTask(ctx, args[1])
	default:
		return fmt.Errorf("unknown task subcommand: %s", args[0])
	}
}
