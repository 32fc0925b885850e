// Package server initializes and runs the application server.
// It resolves the token signing secret, configures the storage backend,
// starts the HTTP API and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/taskvault/taskvault/internal/logging"
	"github.com/taskvault/taskvault/internal/server/config"
	"github.com/taskvault/taskvault/internal/server/httpapi"
	"github.com/taskvault/taskvault/internal/server/repositories/repomanager"
	"github.com/taskvault/taskvault/internal/server/secrets"
	"github.com/taskvault/taskvault/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	provider, err := secrets.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("secret provider init error: %w", err)
	}

	// The signing secret is resolved once at startup. A server that
	// cannot sign tokens must not come up at all.
	secret, err := provider.GetSigningSecret(ctx)
	if err != nil {
		return nil, fmt.Errorf("signing secret error: %w", err)
	}

	repos, err := repomanager.FromConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	authService := services.NewAuthService(repos.Accounts(), secret, cfg, logger)
	taskService := services.NewTaskService(repos.Tasks(), logger)
	server := httpapi.NewServer(cfg, authService, taskService, logger)

	return &App{config: cfg, logger: logger, repos: repos, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.StoreBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
