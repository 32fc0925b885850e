// Package httpapi exposes the authentication and task operations over
// JSON/HTTP and hosts the HTTP server lifecycle.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskvault/taskvault/internal/logging"
	sc "github.com/taskvault/taskvault/internal/server/config"
	"github.com/taskvault/taskvault/internal/server/services"
)

// Server wires the services into a gin engine and manages the listener.
type Server struct {
	addr        string
	engine      *gin.Engine
	httpServer  *http.Server
	authService *services.AuthService
	taskService *services.TaskService
	logger      logging.Logger
}

func NewServer(cfg *sc.Config, authService *services.AuthService, taskService *services.TaskService, logger logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		addr:        cfg.Addr,
		engine:      gin.New(),
		authService: authService,
		taskService: taskService,
		logger:      logger.With("module", "http_server"),
	}

	s.engine.Use(
		requestID(),
		requestLogger(logger),
		recovery(logger),
		cors(cfg.CORSOrigin),
	)
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:    cfg.Addr,
		Handler: s.engine,
	}

	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)

	auth := s.engine.Group("/auth")
	auth.POST("/signup", s.handleSignup)
	auth.POST("/login", s.handleLogin)
	auth.POST("/verify", s.handleVerify)

	tasks := s.engine.Group("/tasks", s.requireToken())
	tasks.GET("", s.handleListTasks)
	tasks.POST("", s.handleAddTask)
	tasks.PATCH("/:id", s.handleUpdateTask)
	tasks.DELETE("/:id", s.handleDeleteTask)
}

// Engine returns the underlying gin engine, used by handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run binds the address and serves until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "HTTP server started", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
