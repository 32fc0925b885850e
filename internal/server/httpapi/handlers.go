package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskvault/taskvault/internal/common"
	"github.com/taskvault/taskvault/internal/server/models"
)

// Client-facing messages. Infrastructure faults are logged in full by the
// services but never leak details past msgGenericFailure.
const (
	msgCreated        = "User created successfully"
	msgMissingFields  = "Email and password are required"
	msgBadSignup      = "A valid email and a password of at least 8 characters are required"
	msgEmailExists    = "Email already exists"
	msgEmailNotFound  = "Email not found"
	msgWrongPassword  = "Incorrect password"
	msgTokenRequired  = "Token is required"
	msgInvalidToken   = "Invalid token"
	msgGenericFailure = "Service temporarily unavailable"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Valid   bool   `json:"valid"`
	Subject string `json:"subject"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type addTaskRequest struct {
	Title string `json:"title"`
}

type updateTaskRequest struct {
	Completed *bool `json:"completed"`
}

type taskListResponse struct {
	Tasks []models.Task `json:"tasks"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingFields})
		return
	}

	account, err := s.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, errorResponse{Error: msgEmailExists})
		case errors.Is(err, common.ErrValidation):
			c.JSON(http.StatusBadRequest, errorResponse{Error: msgBadSignup})
		default:
			c.JSON(http.StatusServiceUnavailable, errorResponse{Error: msgGenericFailure})
		}
		return
	}

	c.JSON(http.StatusCreated, signupResponse{Email: account.Email, Message: msgCreated})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: msgMissingFields})
		return
	}

	token, err := s.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			c.JSON(http.StatusUnauthorized, errorResponse{Error: msgMissingFields})
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusUnauthorized, errorResponse{Error: msgEmailNotFound})
		case errors.Is(err, common.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, errorResponse{Error: msgWrongPassword})
		default:
			c.JSON(http.StatusServiceUnavailable, errorResponse{Error: msgGenericFailure})
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token})
}

func (s *Server) handleVerify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: msgTokenRequired})
		return
	}

	subject, err := s.authService.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			c.JSON(http.StatusUnauthorized, errorResponse{Error: msgTokenRequired})
			return
		}
		// Expired, forged, and malformed tokens are indistinguishable here.
		c.JSON(http.StatusUnauthorized, errorResponse{Error: msgInvalidToken})
		return
	}

	c.JSON(http.StatusOK, verifyResponse{Valid: true, Subject: subject})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleListTasks(c *gin.Context) {
	email := c.GetString(accountEmailKey)

	list, err := s.taskService.List(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: msgGenericFailure})
		return
	}

	c.JSON(http.StatusOK, taskListResponse{Tasks: list})
}

func (s *Server) handleAddTask(c *gin.Context) {
	email := c.GetString(accountEmailKey)

	var req addTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Title is required"})
		return
	}

	task, err := s.taskService.Add(c.Request.Context(), email, req.Title)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Title is required"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: msgGenericFailure})
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	email := c.GetString(accountEmailKey)
	id := c.Param("id")

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Completed flag is required"})
		return
	}

	err := s.taskService.SetCompleted(c.Request.Context(), email, id, *req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusNotFound, errorResponse{Error: "Task not found"})
		case errors.Is(err, common.ErrValidation):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Task id is required"})
		default:
			c.JSON(http.StatusServiceUnavailable, errorResponse{Error: msgGenericFailure})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	email := c.GetString(accountEmailKey)
	id := c.Param("id")

	err := s.taskService.Remove(c.Request.Context(), email, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusNotFound, errorResponse{Error: "Task not found"})
		case errors.Is(err, common.ErrValidation):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Task id is required"})
		default:
			c.JSON(http.StatusServiceUnavailable, errorResponse{Error: msgGenericFailure})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
