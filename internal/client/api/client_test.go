package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault/internal/common"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@x.com", body["email"])

		json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	token, err := c.Login(context.Background(), "a@x.com", "secret-password")
	require.NoError(t, err)
	require.Equal(t, "issued-token", token)
}

func TestClient_ListTasks_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"tasks": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	tasks, err := c.ListTasks(context.Background(), "issued-token")
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		want    error
	}{
		{"unauthorized", http.StatusUnauthorized, "Invalid token", common.ErrInvalidToken},
		{"not found", http.StatusNotFound, "Task not found", common.ErrNotFound},
		{"bad request", http.StatusBadRequest, "Title is required", common.ErrValidation},
		{"server fault", http.StatusServiceUnavailable, "Service temporarily unavailable", common.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]string{"error": tt.message})
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			_, err := c.ListTasks(context.Background(), "some-token")
			require.True(t, errors.Is(err, tt.want), "got %v", err)
			require.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestClient_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.Signup(context.Background(), "a@x.com", "secret-password")
	require.True(t, errors.Is(err, common.ErrUnavailable), "got %v", err)
}
