// Package api is the HTTP client for the task service. It wraps the
// JSON endpoints and translates API failures into sentinel errors the
// CLI can branch on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taskvault/taskvault/internal/client/models"
	"github.com/taskvault/taskvault/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string `json:"token"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResult struct {
	Valid   bool   `json:"valid"`
	Subject string `json:"subject"`
}

type taskList struct {
	Tasks []models.Task `json:"tasks"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.asError(resp)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// asError turns a non-2xx response into a sentinel-wrapped error carrying
// the server's message.
func (c *Client) asError(resp *http.Response) error {
	var e apiError
	_ = json.NewDecoder(resp.Body).Decode(&e)
	if e.Error == "" {
		e.Error = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrInvalidToken, e.Error)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, e.Error)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrValidation, e.Error)
	default:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, e.Error)
	}
}

func (c *Client) Signup(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", "", credentials{Email: email, Password: password}, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var res loginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", credentials{Email: email, Password: password}, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

// Verify checks the token with the server and returns the account email
// it was issued for.
func (c *Client) Verify(ctx context.Context, token string) (string, error) {
	var res verifyResult
	if err := c.do(ctx, http.MethodPost, "/auth/verify", "", verifyRequest{Token: token}, &res); err != nil {
		return "", err
	}
	return res.Subject, nil
}

func (c *Client) ListTasks(ctx context.Context, token string) ([]models.Task, error) {
	var res taskList
	if err := c.do(ctx, http.MethodGet, "/tasks", token, nil, &res); err != nil {
		return nil, err
	}
	return res.Tasks, nil
}

func (c *Client) AddTask(ctx context.Context, token, title string) (*models.Task, error) {
	var task models.Task
	in := struct {
		Title string `json:"title"`
	}{Title: title}
	if err := c.do(ctx, http.MethodPost, "/tasks", token, in, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) SetTaskCompleted(ctx context.Context, token, id string, completed bool) error {
	in := struct {
		Completed bool `json:"completed"`
	}{Completed: completed}
	return c.do(ctx, http.MethodPatch, "/tasks/"+id, token, in, nil)
}

func (c *Client) DeleteTask(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, token, nil, nil)
}
