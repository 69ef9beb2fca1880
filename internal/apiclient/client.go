// Package apiclient is the gateway to the remote todo API. Every operation
// checks its preconditions before touching the network and maps failures to
// the apierr taxonomy.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/todor/internal/apierr"
	"github.com/idilsaglam/todor/internal/config"
	"github.com/idilsaglam/todor/internal/model"
)

// Client issues GET/POST/PATCH/DELETE calls against a fixed base URL.
type Client struct {
	baseURL        string
	deleteResource string
	httpc          *http.Client
	validate       *validator.Validate
	online         func() bool

	mu    sync.Mutex
	maxID int // highest todo id the server is known to accept
}

// Option tunes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithOnlineProbe installs a connectivity check run before every call.
func WithOnlineProbe(probe func() bool) Option {
	return func(c *Client) { c.online = probe }
}

// New builds a Client from config. The delete resource is taken from config
// rather than hardcoded because the consumed mock API deletes todos through
// a different path than it reads them.
func New(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(cfg.API.BaseURL, "/"),
		deleteResource: cfg.API.DeleteResource,
		httpc:          http.DefaultClient,
		validate:       validator.New(),
		maxID:          cfg.API.MaxTodoID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createRequest struct {
	UserID    int    `json:"userId" validate:"required,gt=0"`
	Title     string `json:"title" validate:"required"`
	Completed bool   `json:"completed"`
}

type patchRequest struct {
	Completed bool `json:"completed"`
}

// Users fetches the full user collection.
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Todos fetches the full todo collection.
func (c *Client) Todos(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// CreateTodo posts a new todo for userID. The server assigns the id; if it
// hands out one above the known ceiling, the ceiling is raised so the fresh
// todo stays mutable.
func (c *Client) CreateTodo(ctx context.Context, userID int, title string) (model.Todo, error) {
	req := createRequest{UserID: userID, Title: strings.TrimSpace(title)}
	if err := c.validate.Struct(req); err != nil {
		return model.Todo{}, apierr.Validation("a user and a non-empty title are required")
	}
	var todo model.Todo
	if err := c.do(ctx, http.MethodPost, "/todos", req, &todo); err != nil {
		return model.Todo{}, err
	}
	c.mu.Lock()
	if todo.ID > c.maxID {
		c.maxID = todo.ID
	}
	c.mu.Unlock()
	return todo, nil
}

// SetCompleted patches a todo's completed flag and returns the server's view
// of the updated todo.
func (c *Client) SetCompleted(ctx context.Context, id int, completed bool) (model.Todo, error) {
	if err := c.checkID(id); err != nil {
		return model.Todo{}, err
	}
	var todo model.Todo
	path := fmt.Sprintf("/todos/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, patchRequest{Completed: completed}, &todo); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

// DeleteTodo removes a todo through the configured delete resource path.
func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	if err := c.checkID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/%s/%d", c.deleteResource, id), nil, nil)
}

func (c *Client) checkID(id int) error {
	c.mu.Lock()
	max := c.maxID
	c.mu.Unlock()
	if id < 1 || id > max {
		return apierr.InvalidID(id, max)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.online != nil && !c.online() {
		return apierr.Network(nil)
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	log.Debug().Str("method", method).Str("path", path).Msg("api request")
	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("api transport failure")
		return apierr.Network(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		log.Error().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("api error response")
		return apierr.HTTP(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response body")
	}
	return nil
}
