package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type httpTodoAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPTodoAdapter constructs an HTTP/REST implementation of [TodoAPIAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPTodoAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (TodoAPIAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpTodoAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if strings.HasPrefix(raw, ":") {
		raw = "localhost" + raw
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [TodoAPIAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpTodoAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpTodoAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [TodoAPIAdapter]. POST /api/auth/register.
func (h *httpTodoAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [TodoAPIAdapter]. POST /api/auth/token; the returned
// access token is stored for later requests.
func (h *httpTodoAdapter) Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&tokenResp).
		Post("/api/auth/token")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}
	if tokenResp.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("login: empty access token in response")
	}

	h.SetToken(tokenResp.AccessToken)
	return tokenResp, nil
}

func (h *httpTodoAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/api/user/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpTodoAdapter) ListTodos(ctx context.Context) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)

	resp, err := h.authedRequest(ctx).SetResult(&todos).Get("/api/todos")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return todos, nil
}

func (h *httpTodoAdapter) GetTodo(ctx context.Context, todoID int64) (models.Todo, error) {
	var todo models.Todo

	resp, err := h.authedRequest(ctx).SetResult(&todo).Get(todoPath(todoID))
	if err != nil {
		return models.Todo{}, fmt.Errorf("get todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (h *httpTodoAdapter) CreateTodo(ctx context.Context, fields models.TodoFields) (models.Todo, error) {
	var todo models.Todo

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewTodoRequest(fields)).
		SetResult(&todo).
		Post("/api/todos")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

// UpdateTodo implements [TodoAPIAdapter]. The API replaces every field, so
// fields must carry the complete new state.
func (h *httpTodoAdapter) UpdateTodo(ctx context.Context, todoID int64, fields models.TodoFields) (models.Todo, error) {
	var todo models.Todo

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewTodoRequest(fields)).
		SetResult(&todo).
		Put(todoPath(todoID))
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (h *httpTodoAdapter) DeleteTodo(ctx context.Context, todoID int64) error {
	resp, err := h.authedRequest(ctx).Delete(todoPath(todoID))
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpTodoAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpTodoAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func todoPath(todoID int64) string {
	return "/api/todos/" + strconv.FormatInt(todoID, 10)
}
