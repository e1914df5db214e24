// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpTodoAdapter {
	t.Helper()
	a, err := NewHTTPTodoAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpTodoAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPTodoAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPTodoAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func Test_normalizeBaseURL(t *testing.T) {
	tests := map[string]string{
		"localhost:8080":         "http://localhost:8080",
		":8080":                  "http://localhost:8080",
		"https://todo.example/":  "https://todo.example",
		"http://127.0.0.1:9000/": "http://127.0.0.1:9000",
	}
	for in, want := range tests {
		got, err := normalizeBaseURL(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/token", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "alice", Password: "secret1"}, creds)

		writeJSON(t, w, http.StatusOK, models.TokenResponse{AccessToken: "tok", TokenType: models.TokenType})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "tok", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "wrong username or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "nope"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "wrong username or password")
	assert.Empty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "login already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "secret1"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, models.User{UserID: 1, Login: "alice", IsActive: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

// ── todos ───────────────────────────────────────────────────────────────────

func TestTodoCalls_SendBearerToken(t *testing.T) {
	todo := models.Todo{ID: 7, Title: "buy milk", Description: "two litres", Priority: 3, OwnerID: 1}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/todos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.Todo{todo})
	})
	mux.HandleFunc("GET /api/todos/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, todo)
	})
	mux.HandleFunc("POST /api/todos", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "priority")
		assert.Contains(t, body, "complete")
		writeJSON(t, w, http.StatusCreated, todo)
	})
	mux.HandleFunc("PUT /api/todos/7", func(w http.ResponseWriter, r *http.Request) {
		var req models.TodoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Complete)
		assert.True(t, *req.Complete)
		done := todo
		done.Complete = true
		writeJSON(t, w, http.StatusOK, done)
	})
	mux.HandleFunc("DELETE /api/todos/7", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  tok ")
	ctx := context.Background()

	list, err := a.ListTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Todo{todo}, list)

	got, err := a.GetTodo(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, todo, got)

	created, err := a.CreateTodo(ctx, todo.Fields())
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)

	fields := todo.Fields()
	fields.Complete = true
	updated, err := a.UpdateTodo(ctx, 7, fields)
	require.NoError(t, err)
	assert.True(t, updated.Complete)

	require.NoError(t, a.DeleteTodo(ctx, 7))
}

func TestGetTodo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "todo not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetTodo(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateTodo_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadGateway, models.ErrorResponse{Error: "description enrichment failed"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateTodo(context.Background(), models.TodoFields{Title: "abc", Description: "abc", Priority: 1})
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestListTodos_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Todo{})
	}))
	defer srv.Close()

	list, err := newTestAdapter(t, srv.URL).ListTodos(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

func Test_mapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteTodo(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
