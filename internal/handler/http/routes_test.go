package http

import (
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoutes_Healthz(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/healthz", "", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestRoutes_ProtectedRoutesRequireToken(t *testing.T) {
	srv, _ := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user/me"},
		{http.MethodPut, "/api/user/password"},
		{http.MethodGet, "/api/todos"},
		{http.MethodPost, "/api/todos"},
		{http.MethodGet, "/api/todos/1"},
		{http.MethodPut, "/api/todos/1"},
		{http.MethodDelete, "/api/todos/1"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			resp := doRequest(t, srv, rt.method, rt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestRoutes_UnknownMethodIsNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPatch, "/api/version", "", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestRoutes_TraceIDIsEchoed(t *testing.T) {
	srv, mocks := newTestServer(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/version", nil)
	require.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-123")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-123", resp.Header.Get(traceIDHeader))
}

func TestRoutes_CORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/todos", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://todo.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRoutes_TodoFlowThroughRouter(t *testing.T) {
	srv, mocks := newTestServer(t)

	identity := models.Identity{UserID: 1, Username: "alice"}
	mocks.auth.EXPECT().Verify(gomock.Any(), "good-token").Return(identity, nil).AnyTimes()
	mocks.todo.EXPECT().List(gomock.Any()).Return([]models.Todo{{ID: 3, Title: "Buy milk", OwnerID: 1}}, nil)

	resp := doRequest(t, srv, http.MethodGet, "/api/todos", "good-token", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	todos := decodeBody[[]models.Todo](t, resp)
	require.Len(t, todos, 1)
	assert.Equal(t, int64(3), todos[0].ID)
}
