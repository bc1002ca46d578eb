package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/catalog-api/internal/api"
	apiMiddleware "github.com/phrazzld/catalog-api/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPServer(t *testing.T, seed bool) *httptest.Server {
	t.Helper()
	app, _ := newTestApplication(t, seed)
	router, err := app.setupRouter()
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func send(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestRouterHealthEndpoints(t *testing.T) {
	t.Parallel()
	srv := newTestHTTPServer(t, false)

	resp, body := send(t, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	resp, body = send(t, http.MethodGet, srv.URL+"/test/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health api.HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "1.0.0", health.Version)
	assert.False(t, health.Timestamp.IsZero())

	resp, body = send(t, http.MethodPost, srv.URL+"/test/echo", `{"ping":"pong"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ping":"pong"}`, string(body))
}

func TestRouterProductRoundTrip(t *testing.T) {
	t.Parallel()
	srv := newTestHTTPServer(t, true)

	resp, body := send(t, http.MethodGet, srv.URL+"/products?category=electronics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var seeded []api.ProductResponse
	require.NoError(t, json.Unmarshal(body, &seeded))
	require.Len(t, seeded, 1)
	assert.Equal(t, "Wireless Headphones", seeded[0].Name)

	resp, body = send(t, http.MethodPost, srv.URL+"/products",
		`{"name":"Widget","description":"d","price":9.99,"category":"books"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.NotEmpty(t, resp.Header.Get(apiMiddleware.TraceIDHeader))
	var created api.ProductResponse
	require.NoError(t, json.Unmarshal(body, &created))

	resp, _ = send(t, http.MethodPut, srv.URL+"/products/"+created.ID,
		`{"name":"Widget","description":"d","price":12.5,"category":"books"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = send(t, http.MethodDelete, srv.URL+"/products/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)

	resp, body = send(t, http.MethodGet, srv.URL+"/products/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"error":"Product not found"`)
}

func TestRouterServesDescriptor(t *testing.T) {
	t.Parallel()
	srv := newTestHTTPServer(t, false)

	for path, contentType := range map[string]string{
		"/openapi.json": "application/json",
		"/openapi.yaml": "application/yaml",
		"/docs":         "text/html; charset=utf-8",
	} {
		resp, body := send(t, http.MethodGet, srv.URL+path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, contentType, resp.Header.Get("Content-Type"), path)
		assert.NotEmpty(t, body, path)
	}
}

func TestRouterUnknownRoutes(t *testing.T) {
	t.Parallel()
	srv := newTestHTTPServer(t, false)

	resp, body := send(t, http.MethodGet, srv.URL+"/unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), `"error":"Not found"`)
	assert.Contains(t, string(body), `"trace_id":"`)

	resp, body = send(t, http.MethodPatch, srv.URL+"/products", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Contains(t, string(body), `"error":"Method not allowed"`)

	resp, body = send(t, http.MethodPatch, srv.URL+"/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Contains(t, string(body), `"code":405`)
}
