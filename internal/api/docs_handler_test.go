package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDocsHandlerServesDescriptor(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	doc, err := openapi3.NewLoader().LoadFromData(rec.Body.Bytes())
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	assert.Equal(t, "Product API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/products/{id}")

	rec = srv.do(t, http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	var raw map[string]interface{}
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "3.0.3", raw["openapi"])
}

func TestDocsHandlerServesUI(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<title>Product API</title>")
	assert.Contains(t, rec.Body.String(), "swagger-ui-bundle.js")
	assert.Contains(t, rec.Body.String(), "/openapi.json")
}

func TestNewDocsHandlerRequiresDocument(t *testing.T) {
	t.Parallel()
	_, err := NewDocsHandler(nil)
	assert.Error(t, err)
}
