package api

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/phrazzld/catalog-api/internal/api/openapi"
)

var docsPage = template.Must(template.New("docs").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '{{.SpecURL}}',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`))

// DocsHandler serves the API descriptor and the interactive documentation UI.
// Everything is rendered once at construction.
type DocsHandler struct {
	json []byte
	yaml []byte
	page []byte
}

// NewDocsHandler renders doc for serving.
func NewDocsHandler(doc *openapi3.T) (*DocsHandler, error) {
	if doc == nil || doc.Info == nil {
		return nil, fmt.Errorf("descriptor cannot be nil")
	}

	jsonData, err := openapi.JSON(doc)
	if err != nil {
		return nil, err
	}
	yamlData, err := openapi.YAML(doc)
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer
	err = docsPage.Execute(&page, struct{ Title, SpecURL string }{
		Title:   doc.Info.Title,
		SpecURL: "/openapi.json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render documentation page: %w", err)
	}

	return &DocsHandler{json: jsonData, yaml: yamlData, page: page.Bytes()}, nil
}

// OpenAPIJSON handles GET /openapi.json requests
func (h *DocsHandler) OpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(h.json)
}

// OpenAPIYAML handles GET /openapi.yaml requests
func (h *DocsHandler) OpenAPIYAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(h.yaml)
}

// Docs handles GET /docs requests
func (h *DocsHandler) Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.page)
}
