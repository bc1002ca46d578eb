package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/api/middleware"
	"github.com/phrazzld/catalog-api/internal/api/openapi"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/events"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/platform/memory"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

// steppingClock returns a clock that advances by one second on every call.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(time.Second)
		return now
	}
}

type testServer struct {
	router http.Handler
	logs   *logger.TestLogBuffer
}

// newTestServer wires the handlers to real in-memory stores and services.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log, buf := logger.GetTestLogger(t)

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(events.NewLoggingHandler(log))

	productService, err := service.NewProductService(
		memory.NewProductStore(log), emitter, log,
		service.WithClock(steppingClock(testStart)),
	)
	require.NoError(t, err)
	taskService, err := service.NewTaskService(memory.NewTaskStore(log), emitter, log)
	require.NoError(t, err)

	return &testServer{
		router: newTestRouter(t, log, productService, taskService),
		logs:   buf,
	}
}

func newTestRouter(
	t *testing.T,
	log *slog.Logger,
	productService service.ProductService,
	taskService service.TaskService,
) http.Handler {
	t.Helper()

	doc, err := openapi.Build(context.Background(), openapi.Info{Title: "Product API", Version: "1.0.0"})
	require.NoError(t, err)
	docs, err := NewDocsHandler(doc)
	require.NoError(t, err)

	products := NewProductHandler(productService, log)
	tasks := NewTaskHandler(taskService, log)
	probe := NewTestingHandler("1.0.0")

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(log))
	r.Route("/products", func(r chi.Router) {
		r.Get("/", products.ListProducts)
		r.Post("/", products.CreateProduct)
		r.Get("/{id}", products.GetProduct)
		r.Put("/{id}", products.UpdateProduct)
		r.Delete("/{id}", products.DeleteProduct)
	})
	r.Post("/tasks", tasks.CreateTask)
	r.Get("/test/health", probe.Health)
	r.Post("/test/echo", probe.Echo)
	r.Get("/openapi.json", docs.OpenAPIJSON)
	r.Get("/openapi.yaml", docs.OpenAPIYAML)
	r.Get("/docs", docs.Docs)
	return r
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	return decodeJSON[shared.ErrorResponse](t, rec)
}

// violationFields lists the fields named by an error response's violations.
func violationFields(resp shared.ErrorResponse) []string {
	fields := make([]string, 0, len(resp.Violations))
	for _, v := range resp.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func (s *testServer) createProduct(t *testing.T, body string) ProductResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/products", body)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	return decodeJSON[ProductResponse](t, rec)
}
