package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/catalog-api/internal/api"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	apiMiddleware "github.com/phrazzld/catalog-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// Unmatched routes get the same JSON error body as handler errors
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	productHandler := api.NewProductHandler(app.productService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	testingHandler := api.NewTestingHandler(app.config.API.Version)
	docsHandler, err := api.NewDocsHandler(app.descriptor)
	if err != nil {
		return nil, err
	}

	// Product catalog
	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Post("/", productHandler.CreateProduct)
		r.Get("/{id}", productHandler.GetProduct)
		r.Put("/{id}", productHandler.UpdateProduct)
		r.Delete("/{id}", productHandler.DeleteProduct)
	})

	r.Post("/tasks", taskHandler.CreateTask)

	// Test-support endpoints
	r.Get("/test/health", testingHandler.Health)
	r.Post("/test/echo", testingHandler.Echo)

	// API descriptor and documentation UI
	r.Get("/openapi.json", docsHandler.OpenAPIJSON)
	r.Get("/openapi.yaml", docsHandler.OpenAPIYAML)
	r.Get("/docs", docsHandler.Docs)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r, nil
}
