package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/phrazzld/catalog-api/internal/api/openapi"
	"github.com/phrazzld/catalog-api/internal/config"
	"github.com/phrazzld/catalog-api/internal/events"
	"github.com/phrazzld/catalog-api/internal/platform/memory"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/phrazzld/catalog-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores
	productStore store.ProductStore
	taskStore    store.TaskStore

	// Services
	productService service.ProductService
	taskService    service.TaskService

	eventEmitter events.EventEmitter

	// API descriptor, built and validated once at startup
	descriptor *openapi3.T
}

// newApplication creates a new application instance with all dependencies initialized.
// The collections start empty unless seeding is enabled.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	memoryProducts := memory.NewProductStore(logger)
	memoryTasks := memory.NewTaskStore(logger)
	app.productStore = memoryProducts
	app.taskStore = memoryTasks

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLoggingHandler(logger))
	app.eventEmitter = emitter

	var err error
	app.productService, err = service.NewProductService(app.productStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}

	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.descriptor, err = openapi.Build(ctx, openapi.Info{
		Title:   cfg.API.Title,
		Version: cfg.API.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build API descriptor: %w", err)
	}

	if cfg.Seed.Enabled {
		if err := seedExampleData(ctx, app.productService, app.taskService); err != nil {
			return nil, fmt.Errorf("failed to seed example data: %w", err)
		}
		products, _ := memoryProducts.Count(ctx)
		tasks, _ := memoryTasks.Count(ctx)
		logger.Info("Example data seeded", "products", products, "tasks", tasks)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
