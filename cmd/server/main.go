// Package main implements the entry point for the catalog API server, which
// serves the product and task endpoints together with their machine-readable
// API descriptor.
package main

import (
	"context"
	"fmt"
	"log"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// run loads configuration, sets up logging, builds the application and
// serves until a shutdown signal arrives.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
