package store

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// TaskStore defines the interface for task data storage.
type TaskStore interface {
	// Create saves a new task.
	// Returns ErrDuplicate if a task with the same ID already exists.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns a NotFoundError if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int, error)
}
