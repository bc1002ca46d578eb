package store

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// ProductMutator transforms the current state of a product inside the store's
// critical section. Returning an error aborts the update and leaves the stored
// record untouched.
type ProductMutator func(current *domain.Product) error

// ProductStore defines the interface for product data storage.
// Implementations must be safe for concurrent use: every mutation is a critical
// section over the whole collection.
type ProductStore interface {
	// Create saves a new product.
	// Returns ErrDuplicate if a product with the same ID already exists.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its unique ID.
	// Returns a NotFoundError if the product does not exist.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// List returns every product matching filter, taken from a single snapshot
	// of the collection and ordered by creation time, then ID.
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)

	// Update applies mutate to the stored product and saves the result.
	// Returns a NotFoundError if the product does not exist, in which case
	// mutate is never called. The ID and creation time cannot be changed.
	Update(ctx context.Context, id string, mutate ProductMutator) (*domain.Product, error)

	// Delete removes a product by its ID.
	// Returns a NotFoundError if the product does not exist.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored products.
	Count(ctx context.Context) (int, error)
}
