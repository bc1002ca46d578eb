package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/store"
)

// ProductStore implements the store.ProductStore interface
// using an in-memory map as the storage backend.
type ProductStore struct {
	mu       sync.RWMutex
	products map[string]productEntry
	seq      uint64
	logger   *slog.Logger
}

// productEntry pairs a record with its insertion sequence number, which breaks
// created_at ties in listings.
type productEntry struct {
	product domain.Product
	seq     uint64
}

// NewProductStore creates an empty in-memory product store.
// If logger is nil, a default logger will be used.
func NewProductStore(logger *slog.Logger) *ProductStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &ProductStore{
		products: make(map[string]productEntry),
		logger:   logger.With(slog.String("component", "product_store")),
	}
}

// Ensure ProductStore implements store.ProductStore interface
var _ store.ProductStore = (*ProductStore)(nil)

// Create implements store.ProductStore.Create
func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if product == nil || product.ID == "" {
		return store.NewStoreError(
			store.EntityProduct, "create", "product must have an ID", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ID]; exists {
		return store.NewStoreError(
			store.EntityProduct, "create", "identifier "+product.ID+" already in use", store.ErrDuplicate)
	}
	s.seq++
	s.products[product.ID] = productEntry{product: product.Clone(), seq: s.seq}

	logger.FromContextOrDefault(ctx, s.logger).Debug("product stored",
		slog.String("product_id", product.ID))
	return nil
}

// GetByID implements store.ProductStore.GetByID
func (s *ProductStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.products[id]
	if !ok {
		return nil, store.NewNotFoundError(store.EntityProduct, id)
	}
	out := entry.product.Clone()
	return &out, nil
}

// List implements store.ProductStore.List
// The collection is copied under the read lock; filtering and sorting run on the copy.
func (s *ProductStore) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := s.snapshot()

	matched := make([]productEntry, 0, len(snapshot))
	for _, entry := range snapshot {
		if filter.Matches(entry.product) {
			matched = append(matched, entry)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.product.CreatedAt.Equal(b.product.CreatedAt) {
			return a.product.CreatedAt.Before(b.product.CreatedAt)
		}
		return a.seq < b.seq
	})

	out := make([]domain.Product, 0, len(matched))
	for _, entry := range matched {
		out = append(out, entry.product)
	}
	return out, nil
}

func (s *ProductStore) snapshot() []productEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]productEntry, 0, len(s.products))
	for _, entry := range s.products {
		entries = append(entries, productEntry{product: entry.product.Clone(), seq: entry.seq})
	}
	return entries
}

// Update implements store.ProductStore.Update
// The lookup, mutation and write happen under a single write lock.
func (s *ProductStore) Update(
	ctx context.Context,
	id string,
	mutate store.ProductMutator,
) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.products[id]
	if !ok {
		return nil, store.NewNotFoundError(store.EntityProduct, id)
	}

	working := current.product.Clone()
	if err := mutate(&working); err != nil {
		return nil, err
	}

	// Identity is fixed at creation.
	working.ID = current.product.ID
	working.CreatedAt = current.product.CreatedAt

	s.products[id] = productEntry{product: working.Clone(), seq: current.seq}

	logger.FromContextOrDefault(ctx, s.logger).Debug("product updated",
		slog.String("product_id", id))
	return &working, nil
}

// Delete implements store.ProductStore.Delete
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return store.NewNotFoundError(store.EntityProduct, id)
	}
	delete(s.products, id)

	logger.FromContextOrDefault(ctx, s.logger).Debug("product deleted",
		slog.String("product_id", id))
	return nil
}

// Count implements store.ProductStore.Count
func (s *ProductStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products), nil
}
