package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/memory"
	"github.com/phrazzld/catalog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)

func newProduct(t *testing.T, id, category string, price float64, inStock bool, offset time.Duration) *domain.Product {
	t.Helper()
	name, desc := "Product "+id, "description"
	p, err := domain.NewProduct(id, domain.ProductInput{
		Name:        &name,
		Description: &desc,
		Price:       &price,
		Category:    &category,
		InStock:     &inStock,
		Tags:        []string{"tag"},
	}, baseTime.Add(offset))
	require.NoError(t, err)
	return p
}

func seededStore(t *testing.T) *memory.ProductStore {
	t.Helper()
	s := memory.NewProductStore(nil)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, newProduct(t, "c", "electronics", 99.99, true, 2*time.Second)))
	require.NoError(t, s.Create(ctx, newProduct(t, "a", "electronics", 250, true, time.Second)))
	require.NoError(t, s.Create(ctx, newProduct(t, "b", "clothing", 19.99, true, time.Second)))
	require.NoError(t, s.Create(ctx, newProduct(t, "d", "food", 24.99, false, 0)))
	return s
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestProductStore_CreateAndGet(t *testing.T) {
	t.Parallel()
	s := memory.NewProductStore(nil)
	ctx := context.Background()
	p := newProduct(t, "p1", "books", 9.99, true, 0)

	require.NoError(t, s.Create(ctx, p))

	got, err := s.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, *p, *got)

	// Mutating the caller's copies must not reach the store.
	p.Tags[0] = "changed"
	got.Name = "changed"
	again, err := s.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "tag", again.Tags[0])
	assert.Equal(t, "Product p1", again.Name)
}

func TestProductStore_CreateRejectsDuplicateID(t *testing.T) {
	t.Parallel()
	s := memory.NewProductStore(nil)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, newProduct(t, "p1", "books", 1, true, 0)))

	err := s.Create(ctx, newProduct(t, "p1", "food", 2, true, 0))
	assert.True(t, store.IsDuplicateError(err), "expected duplicate error, got %v", err)

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, store.EntityProduct, storeErr.Entity)
	assert.Equal(t, "create", storeErr.Operation)
	assert.Contains(t, storeErr.Message, "p1")

	got, err := s.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryBooks, got.Category, "original record must survive")
}

func TestProductStore_CreateRejectsMissingID(t *testing.T) {
	t.Parallel()
	s := memory.NewProductStore(nil)

	err := s.Create(context.Background(), &domain.Product{})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, s.Create(context.Background(), nil), store.ErrInvalidEntity)
}

func TestProductStore_GetUnknown(t *testing.T) {
	t.Parallel()
	s := memory.NewProductStore(nil)

	_, err := s.GetByID(context.Background(), "missing")

	var nf *store.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.ID)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductStore_List(t *testing.T) {
	t.Parallel()
	s := seededStore(t)
	ctx := context.Background()
	electronics := domain.CategoryElectronics
	inStock := false
	minPrice, maxPrice := 50.0, 200.0

	tests := []struct {
		name   string
		filter domain.ProductFilter
		want   []string
	}{
		{"no filter returns everything ordered by creation", domain.ProductFilter{}, []string{"d", "a", "b", "c"}},
		{"category", domain.ProductFilter{Category: &electronics}, []string{"a", "c"}},
		{"stock", domain.ProductFilter{InStock: &inStock}, []string{"d"}},
		{
			"combined predicates",
			domain.ProductFilter{Category: &electronics, MinPrice: &minPrice, MaxPrice: &maxPrice},
			[]string{"c"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.List(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
		})
	}

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestProductStore_ListEmptyIsNonNil(t *testing.T) {
	t.Parallel()
	got, err := memory.NewProductStore(nil).List(context.Background(), domain.ProductFilter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProductStore_ListKeepsInsertionOrderForEqualTimestamps(t *testing.T) {
	t.Parallel()
	s := memory.NewProductStore(nil)
	ctx := context.Background()

	ids := []string{"zeta", "alpha", "mid"}
	for _, id := range ids {
		require.NoError(t, s.Create(ctx, newProduct(t, id, "books", 1, true, 0)))
	}

	_, err := s.Update(ctx, "zeta", func(p *domain.Product) error {
		p.Name = "renamed"
		return nil
	})
	require.NoError(t, err)

	got, err := s.List(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, got, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, got[i].ID, "position %d", i)
	}
}

func TestProductStore_Update(t *testing.T) {
	t.Parallel()
	s := seededStore(t)
	ctx := context.Background()

	updated, err := s.Update(ctx, "a", func(p *domain.Product) error {
		p.Name = "Renamed"
		p.ID = "hijacked"
		p.CreatedAt = time.Time{}
		p.UpdatedAt = baseTime.Add(time.Hour)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "a", updated.ID, "ID must be preserved")
	assert.Equal(t, baseTime.Add(time.Second), updated.CreatedAt, "created_at must be preserved")
	assert.Equal(t, "Renamed", updated.Name)

	got, err := s.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	_, err = s.GetByID(ctx, "hijacked")
	assert.True(t, store.IsNotFoundError(err))
}

func TestProductStore_UpdateAbortsOnMutatorError(t *testing.T) {
	t.Parallel()
	s := seededStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := s.Update(ctx, "a", func(p *domain.Product) error {
		p.Name = "partial"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Product a", got.Name, "failed update must leave the record untouched")
}

func TestProductStore_UpdateUnknownSkipsMutator(t *testing.T) {
	t.Parallel()
	s := memory.NewProductStore(nil)
	called := false

	_, err := s.Update(context.Background(), "missing", func(*domain.Product) error {
		called = true
		return nil
	})

	assert.True(t, store.IsNotFoundError(err))
	assert.False(t, called)
}

func TestProductStore_Delete(t *testing.T) {
	t.Parallel()
	s := seededStore(t)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, "b"))

	_, err := s.GetByID(ctx, "b")
	assert.True(t, store.IsNotFoundError(err))
	assert.True(t, store.IsNotFoundError(s.Delete(ctx, "b")), "second delete must report not found")
}

func TestProductStore_CancelledContext(t *testing.T) {
	t.Parallel()
	s := seededStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetByID(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.List(ctx, domain.ProductFilter{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Delete(ctx, "a"), context.Canceled)
}

func TestProductStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	s := memory.NewProductStore(nil)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("p%02d", i)
			assert.NoError(t, s.Create(ctx, newProduct(t, id, "other", 1, true, 0)))
			_, err := s.Update(ctx, id, func(p *domain.Product) error {
				p.Price = 2
				return nil
			})
			assert.NoError(t, err)
			_, err = s.List(ctx, domain.ProductFilter{})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := s.List(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, writers)
	for _, p := range all {
		assert.Equal(t, 2.0, p.Price)
	}
}
