package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/events"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/store"
)

// ProductService provides product catalog operations
type ProductService interface {
	// CreateProduct validates input, assigns an ID and timestamps, and stores the product
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error)

	// GetProduct retrieves a product by its ID
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// ListProducts returns every product matching all set fields of filter
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)

	// UpdateProduct replaces every user-supplied field of an existing product
	UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error)

	// DeleteProduct removes a product by its ID
	DeleteProduct(ctx context.Context, id string) error
}

// productServiceImpl implements the ProductService interface
type productServiceImpl struct {
	products store.ProductStore
	emitter  events.EventEmitter
	logger   *slog.Logger
	newID    func() string
	now      func() time.Time
}

// NewProductService creates a new ProductService.
// It returns an error if the store is nil. A nil emitter disables change events.
func NewProductService(
	products store.ProductStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
	opts ...Option,
) (ProductService, error) {
	if products == nil {
		return nil, NewServiceError("new_product_service", "products cannot be nil", nil)
	}

	if logger == nil {
		logger = slog.Default()
	}

	o := applyOptions(opts)
	return &productServiceImpl{
		products: products,
		emitter:  emitter,
		logger:   logger.With(slog.String("component", "product_service")),
		newID:    o.newID,
		now:      o.now,
	}, nil
}

// CreateProduct implements ProductService.CreateProduct
func (s *productServiceImpl) CreateProduct(
	ctx context.Context,
	input domain.ProductInput,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := domain.NewProduct(s.newID(), input, s.now())
	if err != nil {
		log.Debug("product input rejected",
			slog.String("error", err.Error()),
			slog.Any("fields", rejectedFields(err)))
		return nil, err
	}

	if err := s.products.Create(ctx, product); err != nil {
		if store.IsDuplicateError(err) {
			log.Error("product identifier collision",
				slog.String("error", err.Error()),
				slog.String("product_id", product.ID))
			return nil, NewServiceError("create_product", "product identifier already in use", err)
		}
		log.Error("failed to save product",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID))
		return nil, NewServiceError("create_product", "failed to save product", err)
	}

	log.Info("product created",
		slog.String("product_id", product.ID),
		slog.String("category", string(product.Category)))
	emitChange(ctx, s.emitter, log, events.ProductCreated, store.EntityProduct, product.ID, product)

	return product, nil
}

// GetProduct implements ProductService.GetProduct
func (s *productServiceImpl) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("product not found", slog.String("product_id", id))
			return nil, NewServiceError("get_product", "product not found", err)
		}
		log.Error("failed to retrieve product",
			slog.String("error", err.Error()),
			slog.String("product_id", id))
		return nil, NewServiceError("get_product", "failed to retrieve product", err)
	}

	return product, nil
}

// ListProducts implements ProductService.ListProducts
func (s *productServiceImpl) ListProducts(
	ctx context.Context,
	filter domain.ProductFilter,
) ([]domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := filter.Validate(); err != nil {
		log.Debug("product filter rejected",
			slog.String("error", err.Error()),
			slog.Any("fields", rejectedFields(err)))
		return nil, err
	}

	products, err := s.products.List(ctx, filter)
	if err != nil {
		log.Error("failed to list products", slog.String("error", err.Error()))
		return nil, NewServiceError("list_products", "failed to list products", err)
	}

	log.Debug("listed products",
		slog.Int("count", len(products)),
		slog.Bool("filtered", !filter.IsEmpty()))
	return products, nil
}

// UpdateProduct implements ProductService.UpdateProduct
// Existence is checked before the input is validated, and the whole
// read-validate-write sequence runs inside the store's critical section.
func (s *productServiceImpl) UpdateProduct(
	ctx context.Context,
	id string,
	input domain.ProductInput,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := s.products.Update(ctx, id, func(current *domain.Product) error {
		return current.Replace(input, s.now())
	})
	if err != nil {
		switch {
		case domainValidation(err):
			log.Debug("product update rejected",
				slog.String("product_id", id),
				slog.String("error", err.Error()),
				slog.Any("fields", rejectedFields(err)))
			return nil, err
		case store.IsNotFoundError(err):
			log.Debug("product not found", slog.String("product_id", id))
			return nil, NewServiceError("update_product", "product not found", err)
		default:
			log.Error("failed to update product",
				slog.String("error", err.Error()),
				slog.String("product_id", id))
			return nil, NewServiceError("update_product", "failed to update product", err)
		}
	}

	log.Info("product updated", slog.String("product_id", id))
	emitChange(ctx, s.emitter, log, events.ProductUpdated, store.EntityProduct, id, product)

	return product, nil
}

// DeleteProduct implements ProductService.DeleteProduct
func (s *productServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.products.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("product not found", slog.String("product_id", id))
			return NewServiceError("delete_product", "product not found", err)
		}
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.String("product_id", id))
		return NewServiceError("delete_product", "failed to delete product", err)
	}

	log.Info("product deleted", slog.String("product_id", id))
	emitChange(ctx, s.emitter, log, events.ProductDeleted, store.EntityProduct, id, nil)

	return nil
}
