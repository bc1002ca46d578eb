package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/service"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	productService service.ProductService
	logger         *slog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProductHandler")
	}

	return &ProductHandler{
		productService: productService,
		logger:         logger.With(slog.String("component", "product_handler")),
	}
}

// CreateProduct handles POST /products requests
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	values, err := decodeValidated(w, r, domain.ProductSchema())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), productInputFromValues(values))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create product")
		return
	}

	log.Debug("product created via API", slog.String("product_id", product.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, productToResponse(product))
}

// ListProducts handles GET /products requests
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	products, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list products")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productsToResponse(products))
}

// GetProduct handles GET /products/{id} requests
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetProduct(r.Context(), pathID(r))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get product")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// UpdateProduct handles PUT /products/{id} requests
// An unknown id is reported as not found before the body is read, so a
// missing product always yields 404 regardless of the payload.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id := pathID(r)

	if _, err := h.productService.GetProduct(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to update product")
		return
	}

	values, err := decodeValidated(w, r, domain.ProductSchema())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, productInputFromValues(values))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update product")
		return
	}

	log.Debug("product updated via API", slog.String("product_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// DeleteProduct handles DELETE /products/{id} requests
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.productService.DeleteProduct(r.Context(), pathID(r)); err != nil {
		HandleAPIError(w, r, err, "Failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
