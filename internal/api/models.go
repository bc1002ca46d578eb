package api

import (
	"time"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// ProductResponse is the wire form of a product.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	InStock     bool      `json:"in_stock"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskResponse is the wire form of a task. Description is null when absent.
type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// HealthResponse is returned by the test health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func productToResponse(p *domain.Product) ProductResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    string(p.Category),
		InStock:     p.InStock,
		Tags:        tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func productsToResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, productToResponse(&products[i]))
	}
	return out
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
	}
}

// productInputFromValues builds a ProductInput from values that already passed
// domain.ProductSchema, so every present member has the expected type.
func productInputFromValues(values map[string]interface{}) domain.ProductInput {
	var in domain.ProductInput
	if v, ok := values["name"].(string); ok {
		in.Name = &v
	}
	if v, ok := values["description"].(string); ok {
		in.Description = &v
	}
	if v, ok := values["price"].(float64); ok {
		in.Price = &v
	}
	if v, ok := values["category"].(string); ok {
		in.Category = &v
	}
	if v, ok := values["in_stock"].(bool); ok {
		in.InStock = &v
	}
	if v, ok := values["tags"].([]string); ok {
		in.Tags = v
	}
	return in
}

// taskInputFromValues builds a TaskInput from values that already passed
// domain.TaskSchema.
func taskInputFromValues(values map[string]interface{}) domain.TaskInput {
	var in domain.TaskInput
	if v, ok := values["title"].(string); ok {
		in.Title = &v
	}
	if v, ok := values["description"].(string); ok {
		in.Description = &v
	}
	return in
}
