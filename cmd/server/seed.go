package main

import (
	"context"
	"fmt"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/service"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

// exampleProducts are created at startup when seeding is enabled.
func exampleProducts() []domain.ProductInput {
	return []domain.ProductInput{
		{
			Name:        strPtr("Wireless Headphones"),
			Description: strPtr("Noise-cancelling wireless headphones with 20h battery life"),
			Price:       floatPtr(99.99),
			Category:    strPtr(string(domain.CategoryElectronics)),
			InStock:     boolPtr(true),
			Tags:        []string{"wireless", "audio", "bluetooth"},
		},
		{
			Name:        strPtr("Cotton T-Shirt"),
			Description: strPtr("Comfortable 100% cotton t-shirt, available in multiple colors"),
			Price:       floatPtr(19.99),
			Category:    strPtr(string(domain.CategoryClothing)),
			InStock:     boolPtr(true),
			Tags:        []string{"cotton", "casual", "summer"},
		},
		{
			Name:        strPtr("Organic Protein Bars"),
			Description: strPtr("Healthy protein bars made with organic ingredients"),
			Price:       floatPtr(24.99),
			Category:    strPtr(string(domain.CategoryFood)),
			InStock:     boolPtr(false),
			Tags:        []string{"organic", "protein", "healthy"},
		},
	}
}

func exampleTasks() []domain.TaskInput {
	return []domain.TaskInput{
		{
			Title:       strPtr("Sample Task"),
			Description: strPtr("This is an example task"),
		},
		{
			Title:       strPtr("Another Task"),
			Description: strPtr("This is another example task"),
		},
	}
}

// seedExampleData creates the example records through the normal service
// paths, so they are validated and audited like any other write.
func seedExampleData(ctx context.Context, products service.ProductService, tasks service.TaskService) error {
	for _, in := range exampleProducts() {
		if _, err := products.CreateProduct(ctx, in); err != nil {
			return fmt.Errorf("failed to create example product %q: %w", *in.Name, err)
		}
	}
	for _, in := range exampleTasks() {
		if _, err := tasks.CreateTask(ctx, in); err != nil {
			return fmt.Errorf("failed to create example task %q: %w", *in.Title, err)
		}
	}
	return nil
}
