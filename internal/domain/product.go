package domain

import (
	"slices"
	"time"
)

// Category is the fixed set of product categories.
type Category string

// Product categories.
const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryFood        Category = "food"
	CategoryBooks       Category = "books"
	CategoryOther       Category = "other"
)

// Categories returns every valid category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryFood,
		CategoryBooks,
		CategoryOther,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	return slices.Contains(Categories(), c)
}

func categoryNames() []string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return names
}

// Product is a catalog entry. ID and CreatedAt are system-generated and never
// change after creation.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	InStock     bool      `json:"in_stock"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductInput carries the user-supplied product fields. Nil pointers mean the
// field was not supplied.
type ProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	InStock     *bool
	Tags        []string
}

// Values returns the supplied fields keyed by their schema names.
func (in ProductInput) Values() map[string]any {
	values := make(map[string]any, 6)
	if in.Name != nil {
		values["name"] = *in.Name
	}
	if in.Description != nil {
		values["description"] = *in.Description
	}
	if in.Price != nil {
		values["price"] = *in.Price
	}
	if in.Category != nil {
		values["category"] = *in.Category
	}
	if in.InStock != nil {
		values["in_stock"] = *in.InStock
	}
	if in.Tags != nil {
		values["tags"] = in.Tags
	}
	return values
}

// Validate checks the input against ProductSchema.
func (in ProductInput) Validate() error {
	return ProductSchema().Validate(in.Values()).Err()
}

// NewProduct validates in and builds a product with the given id. CreatedAt and
// UpdatedAt are both set to now; in_stock defaults to true and tags to empty.
func NewProduct(id string, in ProductInput, now time.Time) (*Product, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now = now.UTC()
	p := &Product{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.apply(in)
	return p, nil
}

// Replace overwrites every user-supplied field with in and refreshes UpdatedAt.
// The input must be complete; on validation failure p is left untouched.
// UpdatedAt never moves backwards, even if the clock does.
func (p *Product) Replace(in ProductInput, now time.Time) error {
	if err := in.Validate(); err != nil {
		return err
	}

	now = now.UTC()
	if now.Before(p.UpdatedAt) {
		now = p.UpdatedAt
	}
	p.apply(in)
	p.UpdatedAt = now
	return nil
}

// apply copies validated input onto p, filling defaults for omitted optional fields.
func (p *Product) apply(in ProductInput) {
	p.Name = *in.Name
	p.Description = *in.Description
	p.Price = *in.Price
	p.Category = Category(*in.Category)

	p.InStock = true
	if in.InStock != nil {
		p.InStock = *in.InStock
	}

	p.Tags = []string{}
	if in.Tags != nil {
		p.Tags = slices.Clone(in.Tags)
	}
}

// Clone returns a deep copy of p.
func (p Product) Clone() Product {
	c := p
	c.Tags = slices.Clone(p.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}

// ProductFilter narrows a product listing. Nil fields are ignored; all set
// fields must match.
type ProductFilter struct {
	Category *Category
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
}

// IsEmpty reports whether no filter field is set.
func (f ProductFilter) IsEmpty() bool {
	return f.Category == nil && f.MinPrice == nil && f.MaxPrice == nil && f.InStock == nil
}

// Values returns the set filter fields keyed by their query parameter names.
func (f ProductFilter) Values() map[string]any {
	values := make(map[string]any, 4)
	if f.Category != nil {
		values["category"] = string(*f.Category)
	}
	if f.MinPrice != nil {
		values["min_price"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		values["max_price"] = *f.MaxPrice
	}
	if f.InStock != nil {
		values["in_stock"] = *f.InStock
	}
	return values
}

// Validate checks the filter against ProductFilterSchema.
func (f ProductFilter) Validate() error {
	return ProductFilterSchema().Validate(f.Values()).Err()
}

// Matches reports whether p satisfies every set field of f.
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

// ProductSchema describes the user-supplied product fields. Create and Update
// both validate the full schema.
func ProductSchema() Schema {
	return Schema{
		Name:        "ProductInput",
		Description: "User-supplied product fields. Updates replace the whole record, so every required field must be present.",
		Fields: []FieldRule{
			{
				Name:        "name",
				Title:       "Name",
				Description: "Name of the product",
				Type:        TypeString,
				Required:    true,
				MinLength:   1,
				MaxLength:   100,
				Example:     "Wireless Headphones",
			},
			{
				Name:        "description",
				Title:       "Description",
				Description: "Detailed description of the product",
				Type:        TypeString,
				Required:    true,
				Example:     "Noise-cancelling wireless headphones with 20h battery life",
			},
			{
				Name:        "price",
				Title:       "Price",
				Description: "Price of the product in USD",
				Type:        TypeNumber,
				Required:    true,
				GreaterThan: float64Ptr(0),
				Example:     99.99,
			},
			{
				Name:        "category",
				Title:       "Category",
				Description: "Category the product belongs to",
				Type:        TypeString,
				Required:    true,
				Enum:        categoryNames(),
				Example:     string(CategoryElectronics),
			},
			{
				Name:        "in_stock",
				Title:       "In Stock",
				Description: "Whether the product is in stock",
				Type:        TypeBoolean,
				Default:     true,
				Example:     true,
			},
			{
				Name:        "tags",
				Title:       "Tags",
				Description: "Tags associated with the product",
				Type:        TypeArray,
				Default:     []string{},
				Example:     []string{"wireless", "audio", "bluetooth"},
			},
		},
		Example: map[string]any{
			"name":        "Wireless Headphones",
			"description": "Noise-cancelling wireless headphones with 20h battery life",
			"price":       99.99,
			"category":    string(CategoryElectronics),
			"in_stock":    true,
			"tags":        []string{"wireless", "audio", "bluetooth"},
		},
	}
}

// ProductFilterSchema describes the optional listing filters.
func ProductFilterSchema() Schema {
	return Schema{
		Name:        "ProductFilter",
		Description: "Optional product listing filters, combined with AND.",
		Fields: []FieldRule{
			{
				Name:        "category",
				Title:       "Filter by Category",
				Description: "Filter products by category",
				Type:        TypeString,
				Enum:        categoryNames(),
				Example:     string(CategoryElectronics),
			},
			{
				Name:        "min_price",
				Title:       "Minimum Price",
				Description: "Filter products with price greater than or equal to this value",
				Type:        TypeNumber,
				Minimum:     float64Ptr(0),
				Example:     50.0,
			},
			{
				Name:        "max_price",
				Title:       "Maximum Price",
				Description: "Filter products with price less than or equal to this value",
				Type:        TypeNumber,
				Minimum:     float64Ptr(0),
				Example:     200.0,
			},
			{
				Name:        "in_stock",
				Title:       "In Stock Only",
				Description: "Filter products by stock availability",
				Type:        TypeBoolean,
				Example:     true,
			},
		},
	}
}
