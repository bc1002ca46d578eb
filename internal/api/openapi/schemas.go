package openapi

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/phrazzld/catalog-api/internal/domain"
)

// Example values shared by schemas and operations.
const (
	exampleProductID = "f7cfc49d-824b-4728-a4c4-45e5901e3d42"
	exampleTaskID    = "3fa85f64-5717-4562-b3fc-2c963f66afa6"
	exampleTimestamp = "2023-01-15T14:30:00Z"
	exampleTraceID   = "4bf92f3577b34da6a3ce929d0e0e4736"
)

// jsonValue converts v to the generic form produced by decoding JSON
// (float64, string, bool, []interface{}, map[string]interface{}), which is
// what the descriptor validator expects for examples and defaults.
func jsonValue(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}

func ref(s *openapi3.Schema) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: s}
}

// fieldSchema renders one field rule as a property schema.
func fieldSchema(f domain.FieldRule) *openapi3.Schema {
	s := &openapi3.Schema{
		Title:       f.Title,
		Description: f.Description,
		Default:     jsonValue(f.Default),
		Example:     jsonValue(f.Example),
	}

	switch f.Type {
	case domain.TypeString:
		s.Type = openapi3.TypeString
		if f.MinLength > 0 {
			s.MinLength = uint64(f.MinLength)
		}
		if f.MaxLength > 0 {
			max := uint64(f.MaxLength)
			s.MaxLength = &max
		}
		for _, e := range f.Enum {
			s.Enum = append(s.Enum, e)
		}
	case domain.TypeNumber:
		s.Type = openapi3.TypeNumber
		// 3.0 form: exclusiveMinimum is a flag qualifying minimum.
		if f.GreaterThan != nil {
			min := *f.GreaterThan
			s.Min = &min
			s.ExclusiveMin = true
		}
		if f.Minimum != nil {
			min := *f.Minimum
			s.Min = &min
		}
	case domain.TypeBoolean:
		s.Type = openapi3.TypeBoolean
	case domain.TypeArray:
		s.Type = openapi3.TypeArray
		s.Items = ref(&openapi3.Schema{Type: openapi3.TypeString})
	}

	return s
}

// inputSchema renders a domain schema as an object schema.
func inputSchema(ds domain.Schema) *openapi3.Schema {
	s := &openapi3.Schema{
		Type:        openapi3.TypeObject,
		Title:       ds.Name,
		Description: ds.Description,
		Properties:  make(openapi3.Schemas, len(ds.Fields)),
		Required:    ds.RequiredFields(),
	}
	for _, f := range ds.Fields {
		s.Properties[f.Name] = ref(fieldSchema(f))
	}
	if ds.Example != nil {
		s.Example = jsonValue(ds.Example)
	}
	return s
}

func idSchema(description, example string) *openapi3.Schema {
	return &openapi3.Schema{
		Type:        openapi3.TypeString,
		Format:      "uuid",
		Description: description,
		Example:     example,
	}
}

func timestampSchema(description string) *openapi3.Schema {
	return &openapi3.Schema{
		Type:        openapi3.TypeString,
		Format:      "date-time",
		Description: description,
		Example:     exampleTimestamp,
	}
}

// productSchema describes a stored product: the input fields plus the
// system-generated ones. Every property is always present on the wire.
func productSchema() *openapi3.Schema {
	s := inputSchema(domain.ProductSchema())
	s.Title = "Product"
	s.Description = "A catalog product including system-generated fields."
	s.Properties["id"] = ref(idSchema("Unique identifier for the product", exampleProductID))
	s.Properties["created_at"] = ref(timestampSchema("Date and time when the product was created"))
	s.Properties["updated_at"] = ref(timestampSchema("Date and time when the product was last updated"))
	s.Required = []string{
		"id", "name", "description", "price", "category",
		"in_stock", "tags", "created_at", "updated_at",
	}
	s.Example = exampleProduct()
	return s
}

// taskSchema describes a stored task. Description is null when absent.
func taskSchema() *openapi3.Schema {
	s := inputSchema(domain.TaskSchema())
	s.Title = "Task"
	s.Description = "A task including its system-generated identifier."
	s.Properties["id"] = ref(idSchema("Unique identifier for the task", exampleTaskID))
	s.Properties["description"].Value.Nullable = true
	s.Required = []string{"id", "title", "description"}
	s.Example = exampleTask()
	return s
}

func errorSchema() *openapi3.Schema {
	violation := &openapi3.Schema{
		Type:     openapi3.TypeObject,
		Required: []string{"field", "kind", "message"},
		Properties: openapi3.Schemas{
			"field": ref(&openapi3.Schema{
				Type:        openapi3.TypeString,
				Description: "Name of the offending field or query parameter",
			}),
			"kind": ref(&openapi3.Schema{
				Type:        openapi3.TypeString,
				Description: "Violated constraint",
				Enum: []interface{}{
					string(domain.KindRequired),
					string(domain.KindLength),
					string(domain.KindRange),
					string(domain.KindType),
					string(domain.KindEnum),
				},
			}),
			"message": ref(&openapi3.Schema{
				Type:        openapi3.TypeString,
				Description: "Human-readable description of the violation",
			}),
		},
	}

	return &openapi3.Schema{
		Type:        openapi3.TypeObject,
		Title:       "ErrorResponse",
		Description: "Error body returned for every non-2xx JSON response.",
		Required:    []string{"error", "code"},
		Properties: openapi3.Schemas{
			"error": ref(&openapi3.Schema{
				Type:        openapi3.TypeString,
				Description: "Detailed error message",
			}),
			"code": ref(&openapi3.Schema{
				Type:        openapi3.TypeInteger,
				Description: "HTTP status code",
			}),
			"details": ref(&openapi3.Schema{
				Type:        openapi3.TypeArray,
				Description: "Additional error details, one \"<field>: <message>\" line per violation",
				Items:       ref(&openapi3.Schema{Type: openapi3.TypeString}),
			}),
			"violations": ref(&openapi3.Schema{
				Type:        openapi3.TypeArray,
				Description: "Machine-readable form of details",
				Items:       ref(violation),
			}),
			"trace_id": ref(&openapi3.Schema{
				Type:        openapi3.TypeString,
				Description: "Identifier correlating the response with server logs",
			}),
		},
	}
}

func healthSchema() *openapi3.Schema {
	return &openapi3.Schema{
		Type:     openapi3.TypeObject,
		Title:    "HealthResponse",
		Required: []string{"status", "version", "timestamp"},
		Properties: openapi3.Schemas{
			"status": ref(&openapi3.Schema{
				Type:    openapi3.TypeString,
				Example: "healthy",
			}),
			"version": ref(&openapi3.Schema{
				Type:    openapi3.TypeString,
				Example: "1.0.0",
			}),
			"timestamp": ref(timestampSchema("Server time when the response was produced")),
		},
	}
}

func exampleProduct() interface{} {
	p := map[string]interface{}{"id": exampleProductID, "created_at": exampleTimestamp, "updated_at": exampleTimestamp}
	for k, v := range domain.ProductSchema().Example {
		p[k] = v
	}
	return jsonValue(p)
}

func exampleTask() interface{} {
	t := map[string]interface{}{"id": exampleTaskID}
	for k, v := range domain.TaskSchema().Example {
		t[k] = v
	}
	return jsonValue(t)
}

func exampleError(status int, message string, violations ...domain.FieldViolation) interface{} {
	body := map[string]interface{}{
		"error":    message,
		"code":     status,
		"trace_id": exampleTraceID,
	}
	if len(violations) > 0 {
		details := make([]string, 0, len(violations))
		for _, v := range violations {
			details = append(details, v.String())
		}
		body["details"] = details
		body["violations"] = violations
	}
	return jsonValue(body)
}
