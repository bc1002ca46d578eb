package openapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/phrazzld/catalog-api/internal/domain"
)

// Version is the OpenAPI version the descriptor conforms to.
const Version = "3.0.3"

// Tags group operations in the descriptor and the documentation UI.
const (
	TagProducts = "Products"
	TagTasks    = "Tasks"
	TagTesting  = "Testing"
	TagSystem   = "System"
)

const mediaJSON = "application/json"

// Info carries the document metadata taken from configuration.
type Info struct {
	Title   string
	Version string
}

const apiDescription = "A demonstration API built around documentation-driven testing. " +
	"Every endpoint publishes its constraints and examples so that clients can derive " +
	"test cases directly from this descriptor."

// NewDocument builds the descriptor for every public endpoint.
func NewDocument(info Info) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       info.Title,
			Description: apiDescription,
			Version:     info.Version,
		},
		Tags: openapi3.Tags{
			{Name: TagProducts, Description: "Product catalog management"},
			{Name: TagTasks, Description: "Task creation"},
			{Name: TagTesting, Description: "Endpoints used to probe the running server"},
			{Name: TagSystem, Description: "Operational endpoints"},
		},
		Paths: openapi3.Paths{},
	}

	doc.Paths["/products"] = &openapi3.PathItem{
		Get:  listProductsOperation(),
		Post: createProductOperation(),
	}
	doc.Paths["/products/{id}"] = &openapi3.PathItem{
		Get:    getProductOperation(),
		Put:    updateProductOperation(),
		Delete: deleteProductOperation(),
	}
	doc.Paths["/tasks"] = &openapi3.PathItem{
		Post: createTaskOperation(),
	}
	doc.Paths["/test/health"] = &openapi3.PathItem{
		Get: testHealthOperation(),
	}
	doc.Paths["/test/echo"] = &openapi3.PathItem{
		Post: echoOperation(),
	}
	doc.Paths["/health"] = &openapi3.PathItem{
		Get: livenessOperation(),
	}

	return doc
}

// Build constructs the descriptor and validates it.
func Build(ctx context.Context, info Info) (*openapi3.T, error) {
	doc := NewDocument(info)
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid API descriptor: %w", err)
	}
	return doc, nil
}

func jsonContent(schema *openapi3.Schema, example interface{}) openapi3.Content {
	return openapi3.Content{
		mediaJSON: &openapi3.MediaType{
			Schema:  ref(schema),
			Example: example,
		},
	}
}

func response(description string, content openapi3.Content) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &description,
			Content:     content,
		},
	}
}

func errorResponse(status int, description, message string, violations ...domain.FieldViolation) *openapi3.ResponseRef {
	return response(description, jsonContent(errorSchema(), exampleError(status, message, violations...)))
}

func notFoundResponse(message string) *openapi3.ResponseRef {
	return errorResponse(http.StatusNotFound, "Resource not found", message)
}

func validationResponse(violations ...domain.FieldViolation) *openapi3.ResponseRef {
	return errorResponse(http.StatusUnprocessableEntity,
		"Validation error: the body or query violates a declared constraint, or could not be parsed",
		"Validation error", violations...)
}

func requestBody(description string, schema *openapi3.Schema, example interface{}) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Description: description,
			Required:    true,
			Content:     jsonContent(schema, example),
		},
	}
}

func idParameter(resource, example string) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: &openapi3.Parameter{
			Name:        "id",
			In:          openapi3.ParameterInPath,
			Description: "The unique identifier of the " + resource,
			Required:    true,
			Schema:      ref(&openapi3.Schema{Type: openapi3.TypeString}),
			Example:     example,
		},
	}
}

func filterParameters() openapi3.Parameters {
	fields := domain.ProductFilterSchema().Fields
	params := make(openapi3.Parameters, 0, len(fields))
	for _, f := range fields {
		params = append(params, &openapi3.ParameterRef{
			Value: &openapi3.Parameter{
				Name:        f.Name,
				In:          openapi3.ParameterInQuery,
				Description: f.Description,
				Schema:      ref(fieldSchema(f)),
				Example:     jsonValue(f.Example),
			},
		})
	}
	return params
}

func listProductsOperation() *openapi3.Operation {
	list := &openapi3.Schema{
		Type:  openapi3.TypeArray,
		Items: ref(productSchema()),
	}
	return &openapi3.Operation{
		Tags:        []string{TagProducts},
		Summary:     "Get all products",
		Description: "Retrieve all products, optionally narrowed by category, price range and stock status. Filters combine with AND.",
		OperationID: "listProducts",
		Parameters:  filterParameters(),
		Responses: openapi3.Responses{
			strconv.Itoa(http.StatusOK): response("List of matching products",
				jsonContent(list, jsonValue([]interface{}{exampleProduct()}))),
			strconv.Itoa(http.StatusUnprocessableEntity): validationResponse(domain.FieldViolation{
				Field:   "min_price",
				Kind:    domain.KindRange,
				Message: "ensure this value is greater than or equal to 0",
			}),
		},
	}
}

func createProductOperation() *openapi3.Operation {
	return &openapi3.Operation{
		Tags:        []string{TagProducts},
		Summary:     "Create a new product",
		Description: "Create a new product. The identifier and timestamps are generated by the server.",
		OperationID: "createProduct",
		RequestBody: requestBody("Product to create", inputSchema(domain.ProductSchema()),
			jsonValue(domain.ProductSchema().Example)),
		Responses: openapi3.Responses{
			strconv.Itoa(http.StatusCreated): response("The created product",
				jsonContent(productSchema(), exampleProduct())),
			strconv.Itoa(http.StatusUnprocessableEntity): validationResponse(domain.FieldViolation{
				Field:   "price",
				Kind:    domain.KindRange,
				Message: "ensure this value is greater than 0",
			}),
		},
	}
}

func getProductOperation() *openapi3.Operation {
	return &openapi3.Operation{
		Tags:        []string{TagProducts},
		Summary:     "Get a specific product",
		Description: "Retrieve a single product by its identifier.",
		OperationID: "getProduct",
		Parameters:  openapi3.Parameters{idParameter("product", exampleProductID)},
		Responses: openapi3.Responses{
			strconv.Itoa(http.StatusOK): response("The requested product",
				jsonContent(productSchema(), exampleProduct())),
			strconv.Itoa(http.StatusNotFound): notFoundResponse("Product not found"),
		},
	}
}

func updateProductOperation() *openapi3.Operation {
	update := map[string]interface{}{
		"name":        "Updated Wireless Headphones",
		"description": "Noise-cancelling wireless headphones with 30h battery life",
		"price":       129.99,
		"category":    string(domain.CategoryElectronics),
		"in_stock":    true,
		"tags":        []string{"wireless", "audio", "bluetooth", "noise-cancelling"},
	}
	updated := map[string]interface{}{
		"id":         exampleProductID,
		"created_at": exampleTimestamp,
		"updated_at": "2023-01-16T09:15:00Z",
	}
	for k, v := range update {
		updated[k] = v
	}

	return &openapi3.Operation{
		Tags:        []string{TagProducts},
		Summary:     "Update a product",
		Description: "Replace every user-supplied field of an existing product. Omitted optional fields revert to their defaults. The identifier and creation time never change.",
		OperationID: "updateProduct",
		Parameters:  openapi3.Parameters{idParameter("product", exampleProductID)},
		RequestBody: requestBody("Complete replacement for the product", inputSchema(domain.ProductSchema()),
			jsonValue(update)),
		Responses: openapi3.Responses{
			strconv.Itoa(http.StatusOK): response("The updated product",
				jsonContent(productSchema(), jsonValue(updated))),
			strconv.Itoa(http.StatusNotFound): notFoundResponse("Product not found"),
			strconv.Itoa(http.StatusUnprocessableEntity): validationResponse(domain.FieldViolation{
				Field:   "name",
				Kind:    domain.KindRequired,
				Message: "field required",
			}),
		},
	}
}

func deleteProductOperation() *openapi3.Operation {
	return &openapi3.Operation{
		Tags:        []string{TagProducts},
		Summary:     "Delete a product",
		Description: "Delete a product by its identifier. The response has no body.",
		OperationID: "deleteProduct",
		Parameters:  openapi3.Parameters{idParameter("product", exampleProductID)},
		Responses: openapi3.Responses{
			strconv.Itoa(http.StatusNoContent): response("Product deleted", nil),
			strconv.Itoa(http.StatusNotFound):  notFoundResponse("Product not found"),
		},
	}
}

func createTaskOperation() *openapi3.Operation {
	return &openapi3.Operation{
		Tags:        []string{TagTasks},
		Summary:     "Create a new task",
		Description: "Create a new task with a title and an optional description.",
		OperationID: "createTask",
		RequestBody: requestBody("Task to create", inputSchema(domain.TaskSchema()),
			jsonValue(domain.TaskSchema().Example)),
		Responses: openapi3.Responses{
			strconv.Itoa(http.StatusCreated): response("The created task",
				jsonContent(taskSchema(), exampleTask())),
			strconv.Itoa(http.StatusUnprocessableEntity): validationResponse(domain.FieldViolation{
				Field:   "title",
				Kind:    domain.KindLength,
				Message: "ensure this value has at least 1 characters",
			}),
		},
	}
}

func testHealthOperation() *openapi3.Operation {
	return &openapi3.Operation{
		Tags:        []string{TagTesting},
		Summary:     "Report server health",
		Description: "Return the server status, the API version and the current server time.",
		OperationID: "testHealth",
		Responses: openapi3.Responses{
			strconv.Itoa(http.StatusOK): response("Server is healthy",
				jsonContent(healthSchema(), map[string]interface{}{
					"status":    "healthy",
					"version":   "1.0.0",
					"timestamp": exampleTimestamp,
				})),
		},
	}
}

func echoOperation() *openapi3.Operation {
	object := &openapi3.Schema{
		Type:        openapi3.TypeObject,
		Description: "Any JSON object",
	}
	example := map[string]interface{}{"message": "hello", "count": float64(3)}

	return &openapi3.Operation{
		Tags:        []string{TagTesting},
		Summary:     "Echo a JSON object",
		Description: "Return the submitted JSON object unchanged.",
		OperationID: "testEcho",
		RequestBody: requestBody("Object to echo", object, example),
		Responses: openapi3.Responses{
			strconv.Itoa(http.StatusOK): response("The submitted object", jsonContent(object, example)),
			strconv.Itoa(http.StatusUnprocessableEntity): errorResponse(http.StatusUnprocessableEntity,
				"The body is not a JSON object", "Invalid request format"),
		},
	}
}

func livenessOperation() *openapi3.Operation {
	return &openapi3.Operation{
		Tags:        []string{TagSystem},
		Summary:     "Liveness probe",
		Description: "Return the plain-text string OK while the process is serving requests.",
		OperationID: "health",
		Responses: openapi3.Responses{
			strconv.Itoa(http.StatusOK): response("Server is alive", openapi3.Content{
				"text/plain": &openapi3.MediaType{
					Schema:  ref(&openapi3.Schema{Type: openapi3.TypeString}),
					Example: "OK",
				},
			}),
		},
	}
}
