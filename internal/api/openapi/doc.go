// Package openapi builds the machine-readable API descriptor (OpenAPI 3.0.3)
// served at /openapi.json and /openapi.yaml.
//
// Field constraints are derived from the same domain.Schema values that the
// handlers validate requests against. Every operation carries request and
// response examples.
package openapi
