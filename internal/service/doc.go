// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// (defined in internal/store) to fulfill application features.
//
// Services receive their dependencies through constructor injection: a store,
// an optional event emitter, a logger, and Options that replace the identifier
// generator and clock. After every successful mutation a change event is
// published; emission failures are logged and never fail the operation.
//
// The service layer depends on domain entities and store interfaces, but never
// on specific storage implementations.
package service
