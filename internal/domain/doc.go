// Package domain contains the core business entities, value objects, and
// domain logic of the application: products, tasks, the schema descriptions
// that constrain their user-supplied fields, and the validation errors those
// schemas produce. It is independent of any storage or delivery mechanism.
package domain
