// Package memory provides process-lifetime implementations of the storage
// interfaces defined in the internal/store package. Each store owns its map and
// guards it with a read/write mutex; records are copied on the way in and out so
// callers never share state with the collection.
package memory
