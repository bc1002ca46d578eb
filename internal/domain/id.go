package domain

import "github.com/google/uuid"

// NewID returns a random version 4 UUID in canonical hyphenated form.
func NewID() string {
	return uuid.NewString()
}
