package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Change event types published by the services.
const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
	TaskCreated    = "task.created"
)

// ChangeEvent records a completed mutation of a collection.
// It carries a snapshot of the affected record so that handlers need no
// access to the stores.
type ChangeEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the change event type constants, e.g. "product.created"
	Type string `json:"type"`

	// Resource names the collection that changed ("product" or "task")
	Resource string `json:"resource"`

	// ResourceID is the identifier of the affected record
	ResourceID string `json:"resource_id"`

	// Payload contains the record as it was after the change, serialized as JSON.
	// It is empty for deletions.
	Payload json.RawMessage `json:"payload,omitempty"`

	// OccurredAt is the timestamp when the event was created
	OccurredAt time.Time `json:"occurred_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *ChangeEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewChangeEvent creates a new ChangeEvent. A nil payload leaves Payload empty.
func NewChangeEvent(eventType, resource, resourceID string, payload interface{}) (*ChangeEvent, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = b
	}

	return &ChangeEvent{
		ID:         uuid.New(),
		Type:       eventType,
		Resource:   resource,
		ResourceID: resourceID,
		Payload:    payloadBytes,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
// Handlers are responsible for processing events and taking appropriate actions.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ChangeEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *ChangeEvent) error
}
