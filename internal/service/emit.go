package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/events"
)

// emitChange publishes a change event. Failures are logged and never
// propagate to the caller: the mutation has already been committed.
func emitChange(
	ctx context.Context,
	emitter events.EventEmitter,
	log *slog.Logger,
	eventType, resource, resourceID string,
	payload interface{},
) {
	if emitter == nil {
		return
	}

	event, err := events.NewChangeEvent(eventType, resource, resourceID, payload)
	if err != nil {
		log.Error("failed to build change event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}

	if err := emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit change event",
			slog.String("event_type", eventType),
			slog.String("resource_id", resourceID),
			slog.String("error", err.Error()))
	}
}
