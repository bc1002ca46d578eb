package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// registration is one subscribed handler together with the name it is logged under.
type registration struct {
	name    string
	handler EventHandler
}

// InMemoryEventEmitter dispatches change events synchronously to every
// registered handler, in registration order. A failing or panicking handler
// does not stop delivery to the handlers after it.
type InMemoryEventEmitter struct {
	mu            sync.RWMutex
	registrations []registration
	logger        *slog.Logger
}

// NewInMemoryEventEmitter creates an emitter with no handlers.
// If logger is nil, a default logger will be used.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		logger: logger.With(slog.String("component", "change_emitter")),
	}
}

// RegisterHandler subscribes handler to every subsequently emitted event.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	reg := registration{name: fmt.Sprintf("%T", handler), handler: handler}

	e.mu.Lock()
	e.registrations = append(e.registrations, reg)
	count := len(e.registrations)
	e.mu.Unlock()

	e.logger.Debug("change handler registered",
		slog.String("handler", reg.name),
		slog.Int("handler_count", count))
}

// EmitEvent implements EventEmitter. Every handler sees the event; the first
// handler error is returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *ChangeEvent) error {
	e.mu.RLock()
	regs := append([]registration(nil), e.registrations...)
	e.mu.RUnlock()

	var firstErr error
	for _, reg := range regs {
		err := deliver(ctx, reg.handler, event)
		if err == nil {
			continue
		}
		e.logger.ErrorContext(ctx, "change handler failed",
			slog.String("handler", reg.name),
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.Type),
			slog.String("error", err.Error()))
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// deliver runs one handler, turning a panic into an error.
func deliver(ctx context.Context, handler EventHandler, event *ChangeEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("change handler panicked: %v", r)
		}
	}()
	return handler.HandleEvent(ctx, event)
}
