package events

import (
	"context"
	"fmt"
	"log/slog"
)

// recordSummary picks the human-readable fields out of a product or task payload.
type recordSummary struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Title    string `json:"title"`
}

// LoggingHandler writes one audit line per change event.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler creates a LoggingHandler. If l is nil, a default logger will be used.
func NewLoggingHandler(l *slog.Logger) *LoggingHandler {
	if l == nil {
		l = slog.Default()
	}
	return &LoggingHandler{logger: l.With("component", "change_audit")}
}

// HandleEvent implements EventHandler. The audit line is written even when the
// payload cannot be decoded; the decode error is returned afterwards.
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *ChangeEvent) error {
	attrs := []slog.Attr{
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("resource", event.Resource),
		slog.String("resource_id", event.ResourceID),
		slog.Time("occurred_at", event.OccurredAt),
	}

	var decodeErr error
	if len(event.Payload) > 0 {
		var summary recordSummary
		if err := event.UnmarshalPayload(&summary); err != nil {
			decodeErr = fmt.Errorf("decode %s payload: %w", event.Resource, err)
		} else {
			attrs = append(attrs, summary.attrs()...)
		}
	}

	h.logger.LogAttrs(ctx, slog.LevelInfo, "resource changed", attrs...)
	return decodeErr
}

func (s recordSummary) attrs() []slog.Attr {
	var attrs []slog.Attr
	if s.Name != "" {
		attrs = append(attrs, slog.String("name", s.Name))
	}
	if s.Category != "" {
		attrs = append(attrs, slog.String("category", s.Category))
	}
	if s.Title != "" {
		attrs = append(attrs, slog.String("title", s.Title))
	}
	return attrs
}
