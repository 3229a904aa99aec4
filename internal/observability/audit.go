package observability

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/book-purple/internal/events"
)

// RegisterAuditLog writes every auth event to the logger.
func RegisterAuditLog(dispatcher events.Dispatcher, logger *zap.Logger) {
	audit := logger.Named("audit")
	for _, eventType := range events.AllTypes {
		dispatcher.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			audit.Info(string(e.Type),
				zap.String("event_id", e.ID),
				zap.String("user_id", e.UserID),
				zap.String("path", e.Path),
				zap.String("reason", e.Reason),
				zap.Time("at", e.Timestamp),
			)
			return nil
		})
	}
}
