package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

// FieldSessionID is the structured logging key for interactive session identifiers.
const FieldSessionID = "session_id"

// NewSessionID returns a fresh identifier for one interactive session.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSessionID tags every record emitted by logger with sessionID. A nil
// logger or empty ID returns logger unchanged.
func WithSessionID(logger *slog.Logger, sessionID string) *slog.Logger {
	if logger == nil || sessionID == "" {
		return logger
	}
	return logger.With(slog.String(FieldSessionID, sessionID))
}
