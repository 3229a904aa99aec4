package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded EventType = "login_succeeded"
	EventLoginFailed    EventType = "login_failed"
	EventLogout         EventType = "logout"
	EventTokenRefreshed EventType = "token_refreshed"
	EventTokenRejected  EventType = "token_rejected"
)

// AllTypes lists every event the auth flow emits.
var AllTypes = []EventType{
	EventLoginSucceeded,
	EventLoginFailed,
	EventLogout,
	EventTokenRefreshed,
	EventTokenRejected,
}

// Event represents an auth lifecycle event.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	UserID    string    `json:"user_id,omitempty"`
	Path      string    `json:"path,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// New stamps an event with an id and the current time.
func New(eventType EventType, userID string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
	}
}

// WithReason returns a copy carrying a failure reason.
func (e Event) WithReason(err error) Event {
	if err != nil {
		e.Reason = err.Error()
	}
	return e
}

// WithPath returns a copy carrying the request path.
func (e Event) WithPath(path string) Event {
	e.Path = path
	return e
}
