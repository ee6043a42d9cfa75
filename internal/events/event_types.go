package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/user-management/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventUserLoggedIn      EventType = "user_logged_in"
	EventUserStatusChanged EventType = "user_status_changed"
	EventPasswordChanged   EventType = "password_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New builds an event with a fresh identifier and timestamp.
func New(eventType EventType, userID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// UserStatusChangedPayload payload.
type UserStatusChangedPayload struct {
	OldStatus domain.UserStatus `json:"old_status"`
	NewStatus domain.UserStatus `json:"new_status"`
	ActorID   string            `json:"actor_id"`
}
