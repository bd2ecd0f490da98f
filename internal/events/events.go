// Package events provides event publishing for registration lifecycle
// events consumed by downstream matching tooling via Redis Streams.
package events

import (
	"time"

	"github.com/google/uuid"
)

// StreamName is the Redis stream for registration events.
const StreamName = "registration-events"

// EventType represents the type of registration event.
type EventType string

const (
	// SupervisorRegistered indicates a supervisor record was persisted.
	SupervisorRegistered EventType = "SUPERVISOR_REGISTERED"
)

// RegistrationEvent is the envelope for all registration events.
type RegistrationEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	EventType EventType `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// SupervisorRegisteredPayload contains data for SUPERVISOR_REGISTERED
// events.
type SupervisorRegisteredPayload struct {
	Supervisor string   `json:"supervisor"`
	Capacity   int      `json:"capacity"`
	Programs   []string `json:"programs"`
	Topics     int      `json:"topics"`
}
