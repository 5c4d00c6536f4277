package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the contract for everything published on the CRM bus.
type Event interface {
	// EventType returns the event code, e.g. "lead.stage_changed".
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewActivityEvent wraps a CRM mutation for the activity log consumer.
// The actor/object fields are flattened into the payload so the consumer
// can persist them without knowing the concrete event type.
func NewActivityEvent(action, objectType string, objectId, actorId uuid.UUID, details map[string]interface{}) Event {
	data := map[string]interface{}{
		"action":      action,
		"object_type": objectType,
		"object_id":   objectId.String(),
		"actor_id":    actorId.String(),
	}
	if details != nil {
		data["details"] = details
	}
	return BaseEvent{
		Type:       "activity." + action,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
