package events

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent records who did what to which entity.
type AuditEvent struct {
	EventType  string    `json:"eventType"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	ActorID    string    `json:"actorId"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewAuditEvent(eventType, entityType string, entityID, actorID uuid.UUID) *AuditEvent {
	return &AuditEvent{
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID.String(),
		ActorID:    actorID.String(),
		Timestamp:  time.Now(),
	}
}
