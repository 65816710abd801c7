package queue

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys, also used as the event type.
const (
	EventLeadCreated    = "lead.created"
	EventLeadUpdated    = "lead.updated"
	EventLeadDeleted    = "lead.deleted"
	EventLeadRestored   = "lead.restored"
	EventEmailRequested = "email.requested"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	LeadID     int64     `json:"lead_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	TemplateID int64     `json:"template_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(eventType string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
}
