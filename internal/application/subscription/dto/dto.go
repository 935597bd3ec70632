package dto

import (
	"time"

	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/shared/mapper"
)

// EventDTO is the external representation of one subscription audit event.
type EventDTO struct {
	ID             uint           `json:"id"`
	SID            string         `json:"sid"`
	SubscriptionID uint           `json:"subscription_id"`
	EventType      string         `json:"event_type"`
	Details        map[string]any `json:"details"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ToEventDTO converts a subscription audit event.
func ToEventDTO(e *subscription.Event) *EventDTO {
	if e == nil {
		return nil
	}
	return &EventDTO{
		ID:             e.ID(),
		SID:            e.SID(),
		SubscriptionID: e.SubscriptionID(),
		EventType:      e.EventType(),
		Details:        e.Details(),
		CreatedAt:      e.CreatedAt(),
	}
}

// ToEventDTOList converts a slice of audit events.
func ToEventDTOList(events []*subscription.Event) []*EventDTO {
	return mapper.MapSlice(events, ToEventDTO)
}
