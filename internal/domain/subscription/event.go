package subscription

import (
	"fmt"
	"time"

	"github.com/loopcart-io/loopcart/internal/shared/id"
)

// Event is one entry of the append-only audit trail kept per subscription.
// Details hold the filtered snapshot of the record that triggered the
// event; entries are never updated or deleted.
type Event struct {
	id             uint
	sid            string
	subscriptionID uint
	eventType      string
	details        map[string]any
	createdAt      time.Time
}

// NewEvent creates a new audit event for a subscription.
func NewEvent(subscriptionID uint, eventType string, details map[string]any) (*Event, error) {
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if eventType == "" {
		return nil, fmt.Errorf("event type is required")
	}
	if details == nil {
		details = make(map[string]any)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixEvent, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	return &Event{
		sid:            sid,
		subscriptionID: subscriptionID,
		eventType:      eventType,
		details:        details,
		createdAt:      time.Now().UTC(),
	}, nil
}

// ReconstructEvent reconstructs an audit event from persistence.
func ReconstructEvent(
	eventID uint,
	sid string,
	subscriptionID uint,
	eventType string,
	details map[string]any,
	createdAt time.Time,
) (*Event, error) {
	if eventID == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if details == nil {
		details = make(map[string]any)
	}

	return &Event{
		id:             eventID,
		sid:            sid,
		subscriptionID: subscriptionID,
		eventType:      eventType,
		details:        details,
		createdAt:      createdAt,
	}, nil
}

func (e *Event) ID() uint             { return e.id }
func (e *Event) SID() string          { return e.sid }
func (e *Event) SubscriptionID() uint { return e.subscriptionID }
func (e *Event) EventType() string    { return e.eventType }
func (e *Event) Details() map[string]any {
	return e.details
}
func (e *Event) CreatedAt() time.Time { return e.createdAt }

// SetID sets the event ID (only for persistence layer use).
func (e *Event) SetID(eventID uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if eventID == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = eventID
	return nil
}
