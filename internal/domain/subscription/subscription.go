package subscription

import (
	"fmt"
	"time"

	"github.com/loopcart-io/loopcart/internal/domain/shared/address"
	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/shared/constants"
	"github.com/loopcart-io/loopcart/internal/shared/id"
)

// Subscription is the aggregate that groups recurrence policy, addresses
// and user for recurring order generation. Its interval governs every line
// item attached to it.
type Subscription struct {
	id              uint
	sid             string
	userID          uint
	status          string
	interval        recurrence.Interval
	shippingAddress *address.Address
	billingAddress  *address.Address
	createdAt       time.Time
	updatedAt       time.Time
}

// ValidStatuses enumerates the accepted subscription statuses.
var ValidStatuses = map[string]bool{
	constants.SubscriptionStatusActive:    true,
	constants.SubscriptionStatusPaused:    true,
	constants.SubscriptionStatusCancelled: true,
}

// NewSubscription creates a new subscription for the given user.
func NewSubscription(userID uint, interval recurrence.Interval) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if err := interval.Validate(); err != nil {
		return nil, fmt.Errorf("invalid subscription interval: %w", err)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixSubscription, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Subscription{
		sid:       sid,
		userID:    userID,
		status:    constants.SubscriptionStatusActive,
		interval:  interval,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence.
func ReconstructSubscription(
	subscriptionID uint,
	sid string,
	userID uint,
	status string,
	interval recurrence.Interval,
	shippingAddress, billingAddress *address.Address,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:              subscriptionID,
		sid:             sid,
		userID:          userID,
		status:          status,
		interval:        interval,
		shippingAddress: address.Copy(shippingAddress),
		billingAddress:  address.Copy(billingAddress),
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                       { return s.id }
func (s *Subscription) SID() string                    { return s.sid }
func (s *Subscription) UserID() uint                   { return s.userID }
func (s *Subscription) Status() string                 { return s.status }
func (s *Subscription) Interval() recurrence.Interval  { return s.interval }
func (s *Subscription) CreatedAt() time.Time           { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time           { return s.updatedAt }

// ShippingAddress returns a copy of the subscription's explicit ship-to
// address, or nil when it falls back to the user default.
func (s *Subscription) ShippingAddress() *address.Address {
	return address.Copy(s.shippingAddress)
}

// BillingAddress returns a copy of the subscription's explicit bill-to
// address, or nil when it falls back to the user default.
func (s *Subscription) BillingAddress() *address.Address {
	return address.Copy(s.billingAddress)
}

// SetID sets the subscription ID (only for persistence layer use).
func (s *Subscription) SetID(subscriptionID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if subscriptionID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = subscriptionID
	return nil
}

// SetShippingAddress overrides the ship-to address for future orders.
func (s *Subscription) SetShippingAddress(a *address.Address) {
	s.shippingAddress = address.Copy(a)
	s.updatedAt = time.Now().UTC()
}

// SetBillingAddress overrides the bill-to address for future orders.
func (s *Subscription) SetBillingAddress(a *address.Address) {
	s.billingAddress = address.Copy(a)
	s.updatedAt = time.Now().UTC()
}

// UpdateInterval changes the recurrence policy shared by all line items.
func (s *Subscription) UpdateInterval(interval recurrence.Interval) error {
	if err := interval.Validate(); err != nil {
		return fmt.Errorf("invalid subscription interval: %w", err)
	}
	s.interval = interval
	s.updatedAt = time.Now().UTC()
	return nil
}

// Cancel stops future order generation.
func (s *Subscription) Cancel() error {
	if s.status == constants.SubscriptionStatusCancelled {
		return nil
	}
	s.status = constants.SubscriptionStatusCancelled
	s.updatedAt = time.Now().UTC()
	return nil
}

// IsActive reports whether the subscription still generates orders.
func (s *Subscription) IsActive() bool {
	return s.status == constants.SubscriptionStatusActive
}
