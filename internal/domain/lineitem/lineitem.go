// Package lineitem contains the subscription line item aggregate: the link
// between a purchasable catalog item and the quantity, recurrence and
// installment policy that puts it on a recurring order.
package lineitem

import (
	"fmt"
	"time"

	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/shared/id"
)

// SubscriptionLineItem associates a subscribable and a quantity/interval/
// installment policy with a parent subscription. A line item may exist
// transiently without a subscription (quote/preview flows); in that case
// it must carry its own positive interval.
type SubscriptionLineItem struct {
	id               uint
	sid              string
	subscribableID   uint
	quantity         int
	interval         recurrence.Interval
	installments     int
	endDate          *time.Time
	subscriptionID   *uint
	sourceLineItemID *uint
	createdAt        time.Time
	updatedAt        time.Time
}

// NewSubscriptionLineItem creates a validated subscription line item.
// subscriptionID and sourceLineItemID are optional.
func NewSubscriptionLineItem(
	subscribableID uint,
	quantity int,
	interval recurrence.Interval,
	installments int,
	subscriptionID *uint,
	sourceLineItemID *uint,
) (*SubscriptionLineItem, error) {
	sid, err := id.GenerateWithPrefix(id.PrefixLineItem, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	li := &SubscriptionLineItem{
		sid:              sid,
		subscribableID:   subscribableID,
		quantity:         quantity,
		interval:         interval,
		installments:     installments,
		subscriptionID:   copyUintPtr(subscriptionID),
		sourceLineItemID: copyUintPtr(sourceLineItemID),
		createdAt:        now,
		updatedAt:        now,
	}

	if err := li.Validate(); err != nil {
		return nil, err
	}

	return li, nil
}

// ReconstructSubscriptionLineItem reconstructs a line item from persistence.
func ReconstructSubscriptionLineItem(
	lineItemID uint,
	sid string,
	subscribableID uint,
	quantity int,
	interval recurrence.Interval,
	installments int,
	endDate *time.Time,
	subscriptionID *uint,
	sourceLineItemID *uint,
	createdAt, updatedAt time.Time,
) (*SubscriptionLineItem, error) {
	if lineItemID == 0 {
		return nil, fmt.Errorf("line item ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("line item SID is required")
	}

	return &SubscriptionLineItem{
		id:               lineItemID,
		sid:              sid,
		subscribableID:   subscribableID,
		quantity:         quantity,
		interval:         interval,
		installments:     installments,
		endDate:          copyTimePtr(endDate),
		subscriptionID:   copyUintPtr(subscriptionID),
		sourceLineItemID: copyUintPtr(sourceLineItemID),
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (li *SubscriptionLineItem) ID() uint                      { return li.id }
func (li *SubscriptionLineItem) SID() string                   { return li.sid }
func (li *SubscriptionLineItem) SubscribableID() uint          { return li.subscribableID }
func (li *SubscriptionLineItem) Quantity() int                 { return li.quantity }
func (li *SubscriptionLineItem) Interval() recurrence.Interval { return li.interval }
func (li *SubscriptionLineItem) Installments() int             { return li.installments }
func (li *SubscriptionLineItem) EndDate() *time.Time           { return copyTimePtr(li.endDate) }
func (li *SubscriptionLineItem) SubscriptionID() *uint         { return copyUintPtr(li.subscriptionID) }
func (li *SubscriptionLineItem) SourceLineItemID() *uint {
	return copyUintPtr(li.sourceLineItemID)
}
func (li *SubscriptionLineItem) CreatedAt() time.Time { return li.createdAt }
func (li *SubscriptionLineItem) UpdatedAt() time.Time { return li.updatedAt }

// HasSubscription reports whether the line item belongs to a subscription.
func (li *SubscriptionLineItem) HasSubscription() bool {
	return li.subscriptionID != nil && *li.subscriptionID != 0
}

// EffectiveInterval resolves the interval that governs this line item:
// the parent subscription's interval when one is supplied, the line item's
// own interval otherwise.
func (li *SubscriptionLineItem) EffectiveInterval(parent *recurrence.Interval) recurrence.Interval {
	return recurrence.Resolve(li.interval, parent)
}

// Validate enforces the line item invariants: the subscribable reference is
// required, quantity is positive, and the interval is positive unless an
// owning subscription supplies the recurrence policy.
func (li *SubscriptionLineItem) Validate() error {
	if li.subscribableID == 0 {
		return ErrSubscribableRequired
	}
	if li.quantity <= 0 {
		return ErrQuantityNotPositive
	}
	if !li.HasSubscription() {
		if li.interval.Length <= 0 {
			return ErrIntervalNotPositive
		}
		if !li.interval.Units.IsValid() {
			return fmt.Errorf("%w: unknown unit %q", ErrIntervalNotPositive, li.interval.Units)
		}
	}
	return nil
}

// SetID sets the line item ID (only for persistence layer use).
func (li *SubscriptionLineItem) SetID(lineItemID uint) error {
	if li.id != 0 {
		return fmt.Errorf("line item ID is already set")
	}
	if lineItemID == 0 {
		return fmt.Errorf("line item ID cannot be zero")
	}
	li.id = lineItemID
	return nil
}

// UpdateQuantity changes how many units each recurring order includes.
func (li *SubscriptionLineItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	li.quantity = quantity
	li.updatedAt = time.Now().UTC()
	return nil
}

// UpdateRecurrence changes the line item's own interval. A zero interval is
// allowed only while a subscription governs the recurrence.
func (li *SubscriptionLineItem) UpdateRecurrence(interval recurrence.Interval) error {
	if !li.HasSubscription() {
		if interval.Length <= 0 || !interval.Units.IsValid() {
			return ErrIntervalNotPositive
		}
	}
	li.interval = interval
	li.updatedAt = time.Now().UTC()
	return nil
}

// UpdateInstallments changes the number of orders to generate before the
// line item lapses. Zero means no limit.
func (li *SubscriptionLineItem) UpdateInstallments(installments int) error {
	if installments < 0 {
		return fmt.Errorf("installments cannot be negative")
	}
	li.installments = installments
	li.updatedAt = time.Now().UTC()
	return nil
}

// SetEndDate sets or clears the date the line item lapses.
func (li *SubscriptionLineItem) SetEndDate(endDate *time.Time) {
	li.endDate = copyTimePtr(endDate)
	li.updatedAt = time.Now().UTC()
}

// AttachToSubscription links a transient line item to its owning
// subscription.
func (li *SubscriptionLineItem) AttachToSubscription(subscriptionID uint) error {
	if subscriptionID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	li.subscriptionID = &subscriptionID
	li.updatedAt = time.Now().UTC()
	return nil
}

func copyUintPtr(v *uint) *uint {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyTimePtr(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
