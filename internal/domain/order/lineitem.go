package order

import (
	"fmt"
	"time"
)

// LineItem is a single line of an order: a quantity of one subscribable at
// the price captured when the line was built.
type LineItem struct {
	id             uint
	orderID        uint
	subscribableID uint
	quantity       int
	unitPriceCents int64
	currency       string
	description    string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewLineItem creates a new order line.
func NewLineItem(orderID, subscribableID uint, quantity int, unitPriceCents int64, currency, description string) (*LineItem, error) {
	if subscribableID == 0 {
		return nil, fmt.Errorf("subscribable ID is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if unitPriceCents < 0 {
		return nil, fmt.Errorf("unit price cannot be negative")
	}

	now := time.Now().UTC()
	return &LineItem{
		orderID:        orderID,
		subscribableID: subscribableID,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		currency:       currency,
		description:    description,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructLineItem reconstructs an order line from persistence.
func ReconstructLineItem(
	lineItemID, orderID, subscribableID uint,
	quantity int,
	unitPriceCents int64,
	currency, description string,
	createdAt, updatedAt time.Time,
) (*LineItem, error) {
	if lineItemID == 0 {
		return nil, fmt.Errorf("line item ID cannot be zero")
	}
	if subscribableID == 0 {
		return nil, fmt.Errorf("subscribable ID is required")
	}

	return &LineItem{
		id:             lineItemID,
		orderID:        orderID,
		subscribableID: subscribableID,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		currency:       currency,
		description:    description,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (li *LineItem) ID() uint              { return li.id }
func (li *LineItem) OrderID() uint         { return li.orderID }
func (li *LineItem) SubscribableID() uint  { return li.subscribableID }
func (li *LineItem) Quantity() int         { return li.quantity }
func (li *LineItem) UnitPriceCents() int64 { return li.unitPriceCents }
func (li *LineItem) Currency() string      { return li.currency }
func (li *LineItem) Description() string   { return li.description }
func (li *LineItem) CreatedAt() time.Time  { return li.createdAt }
func (li *LineItem) UpdatedAt() time.Time  { return li.updatedAt }

// TotalCents returns quantity times unit price.
func (li *LineItem) TotalCents() int64 {
	return int64(li.quantity) * li.unitPriceCents
}
