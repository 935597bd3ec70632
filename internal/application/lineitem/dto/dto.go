package dto

import (
	"time"

	"github.com/loopcart-io/loopcart/internal/domain/shared/address"
)

// LineItemDTO is the external representation of a subscription line item.
// DummyLineItem carries the priced preview line when the caller requested
// one; it is computed on the fly and never stored.
type LineItemDTO struct {
	ID               uint                `json:"id"`
	SID              string              `json:"sid"`
	SubscribableID   uint                `json:"subscribable_id"`
	Quantity         int                 `json:"quantity"`
	IntervalUnits    string              `json:"interval_units"`
	IntervalLength   int                 `json:"interval_length"`
	Installments     int                 `json:"installments"`
	EndDate          *time.Time          `json:"end_date,omitempty"`
	SubscriptionID   *uint               `json:"subscription_id,omitempty"`
	SourceLineItemID *uint               `json:"source_line_item_id,omitempty"`
	DummyLineItem    *PreviewLineItemDTO `json:"dummy_line_item,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// PreviewLineItemDTO is one priced line of a preview order.
type PreviewLineItemDTO struct {
	SubscribableID uint   `json:"subscribable_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Currency       string `json:"currency"`
	Description    string `json:"description,omitempty"`
	TotalCents     int64  `json:"total_cents"`
}

// PreviewOrderDTO is the transient order a line item would generate at its
// next occurrence. It has no identifiers: nothing it describes is stored.
type PreviewOrderDTO struct {
	UserID          uint                  `json:"user_id"`
	ShippingAddress *address.Address      `json:"shipping_address,omitempty"`
	BillingAddress  *address.Address      `json:"billing_address,omitempty"`
	LineItems       []*PreviewLineItemDTO `json:"line_items"`
	TotalCents      int64                 `json:"total_cents"`
}
