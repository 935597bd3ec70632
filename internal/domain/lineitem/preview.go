package lineitem

import (
	"github.com/loopcart-io/loopcart/internal/domain/shared/address"
)

// PreviewLineItem is a read-only order line inside a preview order. It is
// built in memory from a subscription line item and never persisted.
type PreviewLineItem struct {
	subscribableID uint
	quantity       int
	unitPriceCents int64
	currency       string
	description    string
}

// NewPreviewLineItem builds a preview line from a priced order line.
func NewPreviewLineItem(line BuiltLine) PreviewLineItem {
	return PreviewLineItem{
		subscribableID: line.SubscribableID,
		quantity:       line.Quantity,
		unitPriceCents: line.UnitPriceCents,
		currency:       line.Currency,
		description:    line.Description,
	}
}

func (p PreviewLineItem) SubscribableID() uint  { return p.subscribableID }
func (p PreviewLineItem) Quantity() int         { return p.quantity }
func (p PreviewLineItem) UnitPriceCents() int64 { return p.unitPriceCents }
func (p PreviewLineItem) Currency() string      { return p.currency }
func (p PreviewLineItem) Description() string   { return p.description }

// TotalCents returns the preview line total.
func (p PreviewLineItem) TotalCents() int64 {
	return p.unitPriceCents * int64(p.quantity)
}

// PreviewOrder is the transient order a subscription line item would
// generate at the next occurrence. It carries no identifiers and cannot be
// persisted; all accessors return copies.
type PreviewOrder struct {
	userID          uint
	shippingAddress *address.Address
	billingAddress  *address.Address
	lines           []PreviewLineItem
}

// NewPreviewOrder assembles a preview order. It returns nil when no lines
// were built, so callers can distinguish "nothing to preview" without an
// error.
func NewPreviewOrder(userID uint, shipping, billing *address.Address, lines []PreviewLineItem) *PreviewOrder {
	if len(lines) == 0 {
		return nil
	}
	return &PreviewOrder{
		userID:          userID,
		shippingAddress: address.Copy(shipping),
		billingAddress:  address.Copy(billing),
		lines:           append([]PreviewLineItem(nil), lines...),
	}
}

func (p *PreviewOrder) UserID() uint { return p.userID }

func (p *PreviewOrder) ShippingAddress() *address.Address {
	return address.Copy(p.shippingAddress)
}

func (p *PreviewOrder) BillingAddress() *address.Address {
	return address.Copy(p.billingAddress)
}

// Lines returns a copy of the preview order lines.
func (p *PreviewOrder) Lines() []PreviewLineItem {
	return append([]PreviewLineItem(nil), p.lines...)
}

// TotalCents sums all preview line totals.
func (p *PreviewOrder) TotalCents() int64 {
	var total int64
	for _, l := range p.lines {
		total += l.TotalCents()
	}
	return total
}
