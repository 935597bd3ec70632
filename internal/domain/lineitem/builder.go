package lineitem

import "context"

// BuiltLine is one order line produced from a subscription line item. The
// builder prices the subscribable and expands quantity; lines for items
// that cannot currently be purchased are omitted.
type BuiltLine struct {
	SubscribableID uint
	Quantity       int
	UnitPriceCents int64
	Currency       string
	Description    string
}

// TotalCents returns the line total.
func (l BuiltLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// OrderLineBuilder turns subscription line items into priced order lines.
// Implementations must not mutate the supplied line items. An empty result
// with a nil error means nothing is currently buildable.
type OrderLineBuilder interface {
	Build(ctx context.Context, items []*SubscriptionLineItem) ([]BuiltLine, error)
}
