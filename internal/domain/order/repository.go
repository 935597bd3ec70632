package order

import "context"

// Repository handles order persistence.
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Order, error)
	// GetByLineItemID resolves the order that owns the given order line.
	GetByLineItemID(ctx context.Context, lineItemID uint) (*Order, error)
}

// LineItemRepository handles order line persistence.
type LineItemRepository interface {
	GetByID(ctx context.Context, id uint) (*LineItem, error)
	GetByOrderID(ctx context.Context, orderID uint) ([]*LineItem, error)
}
