package lineitem

import "context"

// Repository handles subscription line item persistence.
type Repository interface {
	Create(ctx context.Context, lineItem *SubscriptionLineItem) error
	GetByID(ctx context.Context, id uint) (*SubscriptionLineItem, error)
	GetBySID(ctx context.Context, sid string) (*SubscriptionLineItem, error)
	GetBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*SubscriptionLineItem, error)
	Update(ctx context.Context, lineItem *SubscriptionLineItem) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*SubscriptionLineItem, int64, error)
}

// Filter narrows List queries.
type Filter struct {
	SubscriptionID *uint
	SubscribableID *uint
	Page           int
	PageSize       int
	SortBy         string
	SortDesc       bool
}
