package subscription

import "context"

// Repository handles subscription persistence.
type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetBySID(ctx context.Context, sid string) (*Subscription, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error
	Delete(ctx context.Context, id uint) error
}

// EventRepository is the append-only audit log keyed by subscription.
// There is no update or delete: once written, events are immutable.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	ListBySubscriptionID(ctx context.Context, subscriptionID uint, page, pageSize int) ([]*Event, int64, error)
}
