package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/loopcart-io/loopcart/internal/domain/catalog"
	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/order"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/domain/user"
)

// Shared testify mocks for the line item use case tests.

type MockLineItemRepository struct {
	mock.Mock
}

func (m *MockLineItemRepository) Create(ctx context.Context, li *lineitem.SubscriptionLineItem) error {
	args := m.Called(ctx, li)
	return args.Error(0)
}

func (m *MockLineItemRepository) GetByID(ctx context.Context, id uint) (*lineitem.SubscriptionLineItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lineitem.SubscriptionLineItem), args.Error(1)
}

func (m *MockLineItemRepository) GetBySID(ctx context.Context, sid string) (*lineitem.SubscriptionLineItem, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lineitem.SubscriptionLineItem), args.Error(1)
}

func (m *MockLineItemRepository) GetBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*lineitem.SubscriptionLineItem, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*lineitem.SubscriptionLineItem), args.Error(1)
}

func (m *MockLineItemRepository) Update(ctx context.Context, li *lineitem.SubscriptionLineItem) error {
	args := m.Called(ctx, li)
	return args.Error(0)
}

func (m *MockLineItemRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLineItemRepository) List(ctx context.Context, filter lineitem.Filter) ([]*lineitem.SubscriptionLineItem, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*lineitem.SubscriptionLineItem), args.Get(1).(int64), args.Error(2)
}

type MockSubscribableRepository struct {
	mock.Mock
}

func (m *MockSubscribableRepository) Create(ctx context.Context, item *catalog.Subscribable) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockSubscribableRepository) GetByID(ctx context.Context, id uint) (*catalog.Subscribable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Subscribable), args.Error(1)
}

func (m *MockSubscribableRepository) GetBySID(ctx context.Context, sid string) (*catalog.Subscribable, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Subscribable), args.Error(1)
}

func (m *MockSubscribableRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*catalog.Subscribable, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]*catalog.Subscribable), args.Error(1)
}

func (m *MockSubscribableRepository) Update(ctx context.Context, item *catalog.Subscribable) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockSubscribableRepository) List(ctx context.Context, page, pageSize int) ([]*catalog.Subscribable, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*catalog.Subscribable), args.Get(1).(int64), args.Error(2)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *subscription.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) ListBySubscriptionID(ctx context.Context, subscriptionID uint, page, pageSize int) ([]*subscription.Event, int64, error) {
	args := m.Called(ctx, subscriptionID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*subscription.Event), args.Get(1).(int64), args.Error(2)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByLineItemID(ctx context.Context, lineItemID uint) (*order.Order, error) {
	args := m.Called(ctx, lineItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockOrderLineBuilder struct {
	mock.Mock
}

func (m *MockOrderLineBuilder) Build(ctx context.Context, items []*lineitem.SubscriptionLineItem) ([]lineitem.BuiltLine, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]lineitem.BuiltLine), args.Error(1)
}

// passthroughTransactor runs the function directly, standing in for
// db.TransactionManager in unit tests.
type passthroughTransactor struct{}

func (passthroughTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
