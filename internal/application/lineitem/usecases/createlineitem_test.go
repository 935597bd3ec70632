package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/loopcart-io/loopcart/internal/application/lineitem/dto"
	"github.com/loopcart-io/loopcart/internal/domain/catalog"
	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

func testSubscribable(t *testing.T, id uint) *catalog.Subscribable {
	t.Helper()
	item, err := catalog.ReconstructSubscribable(id, "itm_test", "Coffee Beans", 1500, "USD", true, time.Now(), time.Now())
	require.NoError(t, err)
	return item
}

func testSubscription(t *testing.T, id, userID uint) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.ReconstructSubscription(
		id, "sub_test", userID, "active",
		recurrence.Interval{Length: 1, Units: recurrence.UnitMonth},
		nil, nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return sub
}

func TestCreateLineItemUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger()

	t.Run("creates standalone line item without event", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscribableRepo := new(MockSubscribableRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		eventRepo := new(MockEventRepository)

		subscribableRepo.On("GetByID", ctx, uint(5)).Return(testSubscribable(t, 5), nil)
		lineItemRepo.On("Create", ctx, mock.AnythingOfType("*lineitem.SubscriptionLineItem")).Return(nil)

		uc := NewCreateLineItemUseCase(lineItemRepo, subscribableRepo, subscriptionRepo, eventRepo, passthroughTransactor{}, log)
		li, err := uc.Execute(ctx, CreateLineItemCommand{
			SubscribableID: 5,
			Quantity:       2,
			IntervalLength: 1,
			IntervalUnits:  "month",
		})

		require.NoError(t, err)
		require.NotNil(t, li)
		assert.False(t, li.HasSubscription())
		eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates owned line item and records created event", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscribableRepo := new(MockSubscribableRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		eventRepo := new(MockEventRepository)

		subscribableRepo.On("GetByID", ctx, uint(5)).Return(testSubscribable(t, 5), nil)
		subscriptionRepo.On("GetBySID", ctx, "sub_test").Return(testSubscription(t, 9, 1), nil)
		lineItemRepo.On("Create", ctx, mock.AnythingOfType("*lineitem.SubscriptionLineItem")).Return(nil)

		var recorded *subscription.Event
		eventRepo.On("Create", ctx, mock.AnythingOfType("*subscription.Event")).
			Run(func(args mock.Arguments) {
				recorded = args.Get(1).(*subscription.Event)
			}).
			Return(nil)

		uc := NewCreateLineItemUseCase(lineItemRepo, subscribableRepo, subscriptionRepo, eventRepo, passthroughTransactor{}, log)
		li, err := uc.Execute(ctx, CreateLineItemCommand{
			SubscribableID:  5,
			SubscriptionSID: "sub_test",
			Quantity:        1,
		})

		require.NoError(t, err)
		require.NotNil(t, li)
		require.NotNil(t, recorded)
		assert.Equal(t, uint(9), recorded.SubscriptionID())
		assert.Equal(t, lineitem.EventLineItemCreated, recorded.EventType())

		details := recorded.Details()
		assert.NotContains(t, details, dto.PayloadKeyDummyLineItem)
		assert.NotContains(t, details, dto.PayloadKeyIntervalUnits)
		assert.NotContains(t, details, dto.PayloadKeyIntervalLength)
		assert.NotContains(t, details, dto.PayloadKeyEndDate)
		assert.NotContains(t, details, dto.PayloadKeySourceLineItemID)
		assert.Contains(t, details, "quantity")
		assert.Contains(t, details, "subscribable_id")
	})

	t.Run("event write failure aborts creation", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscribableRepo := new(MockSubscribableRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		eventRepo := new(MockEventRepository)

		subscribableRepo.On("GetByID", ctx, uint(5)).Return(testSubscribable(t, 5), nil)
		subscriptionRepo.On("GetBySID", ctx, "sub_test").Return(testSubscription(t, 9, 1), nil)
		lineItemRepo.On("Create", ctx, mock.AnythingOfType("*lineitem.SubscriptionLineItem")).Return(nil)
		eventRepo.On("Create", ctx, mock.AnythingOfType("*subscription.Event")).Return(errors.New("insert failed"))

		uc := NewCreateLineItemUseCase(lineItemRepo, subscribableRepo, subscriptionRepo, eventRepo, passthroughTransactor{}, log)
		li, err := uc.Execute(ctx, CreateLineItemCommand{
			SubscribableID:  5,
			SubscriptionSID: "sub_test",
			Quantity:        1,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, subscription.ErrEventWriteFailed)
		assert.Nil(t, li)
	})

	t.Run("rejects invalid line item before touching the repository", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscribableRepo := new(MockSubscribableRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		eventRepo := new(MockEventRepository)

		subscribableRepo.On("GetByID", ctx, uint(5)).Return(testSubscribable(t, 5), nil)

		uc := NewCreateLineItemUseCase(lineItemRepo, subscribableRepo, subscriptionRepo, eventRepo, passthroughTransactor{}, log)
		li, err := uc.Execute(ctx, CreateLineItemCommand{
			SubscribableID: 5,
			Quantity:       0,
			IntervalLength: 1,
			IntervalUnits:  "month",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, lineitem.ErrQuantityNotPositive)
		assert.Nil(t, li)
		lineItemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown subscribable", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscribableRepo := new(MockSubscribableRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		eventRepo := new(MockEventRepository)

		subscribableRepo.On("GetBySID", ctx, "itm_missing").Return(nil, nil)

		uc := NewCreateLineItemUseCase(lineItemRepo, subscribableRepo, subscriptionRepo, eventRepo, passthroughTransactor{}, log)
		li, err := uc.Execute(ctx, CreateLineItemCommand{
			SubscribableSID: "itm_missing",
			Quantity:        1,
			IntervalLength:  1,
			IntervalUnits:   "month",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrSubscribableNotFound)
		assert.Nil(t, li)
	})
}
