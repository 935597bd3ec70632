package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

func ownedLineItem(t *testing.T, id, subscriptionID uint) *lineitem.SubscriptionLineItem {
	t.Helper()
	li, err := lineitem.ReconstructSubscriptionLineItem(
		id, "sli_test", 5, 2,
		recurrence.Interval{Length: 1, Units: recurrence.UnitMonth},
		0, nil, &subscriptionID, nil,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return li
}

func standaloneLineItem(t *testing.T, id uint) *lineitem.SubscriptionLineItem {
	t.Helper()
	li, err := lineitem.ReconstructSubscriptionLineItem(
		id, "sli_solo", 5, 2,
		recurrence.Interval{Length: 1, Units: recurrence.UnitMonth},
		0, nil, nil, nil,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return li
}

func TestUpdateLineItemUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger()

	t.Run("updates quantity and records updated event", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		eventRepo := new(MockEventRepository)

		lineItemRepo.On("GetBySID", ctx, "sli_test").Return(ownedLineItem(t, 3, 9), nil)
		lineItemRepo.On("Update", ctx, mock.AnythingOfType("*lineitem.SubscriptionLineItem")).Return(nil)

		var recorded *subscription.Event
		eventRepo.On("Create", ctx, mock.AnythingOfType("*subscription.Event")).
			Run(func(args mock.Arguments) {
				recorded = args.Get(1).(*subscription.Event)
			}).
			Return(nil)

		quantity := 7
		uc := NewUpdateLineItemUseCase(lineItemRepo, eventRepo, passthroughTransactor{}, log)
		li, err := uc.Execute(ctx, UpdateLineItemCommand{LineItemSID: "sli_test", Quantity: &quantity})

		require.NoError(t, err)
		assert.Equal(t, 7, li.Quantity())
		require.NotNil(t, recorded)
		assert.Equal(t, lineitem.EventLineItemUpdated, recorded.EventType())
		assert.Equal(t, float64(7), recorded.Details()["quantity"])
	})

	t.Run("standalone update records no event", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		eventRepo := new(MockEventRepository)

		lineItemRepo.On("GetBySID", ctx, "sli_solo").Return(standaloneLineItem(t, 4), nil)
		lineItemRepo.On("Update", ctx, mock.AnythingOfType("*lineitem.SubscriptionLineItem")).Return(nil)

		installments := 12
		uc := NewUpdateLineItemUseCase(lineItemRepo, eventRepo, passthroughTransactor{}, log)
		_, err := uc.Execute(ctx, UpdateLineItemCommand{LineItemSID: "sli_solo", Installments: &installments})

		require.NoError(t, err)
		eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("event write failure aborts update", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		eventRepo := new(MockEventRepository)

		lineItemRepo.On("GetBySID", ctx, "sli_test").Return(ownedLineItem(t, 3, 9), nil)
		lineItemRepo.On("Update", ctx, mock.AnythingOfType("*lineitem.SubscriptionLineItem")).Return(nil)
		eventRepo.On("Create", ctx, mock.AnythingOfType("*subscription.Event")).Return(errors.New("insert failed"))

		quantity := 7
		uc := NewUpdateLineItemUseCase(lineItemRepo, eventRepo, passthroughTransactor{}, log)
		_, err := uc.Execute(ctx, UpdateLineItemCommand{LineItemSID: "sli_test", Quantity: &quantity})

		require.Error(t, err)
		assert.ErrorIs(t, err, subscription.ErrEventWriteFailed)
	})

	t.Run("rejects zero interval on standalone line item", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		eventRepo := new(MockEventRepository)

		lineItemRepo.On("GetBySID", ctx, "sli_solo").Return(standaloneLineItem(t, 4), nil)

		zero := 0
		uc := NewUpdateLineItemUseCase(lineItemRepo, eventRepo, passthroughTransactor{}, log)
		_, err := uc.Execute(ctx, UpdateLineItemCommand{LineItemSID: "sli_solo", IntervalLength: &zero})

		require.Error(t, err)
		assert.ErrorIs(t, err, lineitem.ErrIntervalNotPositive)
		lineItemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		eventRepo := new(MockEventRepository)

		lineItemRepo.On("GetByID", ctx, uint(404)).Return(nil, nil)

		uc := NewUpdateLineItemUseCase(lineItemRepo, eventRepo, passthroughTransactor{}, log)
		_, err := uc.Execute(ctx, UpdateLineItemCommand{LineItemID: 404})

		assert.ErrorIs(t, err, lineitem.ErrLineItemNotFound)
	})
}

func TestDeleteLineItemUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger()

	t.Run("deletes and records destroyed event", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		eventRepo := new(MockEventRepository)

		lineItemRepo.On("GetBySID", ctx, "sli_test").Return(ownedLineItem(t, 3, 9), nil)
		lineItemRepo.On("Delete", ctx, uint(3)).Return(nil)

		var recorded *subscription.Event
		eventRepo.On("Create", ctx, mock.AnythingOfType("*subscription.Event")).
			Run(func(args mock.Arguments) {
				recorded = args.Get(1).(*subscription.Event)
			}).
			Return(nil)

		uc := NewDeleteLineItemUseCase(lineItemRepo, eventRepo, passthroughTransactor{}, log)
		err := uc.Execute(ctx, DeleteLineItemCommand{LineItemSID: "sli_test"})

		require.NoError(t, err)
		require.NotNil(t, recorded)
		assert.Equal(t, lineitem.EventLineItemDestroyed, recorded.EventType())
		assert.Equal(t, "sli_test", recorded.Details()["sid"])
	})

	t.Run("event write failure aborts delete", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		eventRepo := new(MockEventRepository)

		lineItemRepo.On("GetBySID", ctx, "sli_test").Return(ownedLineItem(t, 3, 9), nil)
		lineItemRepo.On("Delete", ctx, uint(3)).Return(nil)
		eventRepo.On("Create", ctx, mock.AnythingOfType("*subscription.Event")).Return(errors.New("insert failed"))

		uc := NewDeleteLineItemUseCase(lineItemRepo, eventRepo, passthroughTransactor{}, log)
		err := uc.Execute(ctx, DeleteLineItemCommand{LineItemSID: "sli_test"})

		require.Error(t, err)
		assert.ErrorIs(t, err, subscription.ErrEventWriteFailed)
	})

	t.Run("standalone delete records no event", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		eventRepo := new(MockEventRepository)

		lineItemRepo.On("GetBySID", ctx, "sli_solo").Return(standaloneLineItem(t, 4), nil)
		lineItemRepo.On("Delete", ctx, uint(4)).Return(nil)

		uc := NewDeleteLineItemUseCase(lineItemRepo, eventRepo, passthroughTransactor{}, log)
		err := uc.Execute(ctx, DeleteLineItemCommand{LineItemSID: "sli_solo"})

		require.NoError(t, err)
		eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
