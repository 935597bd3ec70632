package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/order"
	"github.com/loopcart-io/loopcart/internal/domain/shared/address"
	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/domain/user"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

func previewFixtures(t *testing.T, subShipping *address.Address) (*lineitem.SubscriptionLineItem, *subscription.Subscription, *user.User) {
	t.Helper()

	subID := uint(9)
	li, err := lineitem.ReconstructSubscriptionLineItem(
		3, "sli_test", 5, 2,
		recurrence.Interval{Length: 1, Units: recurrence.UnitMonth},
		0, nil, &subID, nil,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	sub, err := subscription.ReconstructSubscription(
		9, "sub_test", 1, "active",
		recurrence.Interval{Length: 1, Units: recurrence.UnitMonth},
		subShipping, nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	owner, err := user.ReconstructUser(
		1, "usr_test", "jo@example.com", "Jo",
		&address.Address{Name: "Jo", Line1: "1 Default Way", City: "Portland", Country: "US"},
		&address.Address{Name: "Jo", Line1: "2 Billing Rd", City: "Portland", Country: "US"},
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	return li, sub, owner
}

func TestPreviewLineItemUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger()
	builtLines := []lineitem.BuiltLine{
		{SubscribableID: 5, Quantity: 2, UnitPriceCents: 1500, Currency: "USD", Description: "Coffee Beans"},
	}

	t.Run("returns nil when builder yields nothing", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		orderRepo := new(MockOrderRepository)
		userRepo := new(MockUserRepository)
		builder := new(MockOrderLineBuilder)

		li, sub, _ := previewFixtures(t, nil)
		lineItemRepo.On("GetBySID", ctx, "sli_test").Return(li, nil)
		subscriptionRepo.On("GetByID", ctx, uint(9)).Return(sub, nil)
		builder.On("Build", ctx, mock.Anything).Return([]lineitem.BuiltLine{}, nil)

		uc := NewPreviewLineItemUseCase(lineItemRepo, subscriptionRepo, orderRepo, userRepo, builder, log)
		po, err := uc.Execute(ctx, PreviewLineItemCommand{LineItemSID: "sli_test"})

		require.NoError(t, err)
		assert.Nil(t, po)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("subscription address wins over user default", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		orderRepo := new(MockOrderRepository)
		userRepo := new(MockUserRepository)
		builder := new(MockOrderLineBuilder)

		subShipping := &address.Address{Name: "Jo", Line1: "9 Override St", City: "Seattle", Country: "US"}
		li, sub, owner := previewFixtures(t, subShipping)
		lineItemRepo.On("GetBySID", ctx, "sli_test").Return(li, nil)
		subscriptionRepo.On("GetByID", ctx, uint(9)).Return(sub, nil)
		userRepo.On("GetByID", ctx, uint(1)).Return(owner, nil)
		builder.On("Build", ctx, mock.Anything).Return(builtLines, nil)

		uc := NewPreviewLineItemUseCase(lineItemRepo, subscriptionRepo, orderRepo, userRepo, builder, log)
		po, err := uc.Execute(ctx, PreviewLineItemCommand{LineItemSID: "sli_test"})

		require.NoError(t, err)
		require.NotNil(t, po)
		require.NotNil(t, po.ShippingAddress())
		assert.Equal(t, "9 Override St", po.ShippingAddress().Line1)
		// Billing falls back to the user's default.
		require.NotNil(t, po.BillingAddress())
		assert.Equal(t, "2 Billing Rd", po.BillingAddress().Line1)
		assert.Equal(t, int64(3000), po.TotalCents())
	})

	t.Run("user defaults when subscription has no addresses", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		orderRepo := new(MockOrderRepository)
		userRepo := new(MockUserRepository)
		builder := new(MockOrderLineBuilder)

		li, sub, owner := previewFixtures(t, nil)
		lineItemRepo.On("GetBySID", ctx, "sli_test").Return(li, nil)
		subscriptionRepo.On("GetByID", ctx, uint(9)).Return(sub, nil)
		userRepo.On("GetByID", ctx, uint(1)).Return(owner, nil)
		builder.On("Build", ctx, mock.Anything).Return(builtLines, nil)

		uc := NewPreviewLineItemUseCase(lineItemRepo, subscriptionRepo, orderRepo, userRepo, builder, log)
		po, err := uc.Execute(ctx, PreviewLineItemCommand{LineItemSID: "sli_test"})

		require.NoError(t, err)
		require.NotNil(t, po)
		assert.Equal(t, "1 Default Way", po.ShippingAddress().Line1)
		assert.Equal(t, "2 Billing Rd", po.BillingAddress().Line1)
	})

	t.Run("source aggregates stay unmodified", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		orderRepo := new(MockOrderRepository)
		userRepo := new(MockUserRepository)
		builder := new(MockOrderLineBuilder)

		li, sub, owner := previewFixtures(t, nil)
		qtyBefore := li.Quantity()
		updatedBefore := li.UpdatedAt()
		ownerShippingBefore := owner.ShippingAddress().Line1

		lineItemRepo.On("GetBySID", ctx, "sli_test").Return(li, nil)
		subscriptionRepo.On("GetByID", ctx, uint(9)).Return(sub, nil)
		userRepo.On("GetByID", ctx, uint(1)).Return(owner, nil)
		builder.On("Build", ctx, mock.Anything).Return(builtLines, nil)

		uc := NewPreviewLineItemUseCase(lineItemRepo, subscriptionRepo, orderRepo, userRepo, builder, log)
		po, err := uc.Execute(ctx, PreviewLineItemCommand{LineItemSID: "sli_test"})

		require.NoError(t, err)
		require.NotNil(t, po)

		// Mutating the preview's copies must not reach the sources.
		po.ShippingAddress().Line1 = "tampered"
		assert.Equal(t, qtyBefore, li.Quantity())
		assert.Equal(t, updatedBefore, li.UpdatedAt())
		assert.Equal(t, ownerShippingBefore, owner.ShippingAddress().Line1)

		lineItemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		subscriptionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("subscription addresses replace stale source order addresses", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		orderRepo := new(MockOrderRepository)
		userRepo := new(MockUserRepository)
		builder := new(MockOrderLineBuilder)

		subID := uint(9)
		srcLineID := uint(40)
		li, err := lineitem.ReconstructSubscriptionLineItem(
			3, "sli_test", 5, 2,
			recurrence.Interval{Length: 1, Units: recurrence.UnitMonth},
			0, nil, &subID, &srcLineID,
			time.Now(), time.Now(),
		)
		require.NoError(t, err)

		_, sub, owner := previewFixtures(t, nil)
		src, err := order.ReconstructOrder(
			12, "ord_src", 1, "completed",
			&address.Address{Name: "Jo", Line1: "99 Stale Source St", City: "Denver", Country: "US"},
			&address.Address{Name: "Jo", Line1: "98 Stale Source St", City: "Denver", Country: "US"},
			time.Now(), time.Now(),
		)
		require.NoError(t, err)

		lineItemRepo.On("GetBySID", ctx, "sli_test").Return(li, nil)
		subscriptionRepo.On("GetByID", ctx, uint(9)).Return(sub, nil)
		orderRepo.On("GetByLineItemID", ctx, srcLineID).Return(src, nil)
		userRepo.On("GetByID", ctx, uint(1)).Return(owner, nil)
		builder.On("Build", ctx, mock.Anything).Return(builtLines, nil)

		uc := NewPreviewLineItemUseCase(lineItemRepo, subscriptionRepo, orderRepo, userRepo, builder, log)
		po, err := uc.Execute(ctx, PreviewLineItemCommand{LineItemSID: "sli_test"})

		require.NoError(t, err)
		require.NotNil(t, po)
		// The owning subscription governs addresses: its explicit ones when
		// set, the owner's defaults otherwise. The cloned order's addresses
		// never leak through.
		require.NotNil(t, po.ShippingAddress())
		assert.Equal(t, "1 Default Way", po.ShippingAddress().Line1)
		require.NotNil(t, po.BillingAddress())
		assert.Equal(t, "2 Billing Rd", po.BillingAddress().Line1)
	})

	t.Run("builds against empty shell without subscription", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		orderRepo := new(MockOrderRepository)
		userRepo := new(MockUserRepository)
		builder := new(MockOrderLineBuilder)

		li, err := lineitem.ReconstructSubscriptionLineItem(
			4, "sli_solo", 5, 1,
			recurrence.Interval{Length: 1, Units: recurrence.UnitMonth},
			0, nil, nil, nil, time.Now(), time.Now(),
		)
		require.NoError(t, err)
		lineItemRepo.On("GetBySID", ctx, "sli_solo").Return(li, nil)
		builder.On("Build", ctx, mock.Anything).Return(builtLines, nil)

		uc := NewPreviewLineItemUseCase(lineItemRepo, subscriptionRepo, orderRepo, userRepo, builder, log)
		po, err := uc.Execute(ctx, PreviewLineItemCommand{LineItemSID: "sli_solo"})

		require.NoError(t, err)
		require.NotNil(t, po)
		assert.Zero(t, po.UserID())
		assert.Nil(t, po.ShippingAddress())
		assert.Nil(t, po.BillingAddress())
		assert.Equal(t, int64(3000), po.TotalCents())
		subscriptionRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("keeps cloned source addresses without subscription", func(t *testing.T) {
		lineItemRepo := new(MockLineItemRepository)
		subscriptionRepo := new(MockSubscriptionRepository)
		orderRepo := new(MockOrderRepository)
		userRepo := new(MockUserRepository)
		builder := new(MockOrderLineBuilder)

		srcLineID := uint(41)
		li, err := lineitem.ReconstructSubscriptionLineItem(
			6, "sli_conv", 5, 1,
			recurrence.Interval{Length: 1, Units: recurrence.UnitMonth},
			0, nil, nil, &srcLineID, time.Now(), time.Now(),
		)
		require.NoError(t, err)

		src, err := order.ReconstructOrder(
			13, "ord_src", 7, "completed",
			&address.Address{Name: "Sam", Line1: "5 Conversion Ave", City: "Austin", Country: "US"},
			nil,
			time.Now(), time.Now(),
		)
		require.NoError(t, err)

		lineItemRepo.On("GetBySID", ctx, "sli_conv").Return(li, nil)
		orderRepo.On("GetByLineItemID", ctx, srcLineID).Return(src, nil)
		builder.On("Build", ctx, mock.Anything).Return(builtLines, nil)

		uc := NewPreviewLineItemUseCase(lineItemRepo, subscriptionRepo, orderRepo, userRepo, builder, log)
		po, err := uc.Execute(ctx, PreviewLineItemCommand{LineItemSID: "sli_conv"})

		require.NoError(t, err)
		require.NotNil(t, po)
		assert.Equal(t, uint(7), po.UserID())
		require.NotNil(t, po.ShippingAddress())
		assert.Equal(t, "5 Conversion Ave", po.ShippingAddress().Line1)
		assert.Nil(t, po.BillingAddress())
	})
}
