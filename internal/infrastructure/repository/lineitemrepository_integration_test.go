package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/shared/db"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.SubscriptionLineItemModel{},
		&models.SubscriptionModel{},
		&models.SubscriptionEventModel{},
	)
	require.NoError(t, err)

	return gdb
}

func newTestLineItem(t *testing.T, subscriptionID *uint) *lineitem.SubscriptionLineItem {
	t.Helper()
	interval := recurrence.Interval{Length: 1, Units: recurrence.UnitMonth}
	li, err := lineitem.NewSubscriptionLineItem(5, 2, interval, 0, subscriptionID, nil)
	require.NoError(t, err)
	return li
}

func TestLineItemRepository_CreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewLineItemRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	li := newTestLineItem(t, nil)
	require.NoError(t, repo.Create(ctx, li))
	assert.NotZero(t, li.ID())

	found, err := repo.GetByID(ctx, li.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, li.SID(), found.SID())
	assert.Equal(t, 2, found.Quantity())
	assert.Equal(t, recurrence.UnitMonth, found.Interval().Units)

	bySID, err := repo.GetBySID(ctx, li.SID())
	require.NoError(t, err)
	require.NotNil(t, bySID)
	assert.Equal(t, li.ID(), bySID.ID())

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLineItemRepository_UpdateAndDelete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewLineItemRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	li := newTestLineItem(t, nil)
	require.NoError(t, repo.Create(ctx, li))

	require.NoError(t, li.UpdateQuantity(9))
	require.NoError(t, repo.Update(ctx, li))

	found, err := repo.GetByID(ctx, li.ID())
	require.NoError(t, err)
	assert.Equal(t, 9, found.Quantity())

	require.NoError(t, repo.Delete(ctx, li.ID()))
	gone, err := repo.GetByID(ctx, li.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.ErrorIs(t, repo.Delete(ctx, li.ID()), lineitem.ErrLineItemNotFound)
}

func TestLineItemRepository_List(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewLineItemRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	subID := uint(7)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newTestLineItem(t, &subID)))
	}
	require.NoError(t, repo.Create(ctx, newTestLineItem(t, nil)))

	items, total, err := repo.List(ctx, lineitem.Filter{SubscriptionID: &subID, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 3)

	all, total, err := repo.List(ctx, lineitem.Filter{Page: 1, PageSize: 2, SortBy: "id", SortDesc: true})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, all, 2)
	assert.Greater(t, all[0].ID(), all[1].ID())
}

func TestLineItemRepository_TransactionRollback(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewLogger()
	repo := NewLineItemRepository(gdb, log)
	eventRepo := NewSubscriptionEventRepository(gdb, log)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	subID := uint(7)
	li := newTestLineItem(t, &subID)

	// Simulate the service-layer pattern: row write then event write in one
	// transaction. The failed event write must roll back the row write.
	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, li); err != nil {
			return err
		}
		event, err := subscription.NewEvent(subID, lineitem.EventLineItemCreated, map[string]any{"sid": li.SID()})
		if err != nil {
			return err
		}
		if err := eventRepo.Create(txCtx, event); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.SubscriptionLineItemModel{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, gdb.Model(&models.SubscriptionEventModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
