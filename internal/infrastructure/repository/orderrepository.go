package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/domain/order"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/mappers"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/shared/db"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
	logger logger.Interface
}

func NewOrderRepository(db *gorm.DB, logger logger.Interface) order.Repository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrderMapper(),
		logger: logger,
	}
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get order by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrderRepositoryImpl) GetByLineItemID(ctx context.Context, lineItemID uint) (*order.Order, error) {
	var line models.OrderLineItemModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&line, lineItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get order line", "line_item_id", lineItemID, "error", err)
		return nil, fmt.Errorf("failed to get order line: %w", err)
	}

	return r.GetByID(ctx, line.OrderID)
}

type OrderLineItemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderLineItemMapper
	logger logger.Interface
}

func NewOrderLineItemRepository(db *gorm.DB, logger logger.Interface) order.LineItemRepository {
	return &OrderLineItemRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrderLineItemMapper(),
		logger: logger,
	}
}

func (r *OrderLineItemRepositoryImpl) GetByID(ctx context.Context, id uint) (*order.LineItem, error) {
	var model models.OrderLineItemModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get order line by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get order line: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrderLineItemRepositoryImpl) GetByOrderID(ctx context.Context, orderID uint) ([]*order.LineItem, error) {
	var lineModels []*models.OrderLineItemModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&lineModels).Error; err != nil {
		r.logger.Errorw("failed to get order lines", "order_id", orderID, "error", err)
		return nil, fmt.Errorf("failed to get order lines: %w", err)
	}

	return r.mapper.ToEntities(lineModels)
}
