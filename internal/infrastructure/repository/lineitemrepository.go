package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/mappers"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/shared/db"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

// allowedLineItemSortByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedLineItemSortByFields = map[string]bool{
	"id":              true,
	"sid":             true,
	"subscribable_id": true,
	"subscription_id": true,
	"quantity":        true,
	"created_at":      true,
	"updated_at":      true,
}

type LineItemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LineItemMapper
	logger logger.Interface
}

func NewLineItemRepository(db *gorm.DB, logger logger.Interface) lineitem.Repository {
	return &LineItemRepositoryImpl{
		db:     db,
		mapper: mappers.NewLineItemMapper(),
		logger: logger,
	}
}

func (r *LineItemRepositoryImpl) Create(ctx context.Context, lineItemEntity *lineitem.SubscriptionLineItem) error {
	model, err := r.mapper.ToModel(lineItemEntity)
	if err != nil {
		r.logger.Errorw("failed to map line item entity to model", "error", err)
		return fmt.Errorf("failed to map line item entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create line item in database", "error", err)
		return fmt.Errorf("failed to create line item: %w", err)
	}

	if err := lineItemEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set line item ID", "error", err)
		return fmt.Errorf("failed to set line item ID: %w", err)
	}

	return nil
}

func (r *LineItemRepositoryImpl) GetByID(ctx context.Context, id uint) (*lineitem.SubscriptionLineItem, error) {
	var model models.SubscriptionLineItemModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get line item by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get line item: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *LineItemRepositoryImpl) GetBySID(ctx context.Context, sid string) (*lineitem.SubscriptionLineItem, error) {
	var model models.SubscriptionLineItemModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get line item by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get line item: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *LineItemRepositoryImpl) GetBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*lineitem.SubscriptionLineItem, error) {
	var lineItemModels []*models.SubscriptionLineItemModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at ASC").
		Find(&lineItemModels).Error; err != nil {
		r.logger.Errorw("failed to get line items by subscription ID", "subscription_id", subscriptionID, "error", err)
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}

	return r.mapper.ToEntities(lineItemModels)
}

func (r *LineItemRepositoryImpl) Update(ctx context.Context, lineItemEntity *lineitem.SubscriptionLineItem) error {
	model, err := r.mapper.ToModel(lineItemEntity)
	if err != nil {
		r.logger.Errorw("failed to map line item entity to model", "error", err)
		return fmt.Errorf("failed to map line item entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.SubscriptionLineItemModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"quantity":        model.Quantity,
			"interval_length": model.IntervalLength,
			"interval_units":  model.IntervalUnits,
			"installments":    model.Installments,
			"end_date":        model.EndDate,
			"subscription_id": model.SubscriptionID,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update line item", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update line item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return lineitem.ErrLineItemNotFound
	}

	return nil
}

func (r *LineItemRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Delete(&models.SubscriptionLineItemModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete line item", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete line item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return lineitem.ErrLineItemNotFound
	}

	return nil
}

func (r *LineItemRepositoryImpl) List(ctx context.Context, filter lineitem.Filter) ([]*lineitem.SubscriptionLineItem, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Model(&models.SubscriptionLineItemModel{})

	if filter.SubscriptionID != nil {
		query = query.Where("subscription_id = ?", *filter.SubscriptionID)
	}
	if filter.SubscribableID != nil {
		query = query.Where("subscribable_id = ?", *filter.SubscribableID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count line items", "error", err)
		return nil, 0, fmt.Errorf("failed to count line items: %w", err)
	}

	sortBy := "created_at"
	if filter.SortBy != "" && allowedLineItemSortByFields[filter.SortBy] {
		sortBy = filter.SortBy
	}
	order := sortBy + " ASC"
	if filter.SortDesc {
		order = sortBy + " DESC"
	}

	var lineItemModels []*models.SubscriptionLineItemModel
	if err := query.
		Order(order).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&lineItemModels).Error; err != nil {
		r.logger.Errorw("failed to list line items", "error", err)
		return nil, 0, fmt.Errorf("failed to list line items: %w", err)
	}

	entities, err := r.mapper.ToEntities(lineItemModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
