package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/domain/catalog"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/mappers"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/shared/db"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

type SubscribableRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscribableMapper
	logger logger.Interface
}

func NewSubscribableRepository(db *gorm.DB, logger logger.Interface) catalog.Repository {
	return &SubscribableRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscribableMapper(),
		logger: logger,
	}
}

func (r *SubscribableRepositoryImpl) Create(ctx context.Context, item *catalog.Subscribable) error {
	model, err := r.mapper.ToModel(item)
	if err != nil {
		r.logger.Errorw("failed to map subscribable entity to model", "error", err)
		return fmt.Errorf("failed to map subscribable entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscribable", "error", err)
		return fmt.Errorf("failed to create subscribable: %w", err)
	}

	if err := item.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscribable ID: %w", err)
	}

	return nil
}

func (r *SubscribableRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Subscribable, error) {
	var model models.SubscribableModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscribable by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscribable: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscribableRepositoryImpl) GetBySID(ctx context.Context, sid string) (*catalog.Subscribable, error) {
	var model models.SubscribableModel

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscribable by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get subscribable: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscribableRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*catalog.Subscribable, error) {
	if len(ids) == 0 {
		return map[uint]*catalog.Subscribable{}, nil
	}

	var subscribableModels []*models.SubscribableModel
	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Where("id IN ?", ids).
		Find(&subscribableModels).Error; err != nil {
		r.logger.Errorw("failed to get subscribables by IDs", "error", err)
		return nil, fmt.Errorf("failed to get subscribables: %w", err)
	}

	entities, err := r.mapper.ToEntities(subscribableModels)
	if err != nil {
		return nil, err
	}

	result := make(map[uint]*catalog.Subscribable, len(entities))
	for _, entity := range entities {
		result[entity.ID()] = entity
	}
	return result, nil
}

func (r *SubscribableRepositoryImpl) Update(ctx context.Context, item *catalog.Subscribable) error {
	model, err := r.mapper.ToModel(item)
	if err != nil {
		r.logger.Errorw("failed to map subscribable entity to model", "error", err)
		return fmt.Errorf("failed to map subscribable entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.SubscribableModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":        model.Name,
			"price_cents": model.PriceCents,
			"currency":    model.Currency,
			"purchasable": model.Purchasable,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscribable", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscribable: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrSubscribableNotFound
	}

	return nil
}

func (r *SubscribableRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*catalog.Subscribable, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Model(&models.SubscribableModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscribables", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscribables: %w", err)
	}

	var subscribableModels []*models.SubscribableModel
	if err := query.
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&subscribableModels).Error; err != nil {
		r.logger.Errorw("failed to list subscribables", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscribables: %w", err)
	}

	entities, err := r.mapper.ToEntities(subscribableModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
