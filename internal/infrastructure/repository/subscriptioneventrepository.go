package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/mappers"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/shared/db"
	"github.com/loopcart-io/loopcart/internal/shared/logger"
)

// SubscriptionEventRepositoryImpl persists the append-only audit trail.
// There is deliberately no update or delete path.
type SubscriptionEventRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EventMapper
	logger logger.Interface
}

func NewSubscriptionEventRepository(db *gorm.DB, logger logger.Interface) subscription.EventRepository {
	return &SubscriptionEventRepositoryImpl{
		db:     db,
		mapper: mappers.NewEventMapper(),
		logger: logger,
	}
}

func (r *SubscriptionEventRepositoryImpl) Create(ctx context.Context, event *subscription.Event) error {
	model, err := r.mapper.ToModel(event)
	if err != nil {
		r.logger.Errorw("failed to map event entity to model", "error", err)
		return fmt.Errorf("failed to map event entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription event", "error", err, "event_type", event.EventType())
		return fmt.Errorf("failed to create subscription event: %w", err)
	}

	if err := event.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set event ID: %w", err)
	}

	return nil
}

func (r *SubscriptionEventRepositoryImpl) ListBySubscriptionID(ctx context.Context, subscriptionID uint, page, pageSize int) ([]*subscription.Event, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.SubscriptionEventModel{}).
		Where("subscription_id = ?", subscriptionID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscription events", "subscription_id", subscriptionID, "error", err)
		return nil, 0, fmt.Errorf("failed to count subscription events: %w", err)
	}

	var eventModels []*models.SubscriptionEventModel
	if err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&eventModels).Error; err != nil {
		r.logger.Errorw("failed to list subscription events", "subscription_id", subscriptionID, "error", err)
		return nil, 0, fmt.Errorf("failed to list subscription events: %w", err)
	}

	entities, err := r.mapper.ToEntities(eventModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
