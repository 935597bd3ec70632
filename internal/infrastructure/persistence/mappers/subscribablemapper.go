package mappers

import (
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/catalog"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/shared/mapper"
)

type SubscribableMapper interface {
	ToEntity(model *models.SubscribableModel) (*catalog.Subscribable, error)
	ToModel(entity *catalog.Subscribable) (*models.SubscribableModel, error)
	ToEntities(models []*models.SubscribableModel) ([]*catalog.Subscribable, error)
}

type SubscribableMapperImpl struct{}

func NewSubscribableMapper() SubscribableMapper {
	return &SubscribableMapperImpl{}
}

func (m *SubscribableMapperImpl) ToEntity(model *models.SubscribableModel) (*catalog.Subscribable, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructSubscribable(
		model.ID,
		model.SID,
		model.Name,
		model.PriceCents,
		model.Currency,
		model.Purchasable,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscribable entity: %w", err)
	}

	return entity, nil
}

func (m *SubscribableMapperImpl) ToModel(entity *catalog.Subscribable) (*models.SubscribableModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscribableModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		Name:        entity.Name(),
		PriceCents:  entity.PriceCents(),
		Currency:    entity.Currency(),
		Purchasable: entity.IsPurchasable(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *SubscribableMapperImpl) ToEntities(subscribableModels []*models.SubscribableModel) ([]*catalog.Subscribable, error) {
	return mapper.MapSlicePtrWithID(subscribableModels, m.ToEntity, func(model *models.SubscribableModel) uint {
		return model.ID
	})
}
