package mappers

import (
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/lineitem"
	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/shared/mapper"
)

type LineItemMapper interface {
	ToEntity(model *models.SubscriptionLineItemModel) (*lineitem.SubscriptionLineItem, error)
	ToModel(entity *lineitem.SubscriptionLineItem) (*models.SubscriptionLineItemModel, error)
	ToEntities(models []*models.SubscriptionLineItemModel) ([]*lineitem.SubscriptionLineItem, error)
}

type LineItemMapperImpl struct{}

func NewLineItemMapper() LineItemMapper {
	return &LineItemMapperImpl{}
}

func (m *LineItemMapperImpl) ToEntity(model *models.SubscriptionLineItemModel) (*lineitem.SubscriptionLineItem, error) {
	if model == nil {
		return nil, nil
	}

	interval := recurrence.Interval{
		Length: model.IntervalLength,
		Units:  recurrence.Unit(model.IntervalUnits),
	}

	entity, err := lineitem.ReconstructSubscriptionLineItem(
		model.ID,
		model.SID,
		model.SubscribableID,
		model.Quantity,
		interval,
		model.Installments,
		model.EndDate,
		model.SubscriptionID,
		model.SourceLineItemID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct line item entity: %w", err)
	}

	return entity, nil
}

func (m *LineItemMapperImpl) ToModel(entity *lineitem.SubscriptionLineItem) (*models.SubscriptionLineItemModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionLineItemModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		SubscribableID:   entity.SubscribableID(),
		Quantity:         entity.Quantity(),
		IntervalLength:   entity.Interval().Length,
		IntervalUnits:    entity.Interval().Units.String(),
		Installments:     entity.Installments(),
		EndDate:          entity.EndDate(),
		SubscriptionID:   entity.SubscriptionID(),
		SourceLineItemID: entity.SourceLineItemID(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *LineItemMapperImpl) ToEntities(lineItemModels []*models.SubscriptionLineItemModel) ([]*lineitem.SubscriptionLineItem, error) {
	return mapper.MapSlicePtrWithID(lineItemModels, m.ToEntity, func(model *models.SubscriptionLineItemModel) uint {
		return model.ID
	})
}
