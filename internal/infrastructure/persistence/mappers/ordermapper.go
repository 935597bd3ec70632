package mappers

import (
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/order"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/shared/mapper"
)

type OrderMapper interface {
	ToEntity(model *models.OrderModel) (*order.Order, error)
	ToModel(entity *order.Order) (*models.OrderModel, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToEntity(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	shipping, err := addressFromJSON(model.ShippingAddress)
	if err != nil {
		return nil, err
	}
	billing, err := addressFromJSON(model.BillingAddress)
	if err != nil {
		return nil, err
	}

	entity, err := order.ReconstructOrder(
		model.ID,
		model.SID,
		model.UserID,
		model.State,
		shipping,
		billing,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order entity: %w", err)
	}

	return entity, nil
}

func (m *OrderMapperImpl) ToModel(entity *order.Order) (*models.OrderModel, error) {
	if entity == nil {
		return nil, nil
	}

	shipping, err := addressToJSON(entity.ShippingAddress())
	if err != nil {
		return nil, err
	}
	billing, err := addressToJSON(entity.BillingAddress())
	if err != nil {
		return nil, err
	}

	return &models.OrderModel{
		ID:              entity.ID(),
		SID:             entity.SID(),
		UserID:          entity.UserID(),
		State:           entity.State(),
		ShippingAddress: shipping,
		BillingAddress:  billing,
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

type OrderLineItemMapper interface {
	ToEntity(model *models.OrderLineItemModel) (*order.LineItem, error)
	ToEntities(models []*models.OrderLineItemModel) ([]*order.LineItem, error)
}

type OrderLineItemMapperImpl struct{}

func NewOrderLineItemMapper() OrderLineItemMapper {
	return &OrderLineItemMapperImpl{}
}

func (m *OrderLineItemMapperImpl) ToEntity(model *models.OrderLineItemModel) (*order.LineItem, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := order.ReconstructLineItem(
		model.ID,
		model.OrderID,
		model.SubscribableID,
		model.Quantity,
		model.UnitPriceCents,
		model.Currency,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order line entity: %w", err)
	}

	return entity, nil
}

func (m *OrderLineItemMapperImpl) ToEntities(lineModels []*models.OrderLineItemModel) ([]*order.LineItem, error) {
	return mapper.MapSlicePtrWithID(lineModels, m.ToEntity, func(model *models.OrderLineItemModel) uint {
		return model.ID
	})
}
