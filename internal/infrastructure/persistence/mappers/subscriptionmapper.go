package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/shared/recurrence"
	"github.com/loopcart-io/loopcart/internal/domain/subscription"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
	"github.com/loopcart-io/loopcart/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
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

	interval := recurrence.Interval{
		Length: model.IntervalLength,
		Units:  recurrence.Unit(model.IntervalUnits),
	}

	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.SID,
		model.UserID,
		model.Status,
		interval,
		shipping,
		billing,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
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

	return &models.SubscriptionModel{
		ID:              entity.ID(),
		SID:             entity.SID(),
		UserID:          entity.UserID(),
		Status:          entity.Status(),
		IntervalLength:  entity.Interval().Length,
		IntervalUnits:   entity.Interval().Units.String(),
		ShippingAddress: shipping,
		BillingAddress:  billing,
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSlicePtrWithID(subscriptionModels, m.ToEntity, func(model *models.SubscriptionModel) uint {
		return model.ID
	})
}

type EventMapper interface {
	ToEntity(model *models.SubscriptionEventModel) (*subscription.Event, error)
	ToModel(entity *subscription.Event) (*models.SubscriptionEventModel, error)
	ToEntities(models []*models.SubscriptionEventModel) ([]*subscription.Event, error)
}

type EventMapperImpl struct{}

func NewEventMapper() EventMapper {
	return &EventMapperImpl{}
}

func (m *EventMapperImpl) ToEntity(model *models.SubscriptionEventModel) (*subscription.Event, error) {
	if model == nil {
		return nil, nil
	}

	var details map[string]any
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event details: %w", err)
		}
	}

	entity, err := subscription.ReconstructEvent(
		model.ID,
		model.SID,
		model.SubscriptionID,
		model.EventType,
		details,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription event: %w", err)
	}

	return entity, nil
}

func (m *EventMapperImpl) ToModel(entity *subscription.Event) (*models.SubscriptionEventModel, error) {
	if entity == nil {
		return nil, nil
	}

	details, err := json.Marshal(entity.Details())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event details: %w", err)
	}

	return &models.SubscriptionEventModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		SubscriptionID: entity.SubscriptionID(),
		EventType:      entity.EventType(),
		Details:        details,
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

func (m *EventMapperImpl) ToEntities(eventModels []*models.SubscriptionEventModel) ([]*subscription.Event, error) {
	return mapper.MapSlicePtrWithID(eventModels, m.ToEntity, func(model *models.SubscriptionEventModel) uint {
		return model.ID
	})
}
