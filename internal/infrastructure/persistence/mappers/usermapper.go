package mappers

import (
	"fmt"

	"github.com/loopcart-io/loopcart/internal/domain/user"
	"github.com/loopcart-io/loopcart/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
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

	entity, err := user.ReconstructUser(
		model.ID,
		model.SID,
		model.Email,
		model.Name,
		shipping,
		billing,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
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

	return &models.UserModel{
		ID:              entity.ID(),
		SID:             entity.SID(),
		Email:           entity.Email(),
		Name:            entity.Name(),
		ShippingAddress: shipping,
		BillingAddress:  billing,
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}
