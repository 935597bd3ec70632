package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/shared/constants"
)

// UserModel is the persistence model for users.
type UserModel struct {
	ID              uint   `gorm:"primarykey"`
	SID             string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: usr_xxx"`
	Email           string `gorm:"uniqueIndex;not null;size:255"`
	Name            string `gorm:"size:255"`
	ShippingAddress datatypes.JSON
	BillingAddress  datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
