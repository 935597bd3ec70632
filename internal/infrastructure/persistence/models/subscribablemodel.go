package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/shared/constants"
)

// SubscribableModel is the persistence model for catalog items eligible
// for recurring purchase.
type SubscribableModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: itm_xxx"`
	Name        string `gorm:"not null;size:255"`
	PriceCents  int64  `gorm:"not null"`
	Currency    string `gorm:"not null;size:3"`
	Purchasable bool   `gorm:"not null;default:true;index:idx_subscribable_purchasable"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscribableModel) TableName() string {
	return constants.TableSubscribables
}
