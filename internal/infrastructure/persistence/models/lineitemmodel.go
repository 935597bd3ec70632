package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/shared/constants"
)

// SubscriptionLineItemModel is the persistence model for subscription line
// items. This is the anti-corruption layer between domain and database.
type SubscriptionLineItemModel struct {
	ID               uint   `gorm:"primarykey"`
	SID              string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: sli_xxx"`
	SubscribableID   uint   `gorm:"not null;index:idx_line_item_subscribable"`
	Quantity         int    `gorm:"not null"`
	IntervalLength   int    `gorm:"not null;default:0"`
	IntervalUnits    string `gorm:"size:10;default:''"`
	Installments     int    `gorm:"not null;default:0"`
	EndDate          *time.Time
	SubscriptionID   *uint `gorm:"index:idx_line_item_subscription"`
	SourceLineItemID *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionLineItemModel) TableName() string {
	return constants.TableSubscriptionLineItems
}
