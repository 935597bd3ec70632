package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/shared/constants"
)

// SubscriptionModel is the persistence model for subscriptions.
type SubscriptionModel struct {
	ID              uint   `gorm:"primarykey"`
	SID             string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: sub_xxx"`
	UserID          uint   `gorm:"not null;index:idx_user_subscription"`
	Status          string `gorm:"not null;size:20;index:idx_subscription_status"`
	IntervalLength  int    `gorm:"not null"`
	IntervalUnits   string `gorm:"not null;size:10"`
	ShippingAddress datatypes.JSON
	BillingAddress  datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// SubscriptionEventModel is the persistence model for the append-only
// subscription audit trail. Rows are inserted, never updated or deleted.
type SubscriptionEventModel struct {
	ID             uint           `gorm:"primarykey"`
	SID            string         `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: evt_xxx"`
	SubscriptionID uint           `gorm:"not null;index:idx_event_subscription"`
	EventType      string         `gorm:"not null;size:50;index:idx_event_type"`
	Details        datatypes.JSON `gorm:"not null"`
	CreatedAt      time.Time      `gorm:"index:idx_event_created_at"`
}

// TableName specifies the table name for GORM
func (SubscriptionEventModel) TableName() string {
	return constants.TableSubscriptionEvents
}
