package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/loopcart-io/loopcart/internal/shared/constants"
)

// OrderModel is the persistence model for orders.
type OrderModel struct {
	ID              uint   `gorm:"primarykey"`
	SID             string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: ord_xxx"`
	UserID          uint   `gorm:"not null;index:idx_user_order"`
	State           string `gorm:"not null;size:20;index:idx_order_state"`
	ShippingAddress datatypes.JSON
	BillingAddress  datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}

// OrderLineItemModel is the persistence model for order lines.
type OrderLineItemModel struct {
	ID             uint   `gorm:"primarykey"`
	OrderID        uint   `gorm:"not null;index:idx_order_line_order"`
	SubscribableID uint   `gorm:"not null;index:idx_order_line_subscribable"`
	Quantity       int    `gorm:"not null"`
	UnitPriceCents int64  `gorm:"not null"`
	Currency       string `gorm:"not null;size:3"`
	Description    string `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (OrderLineItemModel) TableName() string {
	return constants.TableOrderLineItems
}
