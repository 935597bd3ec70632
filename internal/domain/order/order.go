package order

import (
	"fmt"
	"time"

	"github.com/loopcart-io/loopcart/internal/domain/shared/address"
	"github.com/loopcart-io/loopcart/internal/shared/constants"
	"github.com/loopcart-io/loopcart/internal/shared/id"
)

// Order is the order aggregate consumed by the subscription flow. Real
// order placement lives elsewhere; this model covers what recurring
// billing needs: ownership, addresses, and a non-persisting clone used to
// derive preview orders.
type Order struct {
	id              uint
	sid             string
	userID          uint
	state           string
	shippingAddress *address.Address
	billingAddress  *address.Address
	createdAt       time.Time
	updatedAt       time.Time
}

// NewOrder creates a new empty order shell for the given user.
func NewOrder(userID uint) (*Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixOrder, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Order{
		sid:       sid,
		userID:    userID,
		state:     constants.OrderStateCart,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructOrder reconstructs an order from persistence.
func ReconstructOrder(
	orderID uint,
	sid string,
	userID uint,
	state string,
	shippingAddress, billingAddress *address.Address,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if orderID == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Order{
		id:              orderID,
		sid:             sid,
		userID:          userID,
		state:           state,
		shippingAddress: address.Copy(shippingAddress),
		billingAddress:  address.Copy(billingAddress),
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (o *Order) ID() uint      { return o.id }
func (o *Order) SID() string   { return o.sid }
func (o *Order) UserID() uint  { return o.userID }
func (o *Order) State() string { return o.state }

// ShippingAddress returns a copy of the ship-to address, or nil when unset.
func (o *Order) ShippingAddress() *address.Address {
	return address.Copy(o.shippingAddress)
}

// BillingAddress returns a copy of the bill-to address, or nil when unset.
func (o *Order) BillingAddress() *address.Address {
	return address.Copy(o.billingAddress)
}

func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// SetID sets the order ID (only for persistence layer use).
func (o *Order) SetID(orderID uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if orderID == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = orderID
	return nil
}

// SetShippingAddress replaces the ship-to address.
func (o *Order) SetShippingAddress(a *address.Address) {
	o.shippingAddress = address.Copy(a)
	o.updatedAt = time.Now().UTC()
}

// SetBillingAddress replaces the bill-to address.
func (o *Order) SetBillingAddress(a *address.Address) {
	o.billingAddress = address.Copy(a)
	o.updatedAt = time.Now().UTC()
}

// Clone returns an unpersisted shallow duplicate of the order, stripped of
// its identifiers. The clone never touches the original: addresses are
// copied, and the clone cannot be saved until given a fresh SID by the
// persistence layer.
func (o *Order) Clone() *Order {
	now := time.Now().UTC()
	return &Order{
		userID:          o.userID,
		state:           constants.OrderStateCart,
		shippingAddress: address.Copy(o.shippingAddress),
		billingAddress:  address.Copy(o.billingAddress),
		createdAt:       now,
		updatedAt:       now,
	}
}
