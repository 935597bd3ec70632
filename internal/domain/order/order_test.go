package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopcart-io/loopcart/internal/domain/shared/address"
)

func reconstructedOrder(t *testing.T) *Order {
	t.Helper()
	ship := &address.Address{Name: "Jo Doe", Line1: "1 Main St", City: "Springfield", PostalCode: "11111", Country: "US"}
	bill := &address.Address{Name: "Jo Doe", Line1: "2 Billing Rd", City: "Springfield", PostalCode: "22222", Country: "US"}
	now := time.Now().UTC()

	o, err := ReconstructOrder(42, "ord_abc123def456", 7, "complete", ship, bill, now, now)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	o, err := NewOrder(7)
	require.NoError(t, err)

	assert.Zero(t, o.ID())
	assert.NotEmpty(t, o.SID())
	assert.Equal(t, uint(7), o.UserID())
	assert.Equal(t, "cart", o.State())
	assert.Nil(t, o.ShippingAddress())
	assert.Nil(t, o.BillingAddress())
}

func TestNewOrder_RequiresUser(t *testing.T) {
	_, err := NewOrder(0)
	assert.Error(t, err)
}

func TestOrder_Clone_StripsIdentifiers(t *testing.T) {
	o := reconstructedOrder(t)

	clone := o.Clone()

	assert.Zero(t, clone.ID(), "clone must not carry the original ID")
	assert.Empty(t, clone.SID(), "clone must not carry the original SID")
	assert.Equal(t, o.UserID(), clone.UserID())
	assert.Equal(t, "cart", clone.State())
}

func TestOrder_Clone_CopiesAddresses(t *testing.T) {
	o := reconstructedOrder(t)

	clone := o.Clone()
	require.NotNil(t, clone.ShippingAddress())
	assert.Equal(t, *o.ShippingAddress(), *clone.ShippingAddress())

	// Mutating the clone must not touch the original.
	clone.SetShippingAddress(&address.Address{Name: "Other", Line1: "9 Other Ave", City: "Elsewhere", PostalCode: "99999", Country: "US"})
	assert.Equal(t, "1 Main St", o.ShippingAddress().Line1)
}

func TestOrder_AddressGetterReturnsCopy(t *testing.T) {
	o := reconstructedOrder(t)

	got := o.ShippingAddress()
	got.Line1 = "tampered"

	assert.Equal(t, "1 Main St", o.ShippingAddress().Line1)
}

func TestNewLineItem_Validation(t *testing.T) {
	_, err := NewLineItem(1, 0, 1, 100, "USD", "widget")
	assert.Error(t, err, "subscribable required")

	_, err = NewLineItem(1, 2, 0, 100, "USD", "widget")
	assert.Error(t, err, "quantity must be positive")

	_, err = NewLineItem(1, 2, 1, -1, "USD", "widget")
	assert.Error(t, err, "price cannot be negative")
}

func TestLineItem_TotalCents(t *testing.T) {
	li, err := NewLineItem(1, 2, 3, 250, "USD", "widget")
	require.NoError(t, err)
	assert.Equal(t, int64(750), li.TotalCents())
}
