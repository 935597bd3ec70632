package user

import (
	"fmt"
	"time"

	"github.com/loopcart-io/loopcart/internal/domain/shared/address"
	"github.com/loopcart-io/loopcart/internal/shared/id"
)

// User is the account that owns subscriptions and orders. Only the fields
// the subscription flow needs are modeled here: identity and the default
// ship-to/bill-to addresses used as fallback for preview orders.
type User struct {
	id              uint
	sid             string
	email           string
	name            string
	shippingAddress *address.Address
	billingAddress  *address.Address
	createdAt       time.Time
	updatedAt       time.Time
}

// NewUser creates a new user.
func NewUser(email, name string) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixUser, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &User{
		sid:       sid,
		email:     email,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(
	userID uint,
	sid, email, name string,
	shippingAddress, billingAddress *address.Address,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:              userID,
		sid:             sid,
		email:           email,
		name:            name,
		shippingAddress: address.Copy(shippingAddress),
		billingAddress:  address.Copy(billingAddress),
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (u *User) ID() uint      { return u.id }
func (u *User) SID() string   { return u.sid }
func (u *User) Email() string { return u.email }
func (u *User) Name() string  { return u.name }

// ShippingAddress returns a copy of the user's default shipping address,
// or nil when none is on file.
func (u *User) ShippingAddress() *address.Address {
	return address.Copy(u.shippingAddress)
}

// BillingAddress returns a copy of the user's default billing address,
// or nil when none is on file.
func (u *User) BillingAddress() *address.Address {
	return address.Copy(u.billingAddress)
}

func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use).
func (u *User) SetID(userID uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = userID
	return nil
}

// SetShippingAddress replaces the default shipping address.
func (u *User) SetShippingAddress(a *address.Address) {
	u.shippingAddress = address.Copy(a)
	u.updatedAt = time.Now().UTC()
}

// SetBillingAddress replaces the default billing address.
func (u *User) SetBillingAddress(a *address.Address) {
	u.billingAddress = address.Copy(a)
	u.updatedAt = time.Now().UTC()
}
