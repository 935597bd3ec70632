// Package address provides the postal address value type shared by users,
// subscriptions and orders. Addresses are copied by value and never aliased
// across aggregates.
package address

// Address is an immutable postal address value.
type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// IsZero reports whether the address carries no data.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Equal reports whether two addresses are identical.
func (a Address) Equal(other Address) bool {
	return a == other
}

// Copy returns a pointer to a fresh copy, or nil when the input is nil.
// Use this when handing addresses across aggregate boundaries.
func Copy(a *Address) *Address {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
