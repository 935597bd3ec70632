package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrLineItemNotFound = errors.New("order line item not found")
)
