package lineitem

import "errors"

var (
	ErrLineItemNotFound     = errors.New("subscription line item not found")
	ErrSubscribableRequired = errors.New("subscribable is required")
	ErrQuantityNotPositive  = errors.New("quantity must be greater than zero")
	ErrIntervalNotPositive  = errors.New("interval length must be greater than zero when no subscription is attached")
)
