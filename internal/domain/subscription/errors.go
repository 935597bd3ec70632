package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrEventWriteFailed     = errors.New("subscription event write failed")
)
