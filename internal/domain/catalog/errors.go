package catalog

import "errors"

var (
	ErrSubscribableNotFound = errors.New("subscribable not found")
)
