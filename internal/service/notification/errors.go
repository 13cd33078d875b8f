package notification

import "errors"

var (
	ErrInvalidEvent = errors.New("invalid event payload")
)
