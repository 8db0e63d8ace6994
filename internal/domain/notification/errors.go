package notification

import "errors"

// Notification domain errors
var (
	ErrInvalidType   = errors.New("invalid notification type")
	ErrTokenNotFound = errors.New("device token not found")
)
