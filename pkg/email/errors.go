package email

import "errors"

var (
	ErrFailedToSend   = errors.New("email: failed to send message")
	ErrInvalidConfig  = errors.New("email: invalid configuration")
	ErrInvalidMessage = errors.New("email: invalid message")
)
