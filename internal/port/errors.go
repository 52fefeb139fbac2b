package port

import "errors"

// Sentinel errors used across ports.
var (
	ErrUnauthorized      = errors.New("unauthorized access")
	ErrForbidden         = errors.New("forbidden access")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrMissingSigningKey = errors.New("token signing secret is not configured")
	ErrUserNotFound      = errors.New("user not found")
	ErrClassNotFound     = errors.New("class not found")
	ErrSelectionNotFound = errors.New("selection not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrPaymentsDisabled  = errors.New("payments are not configured")
)
