package service

import "errors"

// Failure kinds surfaced by the stock and auth services. Callers match them
// with errors.Is; no retry or recovery happens below this boundary.
var (
	ErrItemNotFound           = errors.New("item not found")
	ErrInventoryNotFound      = errors.New("inventory transaction not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrInsufficientStock      = errors.New("insufficient stock remaining")
	ErrInvalidTransactionType = errors.New("invalid inventory transaction type")
	ErrDuplicateOrderNo       = errors.New("order number already exists")
	ErrValidation             = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
