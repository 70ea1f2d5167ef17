package service

import "errors"

// Expected workflow outcomes. Handlers map these to HTTP statuses with
// errors.Is; anything else is treated as a storage fault.
var (
	// ErrEmptyOrder is returned when a purchase order is submitted with
	// no positive-quantity line items.
	ErrEmptyOrder = errors.New("purchase order has no line items")

	// ErrNotFound is returned when a referenced order, product, meal or
	// user does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyResolved is returned when resolving an order that is no
	// longer pending.
	ErrAlreadyResolved = errors.New("purchase order already resolved")

	// ErrDuplicateRedemption is returned on a second meal-taken mark for
	// the same student and day.
	ErrDuplicateRedemption = errors.New("meal already taken today")

	// ErrUnauthorized is returned when the acting role does not match
	// the operation's required role.
	ErrUnauthorized = errors.New("role not allowed for this operation")

	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
