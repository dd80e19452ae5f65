package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("not authorized to access this resource")
	ErrNotFound           = errors.New("resource not found")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrInternal           = errors.New("internal error")

	// Token verification failures; both surface to clients as ErrUnauthenticated.
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")

	// ErrUserNotFound is returned by user repositories. Services translate it
	// before it reaches a client so account existence never leaks.
	ErrUserNotFound = errors.New("user not found")
)
