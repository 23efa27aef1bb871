package model

import "errors"

var (
	// User/auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")

	// Token errors. Handlers present all three as a uniform "not
	// authenticated" response; the distinction exists for logging.
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token invalid")

	// Calculation errors
	ErrCalculationNotFound = errors.New("calculation not found")
)
