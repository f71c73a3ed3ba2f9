package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid participant role")
	ErrUserNotFound       = errors.New("user not found")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
