package user

import "errors"

var (
	// -- Registration --
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrWeakPassword = errors.New("password must be at least 8 characters")

	// -- Login --
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("incorrect password")

	// -- Profile --
	ErrNameRequired = errors.New("name is required")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
