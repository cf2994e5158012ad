package application

import "errors"

var (
	ErrAlreadyRegistered  = errors.New("email is registered to another user")
	ErrNotRegistered      = errors.New("user is not registered")
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)
