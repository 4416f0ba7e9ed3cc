package service

import "errors"

// Errors the handler layer translates into client-facing statuses.
// Anything else coming out of a service is treated as a server failure.
var (
	ErrNotFound           = errors.New("not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
