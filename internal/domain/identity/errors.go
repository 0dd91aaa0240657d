package identity

import "errors"

var (
	ErrInvalidIdentity    = errors.New("identity is missing an id")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrNetwork            = errors.New("network failure")
)
