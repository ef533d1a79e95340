package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrPrecondition       = errors.New("precondition failed")
	ErrConflict           = errors.New("resource already exists")
	ErrUnavailable        = errors.New("service unavailable")
)
