package auth

import "eventpro/internal/pkg/errs"

var (
	ErrInvalidCredentials = errs.Kind("invalid email or password", errs.ErrUnauthorized)
	ErrEmailAlreadyExists = errs.Kind("email already exists", errs.ErrDuplicate)
	ErrUsernameTaken      = errs.Kind("username already exists", errs.ErrDuplicate)
	ErrUserNotFound       = errs.Kind("user not found", errs.ErrNotFound)
)
