package user

import "eventpro/internal/pkg/errs"

var (
	ErrUserNotFound       = errs.Kind("user not found", errs.ErrNotFound)
	ErrEmailAlreadyExists = errs.Kind("email already exists", errs.ErrDuplicate)
	ErrUsernameTaken      = errs.Kind("username already exists", errs.ErrDuplicate)
	ErrWrongPassword      = errs.Kind("current password is incorrect", errs.ErrValidation)
	ErrPasswordMismatch   = errs.Kind("passwords do not match", errs.ErrValidation)
	ErrInvalidRole        = errs.Kind("role must be admin, staff or customer", errs.ErrValidation)
	ErrDeleteSelf         = errs.Kind("cannot delete your own account", errs.ErrForbidden)
)
