package customer

import "eventpro/internal/pkg/errs"

var (
	ErrCustomerNotFound = errs.Kind("customer not found", errs.ErrNotFound)
	ErrCodeTaken        = errs.Kind("customer code already exists", errs.ErrDuplicate)
	ErrCustomerInUse    = errs.Kind("customer has contracts", errs.ErrConflict)
)
