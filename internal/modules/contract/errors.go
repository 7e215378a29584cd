package contract

import "eventpro/internal/pkg/errs"

var (
	ErrContractNotFound = errs.Kind("contract not found", errs.ErrNotFound)
	ErrCodeTaken        = errs.Kind("contract code already exists", errs.ErrDuplicate)
	ErrUnknownCustomer  = errs.Kind("customer does not exist", errs.ErrValidation)
	ErrUnknownEventType = errs.Kind("event type does not exist", errs.ErrValidation)
	ErrInvalidStatus    = errs.Kind("invalid contract status", errs.ErrValidation)
	ErrInvalidDate      = errs.Kind("eventDate must be YYYY-MM-DD or RFC3339", errs.ErrValidation)
	ErrNegativeAmount   = errs.Kind("totalCost and deposit must not be negative", errs.ErrValidation)
	ErrDepositTooLarge  = errs.Kind("deposit must not exceed totalCost", errs.ErrValidation)
)
