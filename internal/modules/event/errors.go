package event

import "eventpro/internal/pkg/errs"

var (
	ErrEventNotFound    = errs.Kind("event not found", errs.ErrNotFound)
	ErrUnknownEventType = errs.Kind("event type does not exist", errs.ErrValidation)
	ErrInvalidStatus    = errs.Kind("invalid event status", errs.ErrValidation)
	ErrInvalidDate      = errs.Kind("date must be YYYY-MM-DD or RFC3339", errs.ErrValidation)
)
