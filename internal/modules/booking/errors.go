package booking

import "eventpro/internal/pkg/errs"

var (
	ErrBookingNotFound  = errs.Kind("booking not found", errs.ErrNotFound)
	ErrAlreadyProcessed = errs.Kind("booking already processed", errs.ErrStateConflict)
	ErrInvalidEventDate = errs.Kind("eventDate must be YYYY-MM-DD or RFC3339", errs.ErrValidation)
)
