package contact

import "eventpro/internal/pkg/errs"

var (
	ErrContactNotFound  = errs.Kind("contact not found", errs.ErrNotFound)
	ErrAlreadyProcessed = errs.Kind("contact already processed", errs.ErrStateConflict)
)
