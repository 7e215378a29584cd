package eventtype

import "eventpro/internal/pkg/errs"

var (
	ErrEventTypeNotFound = errs.Kind("event type not found", errs.ErrNotFound)
	ErrCodeTaken         = errs.Kind("type code already exists", errs.ErrDuplicate)
	ErrEventTypeInUse    = errs.Kind("event type is used by events or contracts", errs.ErrConflict)
)
