package upload

import "eventpro/internal/pkg/errs"

var (
	ErrNoFile          = errs.Kind("file is required", errs.ErrValidation)
	ErrEmptyFile       = errs.Kind("file is empty", errs.ErrValidation)
	ErrInvalidFileType = errs.Kind("file type is not allowed", errs.ErrValidation)
	// ErrFileTooLarge is answered with 413 by the handler.
	ErrFileTooLarge = errs.New("file exceeds maximum allowed size")
)
