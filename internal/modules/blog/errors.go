package blog

import "eventpro/internal/pkg/errs"

var (
	ErrBlogNotFound  = errs.Kind("blog not found", errs.ErrNotFound)
	ErrInvalidStatus = errs.Kind("status must be pending or approved", errs.ErrValidation)
)
