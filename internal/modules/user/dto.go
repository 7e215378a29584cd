package user

import (
	"eventpro/internal/domain"
	"eventpro/internal/pkg/pagination"
)

// UpdateProfileRequest is a patch: empty fields keep their current value.
type UpdateProfileRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Avatar   string `json:"avatar" validate:"omitempty,max=512"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Avatar   string `json:"avatar" validate:"omitempty,max=512"`
}

// UpdateUserRequest is the admin patch. A non-empty Password resets it.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6" copier:"-"`
	Role     string `json:"role" copier:"-"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Avatar   string `json:"avatar" validate:"omitempty,max=512"`
}

type ListQuery struct {
	pagination.Query
	Role string `form:"role"`
}

type ListResponse struct {
	Users       []domain.User `json:"users"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	TotalUsers  int64         `json:"totalUsers"`
}
