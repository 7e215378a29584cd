package customer

import (
	"eventpro/internal/domain"
	"eventpro/internal/pkg/pagination"
)

type CreateRequest struct {
	CustomerCode string `json:"customerCode" validate:"required,max=64"`
	FullName     string `json:"fullName" validate:"required,max=255"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	Email        string `json:"email" validate:"omitempty,email"`
	Address      string `json:"address"`
}

type UpdateRequest struct {
	CustomerCode string `json:"customerCode" validate:"omitempty,max=64"`
	FullName     string `json:"fullName" validate:"omitempty,max=255"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	Email        string `json:"email" validate:"omitempty,email"`
	Address      string `json:"address"`
}

type ListQuery struct {
	pagination.Query
	Search string `form:"search"`
}

type ListResponse struct {
	Customers      []domain.Customer `json:"customers"`
	CurrentPage    int               `json:"currentPage"`
	TotalPages     int               `json:"totalPages"`
	TotalCustomers int64             `json:"totalCustomers"`
}
