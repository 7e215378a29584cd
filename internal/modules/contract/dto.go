package contract

import (
	"eventpro/internal/domain"
	"eventpro/internal/pkg/pagination"

	"github.com/shopspring/decimal"
)

// Amounts accept either JSON numbers or numeric strings.
type CreateRequest struct {
	ContractCode string          `json:"contractCode" validate:"required,max=64"`
	CustomerID   int64           `json:"customerId" validate:"required,gt=0"`
	EventTypeID  int64           `json:"eventTypeId" validate:"required,gt=0"`
	EventDate    string          `json:"eventDate" validate:"required"`
	Location     string          `json:"location" validate:"omitempty,max=255"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	Deposit      decimal.Decimal `json:"deposit"`
	Status       string          `json:"status"`
}

// UpdateRequest is a patch: nil amounts and empty strings keep the stored value.
type UpdateRequest struct {
	ContractCode string           `json:"contractCode" validate:"omitempty,max=64"`
	CustomerID   int64            `json:"customerId" validate:"omitempty,gt=0"`
	EventTypeID  int64            `json:"eventTypeId" validate:"omitempty,gt=0"`
	EventDate    string           `json:"eventDate"`
	Location     string           `json:"location" validate:"omitempty,max=255"`
	TotalCost    *decimal.Decimal `json:"totalCost"`
	Deposit      *decimal.Decimal `json:"deposit"`
	Status       string           `json:"status"`
}

type ListQuery struct {
	pagination.Query
	Status string `form:"status"`
	Search string `form:"search"`
}

type ListResponse struct {
	Contracts      []domain.Contract `json:"contracts"`
	CurrentPage    int               `json:"currentPage"`
	TotalPages     int               `json:"totalPages"`
	TotalContracts int64             `json:"totalContracts"`
}
