package event

import (
	"eventpro/internal/domain"
	"eventpro/internal/pkg/pagination"
)

type CreateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	EventTypeID int64  `json:"eventTypeId" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Image       string `json:"image" validate:"omitempty,max=512"`
}

type UpdateRequest struct {
	Name        string `json:"name" validate:"omitempty,max=255"`
	EventTypeID int64  `json:"eventTypeId" validate:"omitempty,gt=0"`
	Date        string `json:"date" copier:"-"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	Description string `json:"description"`
	Status      string `json:"status" copier:"-"`
	Image       string `json:"image" validate:"omitempty,max=512"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListQuery binds ?eventType=<id>&typeCode=&search=&status=.
type ListQuery struct {
	pagination.Query
	EventTypeID int64  `form:"eventType"`
	TypeCode    string `form:"typeCode"`
	Search      string `form:"search"`
	Status      string `form:"status"`
}

type ListResponse struct {
	Events      []domain.Event `json:"events"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalEvents int64          `json:"totalEvents"`
}
