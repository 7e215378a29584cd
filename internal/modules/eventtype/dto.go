package eventtype

import (
	"eventpro/internal/domain"
	"eventpro/internal/pkg/pagination"
)

type CreateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	TypeCode    string `json:"typeCode" validate:"required,max=64"`
	Description string `json:"description"`
}

type UpdateRequest struct {
	Name        string `json:"name" validate:"omitempty,max=255"`
	TypeCode    string `json:"typeCode" validate:"omitempty,max=64"`
	Description string `json:"description"`
}

// PublicEventType is what the public site needs for its pickers.
type PublicEventType struct {
	Name        string `json:"name"`
	TypeCode    string `json:"typeCode"`
	Description string `json:"description"`
}

type ListResponse struct {
	EventTypes      []domain.EventType `json:"eventTypes"`
	CurrentPage     int                `json:"currentPage"`
	TotalPages      int                `json:"totalPages"`
	TotalEventTypes int64              `json:"totalEventTypes"`
}

type ListQuery = pagination.Query
