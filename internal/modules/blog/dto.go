package blog

import (
	"eventpro/internal/domain"
	"eventpro/internal/pkg/pagination"
)

type CreateRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	Image    string `json:"image" validate:"omitempty,max=512"`
	Category string `json:"category" validate:"omitempty,max=128"`
	Status   string `json:"status" validate:"omitempty,oneof=pending approved"`
}

type UpdateRequest struct {
	Title    string `json:"title" validate:"omitempty,max=255"`
	Content  string `json:"content"`
	Image    string `json:"image" validate:"omitempty,max=512"`
	Category string `json:"category" validate:"omitempty,max=128"`
	Status   string `json:"status" validate:"omitempty,oneof=pending approved" copier:"-"`
}

type ListQuery struct {
	pagination.Query
	Status string `form:"status"`
	Search string `form:"search"`
}

type ListResponse struct {
	Blogs       []domain.Blog `json:"blogs"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	TotalBlogs  int64         `json:"totalBlogs"`
}
