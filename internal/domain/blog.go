package domain

import "time"

type BlogStatus string

const (
	BlogPending  BlogStatus = "pending"
	BlogApproved BlogStatus = "approved"
)

type Blog struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Title     string     `json:"title" gorm:"size:255;not null"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	Image     string     `json:"image,omitempty" gorm:"size:512"`
	Category  string     `json:"category" gorm:"size:128"`
	Status    BlogStatus `json:"status" gorm:"size:16;index"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
