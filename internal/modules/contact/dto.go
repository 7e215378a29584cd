package contact

import "eventpro/internal/domain"

type CreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type ReplyRequest struct {
	ReplyMessage string `json:"replyMessage" validate:"required"`
}

type ListResponse struct {
	Contacts      []domain.ContactMessage `json:"contacts"`
	CurrentPage   int                     `json:"currentPage"`
	TotalPages    int                     `json:"totalPages"`
	TotalContacts int64                   `json:"totalContacts"`
}

type ReplyResult struct {
	*domain.ContactMessage
	NotificationSent bool `json:"notificationSent"`
}
