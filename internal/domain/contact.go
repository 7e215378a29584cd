package domain

import "time"

type ContactStatus string

const (
	ContactPending ContactStatus = "Pending"
	ContactReplied ContactStatus = "Replied"
	ContactClosed  ContactStatus = "Closed"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactPending, ContactReplied, ContactClosed:
		return true
	}
	return false
}

type ContactMessage struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
