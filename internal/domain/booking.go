package domain

import "time"

type BookingStatus string

const (
	BookingPending  BookingStatus = "Pending"
	BookingApproved BookingStatus = "Approved"
	BookingRejected BookingStatus = "Rejected"
)

// DefaultRejectionReason is stored when an admin rejects without a reason.
const DefaultRejectionReason = "Không được cung cấp"

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected:
		return true
	}
	return false
}

// BookingRequest is a public request to organise an event. RejectionReason
// is set if and only if Status is BookingRejected.
type BookingRequest struct {
	ID              int64         `json:"id"`
	CustomerName    string        `json:"customerName"`
	Email           string        `json:"email"`
	EventType       string        `json:"eventType"`
	EventDate       time.Time     `json:"eventDate"`
	Status          BookingStatus `json:"status"`
	RejectionReason *string       `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
