package booking

import "eventpro/internal/domain"

type SubmitRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Email        string `json:"email" validate:"required"`
	EventType    string `json:"eventType" validate:"required"`
	EventDate    string `json:"eventDate" validate:"required"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type ListResponse struct {
	Bookings      []domain.BookingRequest `json:"bookings"`
	CurrentPage   int                     `json:"currentPage"`
	TotalPages    int                     `json:"totalPages"`
	TotalBookings int64                   `json:"totalBookings"`
}

// TransitionResult is the updated booking plus whether the customer email
// went out.
type TransitionResult struct {
	*domain.BookingRequest
	NotificationSent bool `json:"notificationSent"`
}
