package dashboard

import "eventpro/internal/repository"

type Totals struct {
	Users           int64 `json:"users"`
	Customers       int64 `json:"customers"`
	Events          int64 `json:"events"`
	Contracts       int64 `json:"contracts"`
	Blogs           int64 `json:"blogs"`
	Bookings        int64 `json:"bookings"`
	Contacts        int64 `json:"contacts"`
	PendingBookings int64 `json:"pendingBookings"`
	PendingContacts int64 `json:"pendingContacts"`
}

// MonthlySeries is aligned by index: Data[i] is the count for Labels[i].
type MonthlySeries struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

type StatsResponse struct {
	Totals       Totals                      `json:"totals"`
	UsersByRole  []repository.RoleCount      `json:"usersByRole"`
	EventStats   []repository.EventTypeCount `json:"eventStats"`
	BookingStats MonthlySeries               `json:"bookingStats"`
}
