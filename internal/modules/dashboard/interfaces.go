package dashboard

import (
	"context"
	"time"

	"eventpro/internal/domain"
	"eventpro/internal/repository"
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type UserStats interface {
	CountByRole(ctx context.Context) ([]repository.RoleCount, error)
}

type EventTypeStats interface {
	EventCounts(ctx context.Context) ([]repository.EventTypeCount, error)
}

type BookingStats interface {
	Counter
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)
}

type ContactStats interface {
	Counter
	CountByStatus(ctx context.Context, status domain.ContactStatus) (int64, error)
}

// Sources groups everything the dashboard reads.
type Sources struct {
	Users      UserStats
	Customers  Counter
	Events     Counter
	Contracts  Counter
	Blogs      Counter
	EventTypes EventTypeStats
	Bookings   BookingStats
	Contacts   ContactStats
}
