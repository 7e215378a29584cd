package booking

import (
	"context"

	"eventpro/internal/domain"
)

// BookingRepository is the storage the lifecycle needs. Transition must be a
// single conditional update that only matches Pending rows.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.BookingRequest) error
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	List(ctx context.Context, limit, offset int) ([]domain.BookingRequest, int64, error)
	Transition(ctx context.Context, id int64, status domain.BookingStatus, reason *string) (bool, error)
}

type Notifier interface {
	BookingApproved(ctx context.Context, b domain.BookingRequest) error
	BookingRejected(ctx context.Context, b domain.BookingRequest) error
}

// Publisher pushes lifecycle events to connected admin consoles.
type Publisher interface {
	Publish(kind string, id int64)
}
