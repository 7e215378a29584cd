package contact

import (
	"context"

	"eventpro/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, c *domain.ContactMessage) error
	GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error)
	List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, int64, error)
	Transition(ctx context.Context, id int64, status domain.ContactStatus) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type Notifier interface {
	ContactReply(ctx context.Context, c domain.ContactMessage, reply string) error
}

type Publisher interface {
	Publish(kind string, id int64)
}
