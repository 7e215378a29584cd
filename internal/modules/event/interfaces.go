package event

import (
	"context"

	"eventpro/internal/domain"
	"eventpro/internal/repository"
)

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Save(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter repository.EventFilter, limit, offset int) ([]domain.Event, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) error
}

type EventTypeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.EventType, error)
}
