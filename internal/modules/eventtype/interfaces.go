package eventtype

import (
	"context"

	"eventpro/internal/domain"
)

type EventTypeRepository interface {
	Create(ctx context.Context, et *domain.EventType) error
	GetByID(ctx context.Context, id int64) (*domain.EventType, error)
	Save(ctx context.Context, et *domain.EventType) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.EventType, int64, error)
	All(ctx context.Context) ([]domain.EventType, error)
	ExistsByCode(ctx context.Context, code string, exceptID int64) (bool, error)
}
