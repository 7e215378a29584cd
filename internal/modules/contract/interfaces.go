package contract

import (
	"context"

	"eventpro/internal/domain"
)

type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	GetByID(ctx context.Context, id int64) (*domain.Contract, error)
	Save(ctx context.Context, c *domain.Contract) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, status domain.ContractStatus, search string, limit, offset int) ([]domain.Contract, int64, error)
	ExistsByCode(ctx context.Context, code string, exceptID int64) (bool, error)
}

type CustomerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type EventTypeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.EventType, error)
}
