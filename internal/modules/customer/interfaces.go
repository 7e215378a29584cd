package customer

import (
	"context"

	"eventpro/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Save(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, int64, error)
	ExistsByCode(ctx context.Context, code string, exceptID int64) (bool, error)
}
