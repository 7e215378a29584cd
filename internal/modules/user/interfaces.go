package user

import (
	"context"

	"eventpro/internal/domain"
	"eventpro/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]domain.User, int64, error)
	ExistsByEmail(ctx context.Context, email string, exceptID int64) (bool, error)
	ExistsByUsername(ctx context.Context, username string, exceptID int64) (bool, error)
}
