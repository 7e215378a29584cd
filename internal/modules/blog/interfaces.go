package blog

import (
	"context"

	"eventpro/internal/domain"
)

type BlogRepository interface {
	Create(ctx context.Context, b *domain.Blog) error
	GetByID(ctx context.Context, id int64) (*domain.Blog, error)
	Save(ctx context.Context, b *domain.Blog) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, status domain.BlogStatus, search string, limit, offset int) ([]domain.Blog, int64, error)
	ToggleApproval(ctx context.Context, id int64) error
}
