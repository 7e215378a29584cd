package repository

import (
	"context"
	"time"

	"eventpro/internal/domain"

	"gorm.io/gorm"
)

type BlogRepository struct {
	crud[domain.Blog]
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{crud[domain.Blog]{db: db, name: "blog"}}
}

func (r *BlogRepository) List(ctx context.Context, status domain.BlogStatus, search string, limit, offset int) ([]domain.Blog, int64, error) {
	return r.page(ctx, func(q *gorm.DB) *gorm.DB {
		if status != "" {
			q = q.Where("status = ?", string(status))
		}
		if search != "" {
			p := likePattern(search)
			q = q.Where("(LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(category) LIKE ? ESCAPE '\\')", p, p)
		}
		return q
	}, limit, offset)
}

// ToggleApproval flips pending <-> approved in one statement.
func (r *BlogRepository) ToggleApproval(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&domain.Blog{ID: id}).Updates(map[string]any{
		"status": gorm.Expr("CASE WHEN status = ? THEN ? ELSE ? END",
			string(domain.BlogApproved), string(domain.BlogPending), string(domain.BlogApproved)),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return translate(res.Error, "toggle blog approval")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
