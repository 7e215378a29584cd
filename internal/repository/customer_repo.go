package repository

import (
	"context"

	"eventpro/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	crud[domain.Customer]
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{crud[domain.Customer]{db: db, name: "customer"}}
}

func (r *CustomerRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, int64, error) {
	return r.page(ctx, func(q *gorm.DB) *gorm.DB {
		if search == "" {
			return q
		}
		p := likePattern(search)
		return q.Where("LOWER(full_name) LIKE ? ESCAPE '\\' OR LOWER(customer_code) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\'", p, p, p)
	}, limit, offset)
}

func (r *CustomerRepository) ExistsByCode(ctx context.Context, code string, exceptID int64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&domain.Customer{}).Where("customer_code = ?", code)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&n).Error
	return n > 0, translate(err, "check customer code")
}
