package repository

import (
	"context"

	"eventpro/internal/domain"

	"gorm.io/gorm"
)

type ContractRepository struct {
	crud[domain.Contract]
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{crud[domain.Contract]{db: db, name: "contract", preloads: []string{"Customer", "EventType"}}}
}

func (r *ContractRepository) List(ctx context.Context, status domain.ContractStatus, search string, limit, offset int) ([]domain.Contract, int64, error) {
	return r.page(ctx, func(q *gorm.DB) *gorm.DB {
		if status != "" {
			q = q.Where("status = ?", string(status))
		}
		if search != "" {
			q = q.Where("LOWER(contract_code) LIKE ? ESCAPE '\\'", likePattern(search))
		}
		return q
	}, limit, offset)
}

func (r *ContractRepository) ExistsByCode(ctx context.Context, code string, exceptID int64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&domain.Contract{}).Where("contract_code = ?", code)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&n).Error
	return n > 0, translate(err, "check contract code")
}
