package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crud holds the by-id operations shared by the catalogue tables whose
// domain structs double as gorm models.
type crud[T any] struct {
	db       *gorm.DB
	name     string
	preloads []string
}

func (c crud[T]) query(ctx context.Context) *gorm.DB {
	q := c.db.WithContext(ctx)
	for _, p := range c.preloads {
		q = q.Preload(p)
	}
	return q
}

func (c crud[T]) Create(ctx context.Context, v *T) error {
	return translate(c.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error, "create "+c.name)
}

func (c crud[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var v T
	if err := c.query(ctx).First(&v, id).Error; err != nil {
		return nil, translate(err, "get "+c.name)
	}
	return &v, nil
}

// Save writes every column of v; v must already exist. Preloaded
// associations are never written back.
func (c crud[T]) Save(ctx context.Context, v *T) error {
	return translate(c.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error, "save "+c.name)
}

func (c crud[T]) Delete(ctx context.Context, id int64) error {
	res := c.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error, "delete "+c.name)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (c crud[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := c.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, translate(err, "count "+c.name)
}

// page applies scope to both the count and the row query so the total
// always matches the filter.
func (c crud[T]) page(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit, offset int) ([]T, int64, error) {
	var total int64
	if err := scope(c.db.WithContext(ctx).Model(new(T))).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count "+c.name)
	}

	rows := make([]T, 0, limit)
	if err := scope(c.query(ctx)).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, translate(err, "list "+c.name)
	}
	return rows, total, nil
}
