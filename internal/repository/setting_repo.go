package repository

import (
	"context"
	"errors"

	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(ctx context.Context) (*domain.Setting, error) {
	var s domain.Setting
	if err := r.db.WithContext(ctx).Order("id").First(&s).Error; err != nil {
		return nil, translate(err, "get settings")
	}
	return &s, nil
}

// Upsert overwrites the singleton row, creating it on first use.
func (r *SettingRepository) Upsert(ctx context.Context, s *domain.Setting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.Setting
		err := tx.Order("id").First(&current).Error
		switch {
		case err == nil:
			s.ID = current.ID
			return translate(tx.Save(s).Error, "update settings")
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.ID = 0
			return translate(tx.Create(s).Error, "create settings")
		default:
			return translate(err, "load settings")
		}
	})
}

// EnsureDefault inserts the default row when none exists.
func (r *SettingRepository) EnsureDefault(ctx context.Context) error {
	_, err := r.Get(ctx)
	if err == nil {
		return nil
	}
	if !errs.Is(err, ErrNotFound) {
		return err
	}
	def := domain.DefaultSetting()
	return r.Upsert(ctx, &def)
}
