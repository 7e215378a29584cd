package repository

import (
	"context"
	"time"

	"eventpro/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type contactModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:255;not null"`
	Email     string    `gorm:"column:email;size:255;not null"`
	Message   string    `gorm:"column:message;type:text;not null"`
	Status    string    `gorm:"column:status;size:16;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (contactModel) TableName() string { return "contacts" }

func toDomainContact(m contactModel) *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		Status:    domain.ContactStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.ContactMessage) error {
	m := contactModel{
		Name:    c.Name,
		Email:   c.Email,
		Message: c.Message,
		Status:  string(c.Status),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err, "create contact")
	}
	*c = *toDomainContact(m)
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	var m contactModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "get contact")
	}
	return toDomainContact(m), nil
}

func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&contactModel{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count contacts")
	}

	var rows []contactModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, translate(err, "list contacts")
	}

	out := make([]domain.ContactMessage, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainContact(m))
	}
	return out, total, nil
}

// Transition moves a Pending contact to status; false means missing or
// already processed.
func (r *ContactRepository) Transition(ctx context.Context, id int64, status domain.ContactStatus) (bool, error) {
	ok, err := compareAndSetStatus(r.db.WithContext(ctx), &contactModel{}, id, string(domain.ContactPending), map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return false, translate(err, "transition contact")
	}
	return ok, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&contactModel{}, id)
	if res.Error != nil {
		return translate(res.Error, "delete contact")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContactRepository) CountByStatus(ctx context.Context, status domain.ContactStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&contactModel{}).Where("status = ?", string(status)).Count(&n).Error
	return n, translate(err, "count contacts by status")
}

func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&contactModel{}).Count(&n).Error
	return n, translate(err, "count contacts")
}
