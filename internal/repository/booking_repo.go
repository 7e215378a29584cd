package repository

import (
	"context"
	"time"

	"eventpro/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	CustomerName    string    `gorm:"column:customer_name;size:255;not null"`
	Email           string    `gorm:"column:email;size:255;not null"`
	EventType       string    `gorm:"column:event_type;size:255;not null"`
	EventDate       time.Time `gorm:"column:event_date;not null"`
	Status          string    `gorm:"column:status;size:16;not null;index"`
	RejectionReason *string   `gorm:"column:rejection_reason;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;index"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.BookingRequest {
	return &domain.BookingRequest{
		ID:              m.ID,
		CustomerName:    m.CustomerName,
		Email:           m.Email,
		EventType:       m.EventType,
		EventDate:       m.EventDate,
		Status:          domain.BookingStatus(m.Status),
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.BookingRequest) bookingModel {
	return bookingModel{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		Email:           b.Email,
		EventType:       b.EventType,
		EventDate:       b.EventDate,
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.BookingRequest) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err, "create booking")
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "get booking")
	}
	return toDomainBooking(m), nil
}

// List returns one page ordered newest first plus the total row count.
func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]domain.BookingRequest, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count bookings")
	}

	var rows []bookingModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, translate(err, "list bookings")
	}

	out := make([]domain.BookingRequest, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

// Transition moves a Pending booking to status. It returns false without
// error when the booking is missing or no longer Pending.
func (r *BookingRepository) Transition(ctx context.Context, id int64, status domain.BookingStatus, reason *string) (bool, error) {
	ok, err := compareAndSetStatus(r.db.WithContext(ctx), &bookingModel{}, id, string(domain.BookingPending), map[string]any{
		"status":           string(status),
		"rejection_reason": reason,
		"updated_at":       time.Now().UTC(),
	})
	if err != nil {
		return false, translate(err, "transition booking")
	}
	return ok, nil
}

// CreatedSince returns creation times of bookings made at or after since.
func (r *BookingRepository) CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var out []time.Time
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("created_at >= ?", since.UTC()).
		Order("created_at").
		Pluck("created_at", &out).Error
	if err != nil {
		return nil, translate(err, "list booking dates")
	}
	return out, nil
}

func (r *BookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).Where("status = ?", string(status)).Count(&n).Error
	return n, translate(err, "count bookings by status")
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&n).Error
	return n, translate(err, "count bookings")
}
