package repository

import (
	"context"

	"eventpro/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	crud[domain.Event]
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{crud[domain.Event]{db: db, name: "event", preloads: []string{"EventType"}}}
}

// EventFilter narrows List. Zero values are ignored.
type EventFilter struct {
	Status      domain.EventStatus
	EventTypeID int64
	TypeCode    string
	Search      string
}

func (f EventFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.EventTypeID > 0 {
		q = q.Where("event_type_id = ?", f.EventTypeID)
	}
	if f.TypeCode != "" {
		sub := q.Session(&gorm.Session{NewDB: true}).
			Model(&domain.EventType{}).
			Select("id").
			Where("type_code = ?", f.TypeCode)
		q = q.Where("event_type_id IN (?)", sub)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		q = q.Where("(LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(location) LIKE ? ESCAPE '\\')", p, p)
	}
	return q
}

func (r *EventRepository) List(ctx context.Context, filter EventFilter, limit, offset int) ([]domain.Event, int64, error) {
	return r.page(ctx, filter.apply, limit, offset)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Event{ID: id}).Update("status", string(status))
	if res.Error != nil {
		return translate(res.Error, "update event status")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
