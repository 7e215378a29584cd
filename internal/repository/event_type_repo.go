package repository

import (
	"context"

	"eventpro/internal/domain"

	"gorm.io/gorm"
)

type EventTypeRepository struct {
	crud[domain.EventType]
}

func NewEventTypeRepository(db *gorm.DB) *EventTypeRepository {
	return &EventTypeRepository{crud[domain.EventType]{db: db, name: "event type"}}
}

func (r *EventTypeRepository) List(ctx context.Context, limit, offset int) ([]domain.EventType, int64, error) {
	return r.page(ctx, func(q *gorm.DB) *gorm.DB { return q }, limit, offset)
}

// All returns every event type ordered by name, for public pickers.
func (r *EventTypeRepository) All(ctx context.Context) ([]domain.EventType, error) {
	var out []domain.EventType
	err := r.db.WithContext(ctx).Order("name").Find(&out).Error
	return out, translate(err, "list all event types")
}

func (r *EventTypeRepository) ExistsByCode(ctx context.Context, code string, exceptID int64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&domain.EventType{}).Where("type_code = ?", code)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&n).Error
	return n > 0, translate(err, "check event type code")
}

type EventTypeCount struct {
	Name     string `json:"name"`
	TypeCode string `json:"typeCode"`
	Count    int64  `json:"count"`
}

// EventCounts returns the number of events per event type, including types
// with no events.
func (r *EventTypeRepository) EventCounts(ctx context.Context) ([]EventTypeCount, error) {
	var out []EventTypeCount
	err := r.db.WithContext(ctx).Raw(`
SELECT et.name AS name, et.type_code AS type_code, COUNT(e.id) AS count
FROM event_types et
LEFT JOIN events e ON e.event_type_id = et.id
GROUP BY et.id, et.name, et.type_code
ORDER BY et.name
`).Scan(&out).Error
	return out, translate(err, "count events by type")
}
