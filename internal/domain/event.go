package domain

import "time"

type EventStatus string

// Stored values match the labels shown on the public site.
const (
	EventPending   EventStatus = "Đang chờ"
	EventApproved  EventStatus = "Đã phê duyệt"
	EventCancelled EventStatus = "Hủy"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventPending, EventApproved, EventCancelled:
		return true
	}
	return false
}

type Event struct {
	ID          int64       `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"size:255;not null"`
	EventTypeID int64       `json:"eventTypeId" gorm:"index;not null"`
	EventType   *EventType  `json:"eventType,omitempty" gorm:"foreignKey:EventTypeID"`
	Date        time.Time   `json:"date"`
	Location    string      `json:"location" gorm:"size:255"`
	Description string      `json:"description" gorm:"type:text"`
	Status      EventStatus `json:"status" gorm:"size:32;index"`
	Image       string      `json:"image,omitempty" gorm:"size:512"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
