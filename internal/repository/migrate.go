package repository

import (
	"eventpro/internal/domain"

	"gorm.io/gorm"
)

// Models lists every table owned by the API, in dependency order.
func Models() []any {
	return []any{
		&userModel{},
		&domain.Customer{},
		&domain.EventType{},
		&domain.Event{},
		&domain.Contract{},
		&domain.Blog{},
		&domain.Setting{},
		&bookingModel{},
		&contactModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
