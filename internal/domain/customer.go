package domain

import "time"

type Customer struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	CustomerCode string    `json:"customerCode" gorm:"size:64;uniqueIndex;not null"`
	FullName     string    `json:"fullName" gorm:"size:255;not null"`
	Phone        string    `json:"phone" gorm:"size:32"`
	Email        string    `json:"email" gorm:"size:255"`
	Address      string    `json:"address" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
