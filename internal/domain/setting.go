package domain

import "time"

// Setting is a singleton row holding site-wide contact details.
type Setting struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	SiteName     string    `json:"siteName" gorm:"size:255"`
	Logo         string    `json:"logo" gorm:"size:512"`
	ContactEmail string    `json:"contactEmail" gorm:"size:255"`
	ContactPhone string    `json:"contactPhone" gorm:"size:64"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func DefaultSetting() Setting {
	return Setting{
		SiteName:     "Event Management System",
		ContactEmail: "contact@example.com",
		ContactPhone: "0123 456 789",
	}
}
