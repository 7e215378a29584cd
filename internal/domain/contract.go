package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractPending   ContractStatus = "Pending"
	ContractSigned    ContractStatus = "Signed"
	ContractCompleted ContractStatus = "Completed"
	ContractCancelled ContractStatus = "Cancelled"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractPending, ContractSigned, ContractCompleted, ContractCancelled:
		return true
	}
	return false
}

type Contract struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	ContractCode string          `json:"contractCode" gorm:"size:64;uniqueIndex;not null"`
	CustomerID   int64           `json:"customerId" gorm:"index;not null"`
	Customer     *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	EventTypeID  int64           `json:"eventTypeId" gorm:"index;not null"`
	EventType    *EventType      `json:"eventType,omitempty" gorm:"foreignKey:EventTypeID"`
	EventDate    time.Time       `json:"eventDate"`
	Location     string          `json:"location" gorm:"size:255"`
	TotalCost    decimal.Decimal `json:"totalCost" gorm:"type:decimal(14,2);not null"`
	Deposit      decimal.Decimal `json:"deposit" gorm:"type:decimal(14,2);not null"`
	Status       ContractStatus  `json:"status" gorm:"size:32;index"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
