package models

import "time"

type UtilityType string

const (
	UtilityElectricity UtilityType = "electricity"
	UtilityWater       UtilityType = "water"
	UtilityInternet    UtilityType = "internet"
	UtilityPhone       UtilityType = "phone"
	UtilityOther       UtilityType = "other"
)

type UtilityBill struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Type      UtilityType `gorm:"type:varchar(20);index;not null"`
	Provider  string      `gorm:"not null"`
	AccountNo string      `gorm:"type:varchar(50)"`
	// Billing month as YYYY-MM, matching the statement period
	BillMonth string     `gorm:"type:varchar(7);index;not null"`
	Amount    float64    `gorm:"type:decimal(12,2);not null"`
	DueDate   time.Time  `gorm:"not null"`
	Status    BillStatus `gorm:"type:varchar(10);index;default:'UNPAID'"`
	PaidAt    *time.Time
}
