package models

import "time"

type BillStatus string

const (
	BillStatusPaid   BillStatus = "PAID"
	BillStatusUnpaid BillStatus = "UNPAID"
)

// CreditCustomer is a customer buying on credit. Bills accumulate
// against the customer until marked paid.
type CreditCustomer struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"not null"`
	Phone     string `gorm:"type:varchar(30)"`
	Address   string `gorm:"type:text"`
	Active    bool   `gorm:"not null;default:true"`
}

type CreditBill struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CustomerID  uint       `gorm:"index;not null"`
	Description string     `gorm:"type:text"`
	Amount      float64    `gorm:"type:decimal(12,2);not null"`
	Status      BillStatus `gorm:"type:varchar(10);index;default:'UNPAID'"`
	BillDate    time.Time  `gorm:"not null"`
	PaidAt      *time.Time
}
