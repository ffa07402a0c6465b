package models

import (
	"time"

	"gorm.io/datatypes"
)

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusUnpaid  InvoiceStatus = "UNPAID"
	InvoiceStatusPending InvoiceStatus = "PENDING"
)

// SupplierInvoice tracks a goods-received-note invoice bought on
// supplier credit. DueDate is derived from InvoiceDate plus the
// agreed credit days and recomputed on every write.
type SupplierInvoice struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Supplier    string        `gorm:"index;not null"`
	GRNNumber   string        `gorm:"uniqueIndex;type:varchar(50);not null"`
	Amount      float64       `gorm:"type:decimal(12,2);not null"`
	InvoiceDate time.Time     `gorm:"not null"`
	CreditDays  int           `gorm:"not null;default:0"`
	DueDate     time.Time     `gorm:"index;not null"`
	Status      InvoiceStatus `gorm:"type:varchar(10);index;default:'UNPAID'"`
	PaidAt      *time.Time
	// Relative URLs of uploaded invoice scans
	Attachments datatypes.JSON `gorm:"type:jsonb"`
}

// ComputeDueDate derives the payment deadline. AddDate keeps the
// arithmetic correct across month and year boundaries.
func (s *SupplierInvoice) ComputeDueDate() time.Time {
	return s.InvoiceDate.AddDate(0, 0, s.CreditDays)
}

// DaysRemaining is negative once the invoice is overdue.
func (s *SupplierInvoice) DaysRemaining(now time.Time) int {
	return int(s.DueDate.Sub(now).Hours() / 24)
}
