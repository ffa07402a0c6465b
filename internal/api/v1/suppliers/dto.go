package suppliers

import (
	"time"

	"gorm.io/datatypes"
)

type CreateInvoiceRequest struct {
	Supplier    string         `json:"supplier" binding:"required"`
	GRNNumber   string         `json:"grn_number" binding:"required"`
	Amount      float64        `json:"amount" binding:"required,gt=0"`
	InvoiceDate string         `json:"invoice_date" binding:"required"`
	CreditDays  int            `json:"credit_days" binding:"gte=0"`
	Attachments datatypes.JSON `json:"attachments"`
}

type UpdateInvoiceRequest struct {
	Supplier    *string        `json:"supplier,omitempty"`
	Amount      *float64       `json:"amount,omitempty" binding:"omitempty,gt=0"`
	InvoiceDate *string        `json:"invoice_date,omitempty"`
	CreditDays  *int           `json:"credit_days,omitempty" binding:"omitempty,gte=0"`
	Status      *string        `json:"status,omitempty" binding:"omitempty,oneof=UNPAID PENDING"`
	Attachments datatypes.JSON `json:"attachments,omitempty"`
}

type InvoiceResponse struct {
	ID            uint           `json:"id"`
	Supplier      string         `json:"supplier"`
	GRNNumber     string         `json:"grn_number"`
	Amount        float64        `json:"amount"`
	InvoiceDate   time.Time      `json:"invoice_date"`
	CreditDays    int            `json:"credit_days"`
	DueDate       time.Time      `json:"due_date"`
	DaysRemaining int            `json:"days_remaining"`
	Status        string         `json:"status"`
	PaidAt        *time.Time     `json:"paid_at,omitempty"`
	Attachments   datatypes.JSON `json:"attachments,omitempty"`
}
