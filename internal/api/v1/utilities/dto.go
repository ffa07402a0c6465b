package utilities

import "time"

type CreateBillRequest struct {
	Type      string  `json:"type" binding:"required,oneof=electricity water internet phone other"`
	Provider  string  `json:"provider" binding:"required"`
	AccountNo string  `json:"account_no"`
	BillMonth string  `json:"bill_month" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	DueDate   string  `json:"due_date" binding:"required"`
}

type UpdateBillRequest struct {
	Provider  *string  `json:"provider,omitempty"`
	AccountNo *string  `json:"account_no,omitempty"`
	Amount    *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	DueDate   *string  `json:"due_date,omitempty"`
}

type BillResponse struct {
	ID        uint       `json:"id"`
	Type      string     `json:"type"`
	Provider  string     `json:"provider"`
	AccountNo string     `json:"account_no"`
	BillMonth string     `json:"bill_month"`
	Amount    float64    `json:"amount"`
	DueDate   time.Time  `json:"due_date"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}
