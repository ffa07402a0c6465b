package credit

import "time"

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Active  *bool   `json:"active,omitempty"`
}

type CreateBillRequest struct {
	CustomerID  uint    `json:"customer_id" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	// Bill date as YYYY-MM-DD; defaults to today
	BillDate string `json:"bill_date"`
}

type UpdateBillRequest struct {
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	BillDate    *string  `json:"bill_date,omitempty"`
}

type CustomerBalanceResponse struct {
	CustomerID  uint    `json:"customer_id"`
	Name        string  `json:"name"`
	Outstanding float64 `json:"outstanding"`
}

type BillResponse struct {
	ID          uint       `json:"id"`
	CustomerID  uint       `json:"customer_id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	BillDate    time.Time  `json:"bill_date"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}
