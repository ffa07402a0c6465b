package services

import (
	"time"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

// CreditSummary aggregates the credit module for the dashboard.
type CreditSummary struct {
	Customers         int64   `json:"customers"`
	UnpaidBills       int64   `json:"unpaid_bills"`
	OutstandingAmount float64 `json:"outstanding_amount"`
}

type UtilitySummary struct {
	UnpaidBills  int64   `json:"unpaid_bills"`
	UnpaidAmount float64 `json:"unpaid_amount"`
}

type ExpenditureSummary struct {
	MonthCount  int64   `json:"month_count"`
	MonthAmount float64 `json:"month_amount"`
}

type SupplierSummary struct {
	OpenInvoices int64   `json:"open_invoices"`
	OpenAmount   float64 `json:"open_amount"`
	Overdue      int64   `json:"overdue"`
	DueSoon      int64   `json:"due_soon"`
}

func GetCreditSummary() (*CreditSummary, error) {
	var s CreditSummary

	if err := database.DB.Model(&models.CreditCustomer{}).Where("active = ?", true).Count(&s.Customers).Error; err != nil {
		return nil, err
	}
	unpaid := database.DB.Model(&models.CreditBill{}).Where("status = ?", models.BillStatusUnpaid)
	if err := unpaid.Count(&s.UnpaidBills).Error; err != nil {
		return nil, err
	}
	if err := unpaid.Select("COALESCE(SUM(amount), 0)").Scan(&s.OutstandingAmount).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func GetUtilitySummary() (*UtilitySummary, error) {
	var s UtilitySummary

	unpaid := database.DB.Model(&models.UtilityBill{}).Where("status = ?", models.BillStatusUnpaid)
	if err := unpaid.Count(&s.UnpaidBills).Error; err != nil {
		return nil, err
	}
	if err := unpaid.Select("COALESCE(SUM(amount), 0)").Scan(&s.UnpaidAmount).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetExpenditureSummary covers the current calendar month.
func GetExpenditureSummary(now time.Time) (*ExpenditureSummary, error) {
	var s ExpenditureSummary

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	month := database.DB.Model(&models.Expenditure{}).Where("spent_at >= ?", monthStart)
	if err := month.Count(&s.MonthCount).Error; err != nil {
		return nil, err
	}
	if err := month.Select("COALESCE(SUM(amount), 0)").Scan(&s.MonthAmount).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func GetSupplierSummary(now time.Time, dueSoonDays int) (*SupplierSummary, error) {
	var s SupplierSummary

	open := database.DB.Model(&models.SupplierInvoice{}).Where("status <> ?", models.InvoiceStatusPaid)
	if err := open.Count(&s.OpenInvoices).Error; err != nil {
		return nil, err
	}
	if err := open.Select("COALESCE(SUM(amount), 0)").Scan(&s.OpenAmount).Error; err != nil {
		return nil, err
	}

	if err := database.DB.Model(&models.SupplierInvoice{}).
		Where("status <> ? AND due_date < ?", models.InvoiceStatusPaid, now).
		Count(&s.Overdue).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.SupplierInvoice{}).
		Where("status <> ? AND due_date >= ? AND due_date <= ?",
			models.InvoiceStatusPaid, now, now.AddDate(0, 0, dueSoonDays)).
		Count(&s.DueSoon).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
