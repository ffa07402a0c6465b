package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/database"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

var (
	ErrInvoiceNotFound    = errors.New("supplier invoice not found")
	ErrDuplicateGRN       = errors.New("an invoice with this GRN number already exists")
	ErrInvoiceAlreadyPaid = errors.New("invoice is already paid")
)

// InvoiceFilter defines criteria for filtering supplier invoices
type InvoiceFilter struct {
	Supplier  *string
	Status    *models.InvoiceStatus
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

func CreateSupplierInvoice(invoice *models.SupplierInvoice) error {
	var existing models.SupplierInvoice
	result := database.DB.Where("grn_number = ?", invoice.GRNNumber).First(&existing)
	if result.Error == nil {
		return ErrDuplicateGRN
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusUnpaid
	}
	invoice.DueDate = invoice.ComputeDueDate()

	return database.DB.Create(invoice).Error
}

func FindSupplierInvoices(filter InvoiceFilter) ([]models.SupplierInvoice, int64, error) {
	var invoices []models.SupplierInvoice
	var total int64

	query := database.DB.Model(&models.SupplierInvoice{})

	if filter.Supplier != nil {
		query = query.Where("supplier = ?", *filter.Supplier)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("invoice_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("invoice_date <= ?", *filter.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("due_date").Limit(filter.Limit).Offset(offset).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func FindSupplierInvoiceByID(id uint) (models.SupplierInvoice, error) {
	var invoice models.SupplierInvoice
	if err := database.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invoice, ErrInvoiceNotFound
		}
		return invoice, err
	}
	return invoice, nil
}

// UpdateSupplierInvoice applies selective updates. Changing the
// invoice date or the credit days recomputes the due date.
func UpdateSupplierInvoice(id uint, updates map[string]interface{}) (*models.SupplierInvoice, error) {
	invoice, err := FindSupplierInvoiceByID(id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["invoice_date"].(time.Time); ok {
		invoice.InvoiceDate = v
	}
	if v, ok := updates["credit_days"].(int); ok {
		invoice.CreditDays = v
	}
	if _, ok := updates["invoice_date"]; ok {
		updates["due_date"] = invoice.ComputeDueDate()
	} else if _, ok := updates["credit_days"]; ok {
		updates["due_date"] = invoice.ComputeDueDate()
	}

	if err := database.DB.Model(&invoice).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func PaySupplierInvoice(id uint) (*models.SupplierInvoice, error) {
	invoice, err := FindSupplierInvoiceByID(id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == models.InvoiceStatusPaid {
		return nil, ErrInvoiceAlreadyPaid
	}

	now := time.Now()
	updates := map[string]interface{}{"status": models.InvoiceStatusPaid, "paid_at": &now}
	if err := database.DB.Model(&invoice).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func DeleteSupplierInvoice(id uint) error {
	result := database.DB.Delete(&models.SupplierInvoice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// FindInvoicesDueWithin returns unpaid and pending invoices whose due
// date falls inside the window, plus everything already overdue.
func FindInvoicesDueWithin(days int, now time.Time) ([]models.SupplierInvoice, error) {
	cutoff := now.AddDate(0, 0, days)

	var invoices []models.SupplierInvoice
	err := database.DB.
		Where("status <> ?", models.InvoiceStatusPaid).
		Where("due_date <= ?", cutoff).
		Order("due_date").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}
