package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeDueDate(t *testing.T) {
	tests := []struct {
		name        string
		invoiceDate time.Time
		creditDays  int
		expected    time.Time
	}{
		{
			name:        "same month",
			invoiceDate: date(2026, time.March, 1),
			creditDays:  14,
			expected:    date(2026, time.March, 15),
		},
		{
			name:        "crosses month boundary",
			invoiceDate: date(2026, time.January, 25),
			creditDays:  10,
			expected:    date(2026, time.February, 4),
		},
		{
			name:        "crosses year boundary",
			invoiceDate: date(2025, time.December, 20),
			creditDays:  15,
			expected:    date(2026, time.January, 4),
		},
		{
			name:        "leap february",
			invoiceDate: date(2028, time.February, 20),
			creditDays:  10,
			expected:    date(2028, time.March, 1),
		},
		{
			name:        "zero credit days due immediately",
			invoiceDate: date(2026, time.June, 10),
			creditDays:  0,
			expected:    date(2026, time.June, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := models.SupplierInvoice{InvoiceDate: tt.invoiceDate, CreditDays: tt.creditDays}
			assert.Equal(t, tt.expected, inv.ComputeDueDate())
		})
	}
}

func TestCreateSupplierInvoice(t *testing.T) {
	setupTestDB()

	invoice := models.SupplierInvoice{
		Supplier:    "Acme Foods",
		GRNNumber:   "GRN-1001",
		Amount:      2500,
		InvoiceDate: date(2026, time.January, 25),
		CreditDays:  10,
	}
	assert.NoError(t, services.CreateSupplierInvoice(&invoice))
	assert.Equal(t, date(2026, time.February, 4), invoice.DueDate)
	assert.Equal(t, models.InvoiceStatusUnpaid, invoice.Status)

	duplicate := models.SupplierInvoice{
		Supplier:    "Other Supplier",
		GRNNumber:   "GRN-1001",
		Amount:      100,
		InvoiceDate: date(2026, time.February, 1),
	}
	assert.ErrorIs(t, services.CreateSupplierInvoice(&duplicate), services.ErrDuplicateGRN)
}

func TestUpdateSupplierInvoiceRecomputesDueDate(t *testing.T) {
	setupTestDB()

	invoice := models.SupplierInvoice{
		Supplier:    "Acme Foods",
		GRNNumber:   "GRN-2001",
		Amount:      1000,
		InvoiceDate: date(2026, time.March, 1),
		CreditDays:  7,
	}
	assert.NoError(t, services.CreateSupplierInvoice(&invoice))
	assert.Equal(t, date(2026, time.March, 8), invoice.DueDate)

	updated, err := services.UpdateSupplierInvoice(invoice.ID, map[string]interface{}{
		"credit_days": 30,
	})
	assert.NoError(t, err)
	assert.Equal(t, date(2026, time.March, 31), updated.DueDate)

	updated, err = services.UpdateSupplierInvoice(invoice.ID, map[string]interface{}{
		"invoice_date": date(2026, time.April, 15),
	})
	assert.NoError(t, err)
	assert.Equal(t, date(2026, time.May, 15), updated.DueDate)

	// An update touching neither field leaves the due date alone.
	updated, err = services.UpdateSupplierInvoice(invoice.ID, map[string]interface{}{
		"amount": 1200.0,
	})
	assert.NoError(t, err)
	assert.Equal(t, date(2026, time.May, 15), updated.DueDate)
}

func TestPaySupplierInvoice(t *testing.T) {
	setupTestDB()

	invoice := models.SupplierInvoice{
		Supplier:    "Acme Foods",
		GRNNumber:   "GRN-3001",
		Amount:      500,
		InvoiceDate: date(2026, time.May, 1),
		CreditDays:  5,
	}
	assert.NoError(t, services.CreateSupplierInvoice(&invoice))

	paid, err := services.PaySupplierInvoice(invoice.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	_, err = services.PaySupplierInvoice(invoice.ID)
	assert.ErrorIs(t, err, services.ErrInvoiceAlreadyPaid)

	_, err = services.PaySupplierInvoice(99999)
	assert.ErrorIs(t, err, services.ErrInvoiceNotFound)
}

func TestFindInvoicesDueWithin(t *testing.T) {
	setupTestDB()

	now := date(2026, time.June, 10)
	seed := []models.SupplierInvoice{
		{Supplier: "A", GRNNumber: "GRN-D1", Amount: 100, InvoiceDate: date(2026, time.June, 1), CreditDays: 5},  // due Jun 6, overdue
		{Supplier: "B", GRNNumber: "GRN-D2", Amount: 200, InvoiceDate: date(2026, time.June, 5), CreditDays: 7},  // due Jun 12, inside window
		{Supplier: "C", GRNNumber: "GRN-D3", Amount: 300, InvoiceDate: date(2026, time.June, 1), CreditDays: 30}, // due Jul 1, outside window
		{Supplier: "D", GRNNumber: "GRN-D4", Amount: 400, InvoiceDate: date(2026, time.June, 1), CreditDays: 3},  // due Jun 4 but paid
	}
	for i := range seed {
		assert.NoError(t, services.CreateSupplierInvoice(&seed[i]))
	}
	_, err := services.PaySupplierInvoice(seed[3].ID)
	assert.NoError(t, err)

	due, err := services.FindInvoicesDueWithin(3, now)
	assert.NoError(t, err)
	assert.Len(t, due, 2)

	grns := []string{due[0].GRNNumber, due[1].GRNNumber}
	assert.Contains(t, grns, "GRN-D1")
	assert.Contains(t, grns, "GRN-D2")
}

func TestDaysRemaining(t *testing.T) {
	inv := models.SupplierInvoice{DueDate: date(2026, time.June, 15)}

	assert.Equal(t, 5, inv.DaysRemaining(date(2026, time.June, 10)))
	assert.Equal(t, 0, inv.DaysRemaining(date(2026, time.June, 15)))
	assert.Equal(t, -3, inv.DaysRemaining(date(2026, time.June, 18)))
}
