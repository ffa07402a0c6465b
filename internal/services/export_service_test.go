package services_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
)

func TestExportSupplierInvoicesCSV(t *testing.T) {
	paidAt := date(2026, time.April, 2)
	invoices := []models.SupplierInvoice{
		{
			ID:          1,
			Supplier:    "Acme Foods",
			GRNNumber:   "GRN-1001",
			Amount:      2500.5,
			InvoiceDate: date(2026, time.March, 20),
			CreditDays:  14,
			DueDate:     date(2026, time.April, 3),
			Status:      models.InvoiceStatusUnpaid,
		},
		{
			ID:          2,
			Supplier:    "Beta Traders",
			GRNNumber:   "GRN-1002",
			Amount:      990,
			InvoiceDate: date(2026, time.March, 25),
			CreditDays:  7,
			DueDate:     date(2026, time.April, 1),
			Status:      models.InvoiceStatusPaid,
			PaidAt:      &paidAt,
		},
	}

	data, err := services.ExportSupplierInvoices(invoices, services.FormatCSV)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Supplier", "GRN Number", "Amount", "Invoice Date", "Credit Days", "Due Date", "Status", "Paid At"}, records[0])
	assert.Equal(t, []string{"1", "Acme Foods", "GRN-1001", "2500.50", "2026-03-20", "14", "2026-04-03", "UNPAID", ""}, records[1])
	assert.Equal(t, []string{"2", "Beta Traders", "GRN-1002", "990.00", "2026-03-25", "7", "2026-04-01", "PAID", "2026-04-02"}, records[2])
}

func TestExportCreditBillsCSV(t *testing.T) {
	bills := []models.CreditBill{
		{
			ID:          7,
			CustomerID:  3,
			Description: "Groceries, weekly",
			Amount:      120.25,
			Status:      models.BillStatusUnpaid,
			BillDate:    date(2026, time.May, 2),
		},
	}
	customers := map[uint]string{3: "R. Perera"}

	data, err := services.ExportCreditBills(bills, customers, services.FormatCSV)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	// Commas inside fields survive the round trip.
	assert.Equal(t, []string{"7", "R. Perera", "Groceries, weekly", "120.25", "UNPAID", "2026-05-02", ""}, records[1])
}

func TestExportUtilityBillsXLSX(t *testing.T) {
	bills := []models.UtilityBill{
		{
			ID:        1,
			Type:      models.UtilityElectricity,
			Provider:  "CEB",
			AccountNo: "44-0021",
			BillMonth: "2026-05",
			Amount:    78.4,
			DueDate:   date(2026, time.June, 10),
			Status:    models.BillStatusUnpaid,
		},
	}

	data, err := services.ExportUtilityBills(bills, services.FormatXLSX)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Utility Bills")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "CEB", rows[1][2])
	assert.Equal(t, "78.40", rows[1][5])
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := services.ExportSupplierInvoices(nil, services.ExportFormat("pdf"))
	assert.Error(t, err)
}
