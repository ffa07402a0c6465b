package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
)

func TestGetCreditSummary(t *testing.T) {
	setupTestDB()
	customer := seedCustomer(t, "R. Perera")

	bills := []models.CreditBill{
		{CustomerID: customer.ID, Amount: 100, BillDate: date(2026, time.May, 1)},
		{CustomerID: customer.ID, Amount: 50, BillDate: date(2026, time.May, 2)},
	}
	for i := range bills {
		assert.NoError(t, services.CreateCreditBill(&bills[i]))
	}
	_, err := services.PayCreditBill(bills[1].ID)
	assert.NoError(t, err)

	summary, err := services.GetCreditSummary()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), summary.Customers)
	assert.Equal(t, int64(1), summary.UnpaidBills)
	assert.InDelta(t, 100, summary.OutstandingAmount, 0.001)
}

func TestGetExpenditureSummaryCurrentMonthOnly(t *testing.T) {
	setupTestDB()

	section := models.ExpenditureSection{Name: "Shop"}
	assert.NoError(t, services.CreateSection(&section))
	category := models.ExpenditureCategory{SectionID: section.ID, Name: "Cleaning"}
	assert.NoError(t, services.CreateCategory(&category))

	now := date(2026, time.June, 15)
	expenditures := []models.Expenditure{
		{CategoryID: category.ID, Amount: 40, SpentAt: date(2026, time.June, 2)},
		{CategoryID: category.ID, Amount: 60, SpentAt: date(2026, time.June, 14)},
		{CategoryID: category.ID, Amount: 500, SpentAt: date(2026, time.May, 30)},
	}
	for i := range expenditures {
		assert.NoError(t, services.CreateExpenditure(&expenditures[i]))
	}

	summary, err := services.GetExpenditureSummary(now)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), summary.MonthCount)
	assert.InDelta(t, 100, summary.MonthAmount, 0.001)
}

func TestGetSupplierSummary(t *testing.T) {
	setupTestDB()

	now := date(2026, time.June, 10)
	seed := []models.SupplierInvoice{
		{Supplier: "A", GRNNumber: "GRN-S1", Amount: 100, InvoiceDate: date(2026, time.June, 1), CreditDays: 5},  // overdue
		{Supplier: "B", GRNNumber: "GRN-S2", Amount: 200, InvoiceDate: date(2026, time.June, 5), CreditDays: 7},  // due soon
		{Supplier: "C", GRNNumber: "GRN-S3", Amount: 300, InvoiceDate: date(2026, time.June, 1), CreditDays: 60}, // far out
		{Supplier: "D", GRNNumber: "GRN-S4", Amount: 400, InvoiceDate: date(2026, time.June, 1), CreditDays: 2},  // paid
	}
	for i := range seed {
		assert.NoError(t, services.CreateSupplierInvoice(&seed[i]))
	}
	_, err := services.PaySupplierInvoice(seed[3].ID)
	assert.NoError(t, err)

	summary, err := services.GetSupplierSummary(now, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), summary.OpenInvoices)
	assert.InDelta(t, 600, summary.OpenAmount, 0.001)
	assert.Equal(t, int64(1), summary.Overdue)
	assert.Equal(t, int64(1), summary.DueSoon)
}
