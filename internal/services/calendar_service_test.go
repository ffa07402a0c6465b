package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
)

func TestGenerateInvoiceCalendar(t *testing.T) {
	paidAt := date(2026, time.April, 1)
	invoices := []models.SupplierInvoice{
		{
			ID:          1,
			Supplier:    "Acme Foods",
			GRNNumber:   "GRN-1001",
			Amount:      2500,
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
			InvoiceDate: date(2026, time.March, 22),
			CreditDays:  30,
			DueDate:     date(2026, time.April, 21),
			Status:      models.InvoiceStatusPending,
		},
		{
			ID:          3,
			Supplier:    "Gamma Ltd",
			GRNNumber:   "GRN-1003",
			Amount:      150,
			InvoiceDate: date(2026, time.March, 1),
			CreditDays:  7,
			DueDate:     date(2026, time.March, 8),
			Status:      models.InvoiceStatusPaid,
			PaidAt:      &paidAt,
		},
	}

	feed := services.GenerateInvoiceCalendar(invoices, date(2026, time.March, 30))

	assert.True(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR"))
	assert.Contains(t, feed, "METHOD:PUBLISH")

	// One event per open invoice; paid invoices stay out of the feed.
	assert.Equal(t, 2, strings.Count(feed, "BEGIN:VEVENT"))
	assert.Contains(t, feed, "invoice-1@crediflow")
	assert.Contains(t, feed, "invoice-2@crediflow")
	assert.NotContains(t, feed, "invoice-3@crediflow")

	assert.Contains(t, feed, "GRN-1001")
	assert.Contains(t, feed, "DTSTART;VALUE=DATE:20260403")
}

func TestGenerateInvoiceCalendarEmpty(t *testing.T) {
	feed := services.GenerateInvoiceCalendar(nil, time.Now())

	assert.True(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR"))
	assert.Equal(t, 0, strings.Count(feed, "BEGIN:VEVENT"))
}
