package services

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

// GenerateInvoiceCalendar renders an iCalendar feed with one all-day
// event per open supplier invoice, placed on its due date. Staff
// subscribe to this from their calendar client.
func GenerateInvoiceCalendar(invoices []models.SupplierInvoice, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//crediflow//supplier reminders//EN")
	cal.SetName("Supplier invoice due dates")

	for _, inv := range invoices {
		if inv.Status == models.InvoiceStatusPaid {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("invoice-%d@crediflow", inv.ID))
		event.SetCreatedTime(inv.CreatedAt)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(inv.DueDate)
		event.SetAllDayEndAt(inv.DueDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("Pay %s - GRN %s (%.2f)", inv.Supplier, inv.GRNNumber, inv.Amount))
		event.SetDescription(fmt.Sprintf("Invoice dated %s, %d credit days",
			inv.InvoiceDate.Format("2006-01-02"), inv.CreditDays))
	}

	return cal.Serialize()
}
