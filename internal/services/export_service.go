package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

// ExportFormat selects the serialization of an export endpoint.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

// exportTable is the common intermediate: a header row plus records.
type exportTable struct {
	Sheet   string
	Header  []string
	Records [][]string
}

func (t *exportTable) csv() ([]byte, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	if err := w.Write(t.Header); err != nil {
		return nil, err
	}
	for _, record := range t.Records {
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

func (t *exportTable) xlsx() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if t.Sheet != "" {
		f.SetSheetName(sheet, t.Sheet)
		sheet = t.Sheet
	}

	row := func(idx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, idx)
		if err != nil {
			return err
		}
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = v
		}
		return f.SetSheetRow(sheet, cell, &cells)
	}

	if err := row(1, t.Header); err != nil {
		return nil, err
	}
	for i, record := range t.Records {
		if err := row(i+2, record); err != nil {
			return nil, err
		}
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (t *exportTable) render(format ExportFormat) ([]byte, error) {
	switch format {
	case FormatCSV:
		return t.csv()
	case FormatXLSX:
		return t.xlsx()
	}
	return nil, fmt.Errorf("unsupported export format: %s", format)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// ExportCreditBills serializes credit bills with their customer names.
func ExportCreditBills(bills []models.CreditBill, customers map[uint]string, format ExportFormat) ([]byte, error) {
	table := &exportTable{
		Sheet:  "Credit Bills",
		Header: []string{"ID", "Customer", "Description", "Amount", "Status", "Bill Date", "Paid At"},
	}
	for _, b := range bills {
		table.Records = append(table.Records, []string{
			fmt.Sprintf("%d", b.ID),
			customers[b.CustomerID],
			b.Description,
			fmt.Sprintf("%.2f", b.Amount),
			string(b.Status),
			b.BillDate.Format("2006-01-02"),
			formatOptionalTime(b.PaidAt),
		})
	}
	return table.render(format)
}

func ExportUtilityBills(bills []models.UtilityBill, format ExportFormat) ([]byte, error) {
	table := &exportTable{
		Sheet:  "Utility Bills",
		Header: []string{"ID", "Type", "Provider", "Account No", "Bill Month", "Amount", "Due Date", "Status", "Paid At"},
	}
	for _, b := range bills {
		table.Records = append(table.Records, []string{
			fmt.Sprintf("%d", b.ID),
			string(b.Type),
			b.Provider,
			b.AccountNo,
			b.BillMonth,
			fmt.Sprintf("%.2f", b.Amount),
			b.DueDate.Format("2006-01-02"),
			string(b.Status),
			formatOptionalTime(b.PaidAt),
		})
	}
	return table.render(format)
}

func ExportExpenditures(expenditures []models.Expenditure, categories map[uint]string, format ExportFormat) ([]byte, error) {
	table := &exportTable{
		Sheet:  "Expenditures",
		Header: []string{"ID", "Category", "Description", "Amount", "Spent At"},
	}
	for _, e := range expenditures {
		table.Records = append(table.Records, []string{
			fmt.Sprintf("%d", e.ID),
			categories[e.CategoryID],
			e.Description,
			fmt.Sprintf("%.2f", e.Amount),
			e.SpentAt.Format("2006-01-02"),
		})
	}
	return table.render(format)
}

func ExportSupplierInvoices(invoices []models.SupplierInvoice, format ExportFormat) ([]byte, error) {
	table := &exportTable{
		Sheet:  "Supplier Invoices",
		Header: []string{"ID", "Supplier", "GRN Number", "Amount", "Invoice Date", "Credit Days", "Due Date", "Status", "Paid At"},
	}
	for _, inv := range invoices {
		table.Records = append(table.Records, []string{
			fmt.Sprintf("%d", inv.ID),
			inv.Supplier,
			inv.GRNNumber,
			fmt.Sprintf("%.2f", inv.Amount),
			inv.InvoiceDate.Format("2006-01-02"),
			fmt.Sprintf("%d", inv.CreditDays),
			inv.DueDate.Format("2006-01-02"),
			string(inv.Status),
			formatOptionalTime(inv.PaidAt),
		})
	}
	return table.render(format)
}
