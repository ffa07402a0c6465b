package suppliers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/utils"
)

const dateLayout = "2006-01-02"

func toInvoiceResponse(inv *models.SupplierInvoice, now time.Time) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		Supplier:      inv.Supplier,
		GRNNumber:     inv.GRNNumber,
		Amount:        inv.Amount,
		InvoiceDate:   inv.InvoiceDate,
		CreditDays:    inv.CreditDays,
		DueDate:       inv.DueDate,
		DaysRemaining: inv.DaysRemaining(now),
		Status:        string(inv.Status),
		PaidAt:        inv.PaidAt,
		Attachments:   inv.Attachments,
	}
}

func parsePagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return 0, 0, false
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return 0, 0, false
	}
	return page, limit, true
}

func filterFromQuery(c *gin.Context, page, limit int) (services.InvoiceFilter, bool) {
	filter := services.InvoiceFilter{Page: page, Limit: limit}

	if v := c.Query("supplier"); v != "" {
		filter.Supplier = &v
	}
	if v := c.Query("status"); v != "" {
		s := models.InvoiceStatus(v)
		filter.Status = &s
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "from must be YYYY-MM-DD"))
			return filter, false
		}
		filter.StartDate = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "to must be YYYY-MM-DD"))
			return filter, false
		}
		filter.EndDate = &t
	}
	return filter, true
}

// CreateInvoice godoc
// @Summary Record a supplier invoice
// @Tags suppliers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateInvoiceRequest true "Invoice"
// @Success 201 {object} utils.Response{data=InvoiceResponse}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /suppliers/invoices [post]
func CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	invoiceDate, err := time.Parse(dateLayout, req.InvoiceDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "invoice_date must be YYYY-MM-DD"))
		return
	}

	invoice := models.SupplierInvoice{
		Supplier:    req.Supplier,
		GRNNumber:   req.GRNNumber,
		Amount:      req.Amount,
		InvoiceDate: invoiceDate,
		CreditDays:  req.CreditDays,
		Attachments: req.Attachments,
	}
	if err := services.CreateSupplierInvoice(&invoice); err != nil {
		if errors.Is(err, services.ErrDuplicateGRN) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create invoice"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Invoice created successfully", toInvoiceResponse(&invoice, time.Now())))
}

// ListInvoices godoc
// @Summary List supplier invoices
// @Tags suppliers
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param supplier query string false "Filter by supplier name"
// @Param status query string false "PAID, UNPAID or PENDING"
// @Param from query string false "Invoice date start YYYY-MM-DD"
// @Param to query string false "Invoice date end YYYY-MM-DD"
// @Success 200 {object} utils.Response
// @Router /suppliers/invoices [get]
func ListInvoices(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	filter, ok := filterFromQuery(c, page, limit)
	if !ok {
		return
	}

	invoices, total, err := services.FindSupplierInvoices(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch invoices"))
		return
	}

	now := time.Now()
	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, toInvoiceResponse(&invoices[i], now))
	}

	c.JSON(http.StatusOK, utils.NewPagedResponse("Invoices retrieved successfully", items, total, page, limit))
}

// UpdateInvoice godoc
// @Summary Update a supplier invoice
// @Tags suppliers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Invoice ID"
// @Param body body UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=InvoiceResponse}
// @Failure 404 {object} utils.Response
// @Router /suppliers/invoices/{id} [patch]
func UpdateInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid invoice ID"))
		return
	}

	var req UpdateInvoiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.Supplier != nil {
		updates["supplier"] = *req.Supplier
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.InvoiceDate != nil {
		t, err := time.Parse(dateLayout, *req.InvoiceDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "invoice_date must be YYYY-MM-DD"))
			return
		}
		updates["invoice_date"] = t
	}
	if req.CreditDays != nil {
		updates["credit_days"] = *req.CreditDays
	}
	if req.Status != nil {
		updates["status"] = models.InvoiceStatus(*req.Status)
	}
	if req.Attachments != nil {
		updates["attachments"] = req.Attachments
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	invoice, err := services.UpdateSupplierInvoice(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Invoice not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update invoice"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Invoice updated successfully", toInvoiceResponse(invoice, time.Now())))
}

// PayInvoice godoc
// @Summary Mark a supplier invoice paid
// @Tags suppliers
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Invoice ID"
// @Success 200 {object} utils.Response{data=InvoiceResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /suppliers/invoices/{id}/pay [patch]
func PayInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid invoice ID"))
		return
	}

	invoice, err := services.PaySupplierInvoice(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Invoice not found"))
		case errors.Is(err, services.ErrInvoiceAlreadyPaid):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to pay invoice"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Invoice marked paid", toInvoiceResponse(invoice, time.Now())))
}

// DeleteInvoice godoc
// @Summary Delete a supplier invoice
// @Tags suppliers
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Invoice ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /suppliers/invoices/{id} [delete]
func DeleteInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid invoice ID"))
		return
	}

	if err := services.DeleteSupplierInvoice(uint(id)); err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Invoice not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete invoice"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Invoice deleted successfully", nil))
}

// ListDueInvoices godoc
// @Summary List invoices due soon or overdue
// @Tags suppliers
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "Lookahead window in days, defaults to the configured reminder window"
// @Success 200 {object} utils.Response
// @Router /suppliers/invoices/due [get]
func ListDueInvoices(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := cfg.ReminderWindowDays
		if v := c.Query("days"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid days value"))
				return
			}
			days = parsed
		}

		now := time.Now()
		invoices, err := services.FindInvoicesDueWithin(days, now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch due invoices"))
			return
		}

		items := make([]InvoiceResponse, 0, len(invoices))
		for i := range invoices {
			items = append(items, toInvoiceResponse(&invoices[i], now))
		}

		c.JSON(http.StatusOK, utils.NewSuccessResponse("Due invoices retrieved successfully", items))
	}
}

// Calendar godoc
// @Summary iCalendar feed of open invoice due dates
// @Tags suppliers
// @Produce text/calendar
// @Security ApiKeyAuth
// @Success 200 {string} string
// @Router /suppliers/invoices/calendar.ics [get]
func Calendar(c *gin.Context) {
	invoices, _, err := services.FindSupplierInvoices(services.InvoiceFilter{Page: 1, Limit: 10000})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch invoices"))
		return
	}

	feed := services.GenerateInvoiceCalendar(invoices, time.Now())
	c.Header("Content-Disposition", `attachment; filename="supplier_invoices.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// Export godoc
// @Summary Export supplier invoices
// @Tags suppliers
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Router /suppliers/export [get]
func Export(c *gin.Context) {
	format := services.ExportFormat(c.DefaultQuery("format", "csv"))
	if format != services.FormatCSV && format != services.FormatXLSX {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "format must be csv or xlsx"))
		return
	}

	filter, ok := filterFromQuery(c, 1, 10000)
	if !ok {
		return
	}

	invoices, _, err := services.FindSupplierInvoices(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch invoices"))
		return
	}

	data, err := services.ExportSupplierInvoices(invoices, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to generate export"))
		return
	}

	utils.SendExport(c, "supplier_invoices", string(format), data)
}
