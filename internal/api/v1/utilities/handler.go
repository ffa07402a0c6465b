package utilities

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/utils"
)

const dateLayout = "2006-01-02"

func toBillResponse(b *models.UtilityBill) BillResponse {
	return BillResponse{
		ID:        b.ID,
		Type:      string(b.Type),
		Provider:  b.Provider,
		AccountNo: b.AccountNo,
		BillMonth: b.BillMonth,
		Amount:    b.Amount,
		DueDate:   b.DueDate,
		Status:    string(b.Status),
		PaidAt:    b.PaidAt,
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

func filterFromQuery(c *gin.Context, page, limit int) services.UtilityBillFilter {
	filter := services.UtilityBillFilter{Page: page, Limit: limit}
	if v := c.Query("type"); v != "" {
		t := models.UtilityType(v)
		filter.Type = &t
	}
	if v := c.Query("status"); v != "" {
		s := models.BillStatus(v)
		filter.Status = &s
	}
	if v := c.Query("month"); v != "" {
		filter.BillMonth = &v
	}
	return filter
}

// CreateBill godoc
// @Summary Record a utility bill
// @Tags utilities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateBillRequest true "Bill"
// @Success 201 {object} utils.Response{data=BillResponse}
// @Failure 400 {object} utils.Response
// @Router /utilities/bills [post]
func CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "due_date must be YYYY-MM-DD"))
		return
	}

	bill := models.UtilityBill{
		Type:      models.UtilityType(req.Type),
		Provider:  req.Provider,
		AccountNo: req.AccountNo,
		BillMonth: req.BillMonth,
		Amount:    req.Amount,
		DueDate:   dueDate,
		Status:    models.BillStatusUnpaid,
	}
	if err := services.CreateUtilityBill(&bill); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create bill"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Bill created successfully", toBillResponse(&bill)))
}

// ListBills godoc
// @Summary List utility bills
// @Tags utilities
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param type query string false "Utility type"
// @Param status query string false "PAID or UNPAID"
// @Param month query string false "Bill month YYYY-MM"
// @Success 200 {object} utils.Response
// @Router /utilities/bills [get]
func ListBills(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	bills, total, err := services.FindUtilityBills(filterFromQuery(c, page, limit))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch bills"))
		return
	}

	items := make([]BillResponse, 0, len(bills))
	for i := range bills {
		items = append(items, toBillResponse(&bills[i]))
	}

	c.JSON(http.StatusOK, utils.NewPagedResponse("Bills retrieved successfully", items, total, page, limit))
}

// UpdateBill godoc
// @Summary Update a utility bill
// @Tags utilities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Bill ID"
// @Param body body UpdateBillRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=BillResponse}
// @Failure 404 {object} utils.Response
// @Router /utilities/bills/{id} [patch]
func UpdateBill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid bill ID"))
		return
	}

	var req UpdateBillRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.Provider != nil {
		updates["provider"] = *req.Provider
	}
	if req.AccountNo != nil {
		updates["account_no"] = *req.AccountNo
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.DueDate != nil {
		t, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "due_date must be YYYY-MM-DD"))
			return
		}
		updates["due_date"] = t
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	bill, err := services.UpdateUtilityBill(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrUtilityBillNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Bill not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update bill"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Bill updated successfully", toBillResponse(bill)))
}

// PayBill godoc
// @Summary Mark a utility bill paid
// @Tags utilities
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Bill ID"
// @Success 200 {object} utils.Response{data=BillResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /utilities/bills/{id}/pay [patch]
func PayBill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid bill ID"))
		return
	}

	bill, err := services.PayUtilityBill(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUtilityBillNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Bill not found"))
		case errors.Is(err, services.ErrBillAlreadyPaid):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to pay bill"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Bill marked paid", toBillResponse(bill)))
}

// DeleteBill godoc
// @Summary Delete a utility bill
// @Tags utilities
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Bill ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /utilities/bills/{id} [delete]
func DeleteBill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid bill ID"))
		return
	}

	if err := services.DeleteUtilityBill(uint(id)); err != nil {
		if errors.Is(err, services.ErrUtilityBillNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Bill not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete bill"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Bill deleted successfully", nil))
}

// Export godoc
// @Summary Export utility bills
// @Tags utilities
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Router /utilities/export [get]
func Export(c *gin.Context) {
	format := services.ExportFormat(c.DefaultQuery("format", "csv"))
	if format != services.FormatCSV && format != services.FormatXLSX {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "format must be csv or xlsx"))
		return
	}

	bills, _, err := services.FindUtilityBills(filterFromQuery(c, 1, 10000))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch bills"))
		return
	}

	data, err := services.ExportUtilityBills(bills, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to generate export"))
		return
	}

	utils.SendExport(c, "utility_bills", string(format), data)
}
