package credit

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

func toBillResponse(b *models.CreditBill) BillResponse {
	return BillResponse{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		Description: b.Description,
		Amount:      b.Amount,
		Status:      string(b.Status),
		BillDate:    b.BillDate,
		PaidAt:      b.PaidAt,
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

// CreateCustomer godoc
// @Summary Create a credit customer
// @Tags credit
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateCustomerRequest true "Customer"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /credit/customers [post]
func CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	customer := models.CreditCustomer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Active:  true,
	}
	if err := services.CreateCreditCustomer(&customer); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create customer"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Customer created successfully", customer))
}

// ListCustomers godoc
// @Summary List credit customers
// @Tags credit
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param active query bool false "Only active customers"
// @Success 200 {object} utils.Response
// @Router /credit/customers [get]
func ListCustomers(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	activeOnly := c.Query("active") == "true"

	customers, total, err := services.FindCreditCustomers(page, limit, activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch customers"))
		return
	}

	c.JSON(http.StatusOK, utils.NewPagedResponse("Customers retrieved successfully", customers, total, page, limit))
}

// CustomerBalance godoc
// @Summary Outstanding balance for a customer
// @Tags credit
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} utils.Response{data=CustomerBalanceResponse}
// @Failure 404 {object} utils.Response
// @Router /credit/customers/{id}/balance [get]
func CustomerBalance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid customer ID"))
		return
	}

	customer, err := services.FindCreditCustomerByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Customer not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch customer"))
		return
	}

	outstanding, err := services.OutstandingBalance(customer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to compute balance"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Balance retrieved successfully", CustomerBalanceResponse{
		CustomerID:  customer.ID,
		Name:        customer.Name,
		Outstanding: outstanding,
	}))
}

// UpdateCustomer godoc
// @Summary Update a credit customer
// @Tags credit
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Customer ID"
// @Param body body UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /credit/customers/{id} [patch]
func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid customer ID"))
		return
	}

	var req UpdateCustomerRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	customer, err := services.UpdateCreditCustomer(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Customer not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update customer"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Customer updated successfully", customer))
}

// DeleteCustomer godoc
// @Summary Delete a credit customer
// @Tags credit
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /credit/customers/{id} [delete]
func DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid customer ID"))
		return
	}

	if err := services.DeleteCreditCustomer(uint(id)); err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Customer not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete customer"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Customer deleted successfully", nil))
}

// CreateBill godoc
// @Summary Create a credit bill
// @Tags credit
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateBillRequest true "Bill"
// @Success 201 {object} utils.Response{data=BillResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /credit/bills [post]
func CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	billDate := time.Now()
	if req.BillDate != "" {
		parsed, err := time.Parse(dateLayout, req.BillDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "bill_date must be YYYY-MM-DD"))
			return
		}
		billDate = parsed
	}

	bill := models.CreditBill{
		CustomerID:  req.CustomerID,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      models.BillStatusUnpaid,
		BillDate:    billDate,
	}
	if err := services.CreateCreditBill(&bill); err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Customer not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create bill"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Bill created successfully", toBillResponse(&bill)))
}

func billFilterFromQuery(c *gin.Context, page, limit int) (services.CreditBillFilter, bool) {
	filter := services.CreditBillFilter{Page: page, Limit: limit}

	if v := c.Query("customer_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid customer_id"))
			return filter, false
		}
		cid := uint(id)
		filter.CustomerID = &cid
	}
	if v := c.Query("status"); v != "" {
		status := models.BillStatus(v)
		filter.Status = &status
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

// ListBills godoc
// @Summary List credit bills
// @Tags credit
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param customer_id query int false "Filter by customer"
// @Param status query string false "PAID or UNPAID"
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {object} utils.Response
// @Router /credit/bills [get]
func ListBills(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	filter, ok := billFilterFromQuery(c, page, limit)
	if !ok {
		return
	}

	bills, total, err := services.FindCreditBills(filter)
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
// @Summary Update a credit bill
// @Tags credit
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Bill ID"
// @Param body body UpdateBillRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=BillResponse}
// @Failure 404 {object} utils.Response
// @Router /credit/bills/{id} [patch]
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
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.BillDate != nil {
		t, err := time.Parse(dateLayout, *req.BillDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "bill_date must be YYYY-MM-DD"))
			return
		}
		updates["bill_date"] = t
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	bill, err := services.UpdateCreditBill(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Bill not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update bill"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Bill updated successfully", toBillResponse(bill)))
}

// PayBill godoc
// @Summary Mark a credit bill paid
// @Tags credit
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Bill ID"
// @Success 200 {object} utils.Response{data=BillResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /credit/bills/{id}/pay [patch]
func PayBill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid bill ID"))
		return
	}

	bill, err := services.PayCreditBill(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBillNotFound):
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
// @Summary Delete a credit bill
// @Tags credit
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Bill ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /credit/bills/{id} [delete]
func DeleteBill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid bill ID"))
		return
	}

	if err := services.DeleteCreditBill(uint(id)); err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Bill not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete bill"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Bill deleted successfully", nil))
}

// Export godoc
// @Summary Export credit bills
// @Tags credit
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Router /credit/export [get]
func Export(c *gin.Context) {
	format := services.ExportFormat(c.DefaultQuery("format", "csv"))
	if format != services.FormatCSV && format != services.FormatXLSX {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "format must be csv or xlsx"))
		return
	}

	filter, ok := billFilterFromQuery(c, 1, 10000)
	if !ok {
		return
	}

	bills, _, err := services.FindCreditBills(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch bills"))
		return
	}

	customers, _, err := services.FindCreditCustomers(1, 10000, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch customers"))
		return
	}
	names := make(map[uint]string, len(customers))
	for _, cust := range customers {
		names[cust.ID] = cust.Name
	}

	data, err := services.ExportCreditBills(bills, names, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to generate export"))
		return
	}

	utils.SendExport(c, "credit_bills", string(format), data)
}
