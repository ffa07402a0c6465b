package expenditure

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

func toExpenditureResponse(e *models.Expenditure) ExpenditureResponse {
	return ExpenditureResponse{
		ID:          e.ID,
		CategoryID:  e.CategoryID,
		Description: e.Description,
		Amount:      e.Amount,
		SpentAt:     e.SpentAt,
		Details:     e.Details,
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

// CreateSection godoc
// @Summary Create an expenditure section
// @Tags expenditure
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SectionRequest true "Section"
// @Success 201 {object} utils.Response
// @Router /expenditure/sections [post]
func CreateSection(c *gin.Context) {
	var req SectionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	section := models.ExpenditureSection{Name: req.Name}
	if err := services.CreateSection(&section); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create section"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Section created successfully", section))
}

// ListSections godoc
// @Summary List expenditure sections
// @Tags expenditure
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Router /expenditure/sections [get]
func ListSections(c *gin.Context) {
	sections, err := services.FindSections()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch sections"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Sections retrieved successfully", sections))
}

// UpdateSection godoc
// @Summary Rename an expenditure section
// @Tags expenditure
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Section ID"
// @Param body body SectionRequest true "New name"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /expenditure/sections/{id} [patch]
func UpdateSection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid section ID"))
		return
	}

	var req SectionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	section, err := services.UpdateSection(uint(id), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Section not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update section"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Section updated successfully", section))
}

// DeleteSection godoc
// @Summary Delete an empty expenditure section
// @Tags expenditure
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Section ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /expenditure/sections/{id} [delete]
func DeleteSection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid section ID"))
		return
	}

	if err := services.DeleteSection(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrSectionNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Section not found"))
		case errors.Is(err, services.ErrSectionNotEmpty):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete section"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Section deleted successfully", nil))
}

// CreateCategory godoc
// @Summary Create an expenditure category
// @Tags expenditure
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CategoryRequest true "Category"
// @Success 201 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /expenditure/categories [post]
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	category := models.ExpenditureCategory{SectionID: req.SectionID, Name: req.Name}
	if err := services.CreateCategory(&category); err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Section not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create category"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Category created successfully", category))
}

// ListCategories godoc
// @Summary List expenditure categories
// @Tags expenditure
// @Produce json
// @Security ApiKeyAuth
// @Param section_id query int false "Filter by section"
// @Success 200 {object} utils.Response
// @Router /expenditure/categories [get]
func ListCategories(c *gin.Context) {
	var sectionID *uint
	if v := c.Query("section_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid section_id"))
			return
		}
		sid := uint(id)
		sectionID = &sid
	}

	categories, err := services.FindCategories(sectionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch categories"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Categories retrieved successfully", categories))
}

// DeleteCategory godoc
// @Summary Delete an empty expenditure category
// @Tags expenditure
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Category ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /expenditure/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid category ID"))
		return
	}

	if err := services.DeleteCategory(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Category not found"))
		case errors.Is(err, services.ErrCategoryNotEmpty):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete category"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Category deleted successfully", nil))
}

func filterFromQuery(c *gin.Context, page, limit int) (services.ExpenditureFilter, bool) {
	filter := services.ExpenditureFilter{Page: page, Limit: limit}

	if v := c.Query("section_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid section_id"))
			return filter, false
		}
		sid := uint(id)
		filter.SectionID = &sid
	}
	if v := c.Query("category_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid category_id"))
			return filter, false
		}
		cid := uint(id)
		filter.CategoryID = &cid
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

// CreateExpenditure godoc
// @Summary Record an expenditure
// @Tags expenditure
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateExpenditureRequest true "Expenditure"
// @Success 201 {object} utils.Response{data=ExpenditureResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /expenditure/expenditures [post]
func CreateExpenditure(c *gin.Context) {
	var req CreateExpenditureRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	spentAt := time.Now()
	if req.SpentAt != "" {
		parsed, err := time.Parse(dateLayout, req.SpentAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "spent_at must be YYYY-MM-DD"))
			return
		}
		spentAt = parsed
	}

	exp := models.Expenditure{
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Amount:      req.Amount,
		SpentAt:     spentAt,
		Details:     req.Details,
	}
	if err := services.CreateExpenditure(&exp); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create expenditure"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Expenditure recorded successfully", toExpenditureResponse(&exp)))
}

// ListExpenditures godoc
// @Summary List expenditures
// @Tags expenditure
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param section_id query int false "Filter by section"
// @Param category_id query int false "Filter by category"
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {object} utils.Response
// @Router /expenditure/expenditures [get]
func ListExpenditures(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	filter, ok := filterFromQuery(c, page, limit)
	if !ok {
		return
	}

	expenditures, total, err := services.FindExpenditures(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch expenditures"))
		return
	}

	items := make([]ExpenditureResponse, 0, len(expenditures))
	for i := range expenditures {
		items = append(items, toExpenditureResponse(&expenditures[i]))
	}

	c.JSON(http.StatusOK, utils.NewPagedResponse("Expenditures retrieved successfully", items, total, page, limit))
}

// UpdateExpenditure godoc
// @Summary Update an expenditure
// @Tags expenditure
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Expenditure ID"
// @Param body body UpdateExpenditureRequest true "Fields to update"
// @Success 200 {object} utils.Response{data=ExpenditureResponse}
// @Failure 404 {object} utils.Response
// @Router /expenditure/expenditures/{id} [patch]
func UpdateExpenditure(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid expenditure ID"))
		return
	}

	var req UpdateExpenditureRequest
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
	if req.SpentAt != nil {
		t, err := time.Parse(dateLayout, *req.SpentAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "spent_at must be YYYY-MM-DD"))
			return
		}
		updates["spent_at"] = t
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	exp, err := services.UpdateExpenditure(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrExpenditureNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Expenditure not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update expenditure"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Expenditure updated successfully", toExpenditureResponse(exp)))
}

// DeleteExpenditure godoc
// @Summary Delete an expenditure
// @Tags expenditure
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Expenditure ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /expenditure/expenditures/{id} [delete]
func DeleteExpenditure(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid expenditure ID"))
		return
	}

	if err := services.DeleteExpenditure(uint(id)); err != nil {
		if errors.Is(err, services.ErrExpenditureNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Expenditure not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete expenditure"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Expenditure deleted successfully", nil))
}

// Export godoc
// @Summary Export expenditures
// @Tags expenditure
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Router /expenditure/export [get]
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

	expenditures, _, err := services.FindExpenditures(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch expenditures"))
		return
	}

	categories, err := services.FindCategories(nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch categories"))
		return
	}
	names := make(map[uint]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	data, err := services.ExportExpenditures(expenditures, names, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to generate export"))
		return
	}

	utils.SendExport(c, "expenditures", string(format), data)
}
