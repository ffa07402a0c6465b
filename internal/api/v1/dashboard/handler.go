package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/utils"
)

// CreditSummary godoc
// @Summary Credit module dashboard figures
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.CreditSummary}
// @Router /dashboard/credit [get]
func CreditSummary(c *gin.Context) {
	summary, err := services.GetCreditSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to build summary"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Summary retrieved successfully", summary))
}

// UtilitySummary godoc
// @Summary Utilities module dashboard figures
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.UtilitySummary}
// @Router /dashboard/utilities [get]
func UtilitySummary(c *gin.Context) {
	summary, err := services.GetUtilitySummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to build summary"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Summary retrieved successfully", summary))
}

// ExpenditureSummary godoc
// @Summary Expenditure module dashboard figures
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.ExpenditureSummary}
// @Router /dashboard/expenditure [get]
func ExpenditureSummary(c *gin.Context) {
	summary, err := services.GetExpenditureSummary(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to build summary"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Summary retrieved successfully", summary))
}

// SupplierSummary godoc
// @Summary Supplier module dashboard figures
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.SupplierSummary}
// @Router /dashboard/suppliers [get]
func SupplierSummary(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := services.GetSupplierSummary(time.Now(), cfg.ReminderWindowDays)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to build summary"))
			return
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Summary retrieved successfully", summary))
	}
}
