package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/middleware"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

// Each card is gated by view access on the module it summarizes.
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	group := router.Group("/dashboard")

	group.GET("/credit", middleware.RequirePermission(models.ModuleCredit, models.ActionView), CreditSummary)
	group.GET("/utilities", middleware.RequirePermission(models.ModuleUtilities, models.ActionView), UtilitySummary)
	group.GET("/expenditure", middleware.RequirePermission(models.ModuleExpenditure, models.ActionView), ExpenditureSummary)
	group.GET("/suppliers", middleware.RequirePermission(models.ModuleSuppliers, models.ActionView), SupplierSummary(cfg))
}
