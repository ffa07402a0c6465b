package suppliers

import (
	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/middleware"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	group := router.Group("/suppliers")

	view := middleware.RequirePermission(models.ModuleSuppliers, models.ActionView)
	create := middleware.RequirePermission(models.ModuleSuppliers, models.ActionCreate)
	update := middleware.RequirePermission(models.ModuleSuppliers, models.ActionUpdate)
	remove := middleware.RequirePermission(models.ModuleSuppliers, models.ActionDelete)

	group.GET("/invoices", view, ListInvoices)
	group.POST("/invoices", create, CreateInvoice)
	group.GET("/invoices/due", view, ListDueInvoices(cfg))
	group.GET("/invoices/calendar.ics", view, Calendar)
	group.PATCH("/invoices/:id", update, UpdateInvoice)
	group.PATCH("/invoices/:id/pay", update, PayInvoice)
	group.DELETE("/invoices/:id", remove, DeleteInvoice)

	group.GET("/export", view, Export)
}
