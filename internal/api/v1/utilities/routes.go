package utilities

import (
	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/middleware"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/utilities")

	view := middleware.RequirePermission(models.ModuleUtilities, models.ActionView)
	create := middleware.RequirePermission(models.ModuleUtilities, models.ActionCreate)
	update := middleware.RequirePermission(models.ModuleUtilities, models.ActionUpdate)
	remove := middleware.RequirePermission(models.ModuleUtilities, models.ActionDelete)

	group.GET("/bills", view, ListBills)
	group.POST("/bills", create, CreateBill)
	group.PATCH("/bills/:id", update, UpdateBill)
	group.PATCH("/bills/:id/pay", update, PayBill)
	group.DELETE("/bills/:id", remove, DeleteBill)

	group.GET("/export", view, Export)
}
