package credit

import (
	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/middleware"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/credit")

	view := middleware.RequirePermission(models.ModuleCredit, models.ActionView)
	create := middleware.RequirePermission(models.ModuleCredit, models.ActionCreate)
	update := middleware.RequirePermission(models.ModuleCredit, models.ActionUpdate)
	remove := middleware.RequirePermission(models.ModuleCredit, models.ActionDelete)

	group.GET("/customers", view, ListCustomers)
	group.POST("/customers", create, CreateCustomer)
	group.GET("/customers/:id/balance", view, CustomerBalance)
	group.PATCH("/customers/:id", update, UpdateCustomer)
	group.DELETE("/customers/:id", remove, DeleteCustomer)

	group.GET("/bills", view, ListBills)
	group.POST("/bills", create, CreateBill)
	group.PATCH("/bills/:id", update, UpdateBill)
	group.PATCH("/bills/:id/pay", update, PayBill)
	group.DELETE("/bills/:id", remove, DeleteBill)

	group.GET("/export", view, Export)
}
