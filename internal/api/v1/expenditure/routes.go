package expenditure

import (
	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/middleware"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/expenditure")

	view := middleware.RequirePermission(models.ModuleExpenditure, models.ActionView)
	create := middleware.RequirePermission(models.ModuleExpenditure, models.ActionCreate)
	update := middleware.RequirePermission(models.ModuleExpenditure, models.ActionUpdate)
	remove := middleware.RequirePermission(models.ModuleExpenditure, models.ActionDelete)

	group.GET("/sections", view, ListSections)
	group.POST("/sections", create, CreateSection)
	group.PATCH("/sections/:id", update, UpdateSection)
	group.DELETE("/sections/:id", remove, DeleteSection)

	group.GET("/categories", view, ListCategories)
	group.POST("/categories", create, CreateCategory)
	group.DELETE("/categories/:id", remove, DeleteCategory)

	group.GET("/expenditures", view, ListExpenditures)
	group.POST("/expenditures", create, CreateExpenditure)
	group.PATCH("/expenditures/:id", update, UpdateExpenditure)
	group.DELETE("/expenditures/:id", remove, DeleteExpenditure)

	group.GET("/export", view, Export)
}
