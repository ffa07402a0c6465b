package permission

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/modules", ListModules)
	router.GET("/users/:id/permissions", GetUserGrants)
	router.PUT("/users/:id/permissions", UpsertUserGrants)
}
