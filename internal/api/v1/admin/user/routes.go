package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users", CreateUser)
	router.GET("/users", ListUsers)
	router.PATCH("/users/:id", UpdateUser)
}
