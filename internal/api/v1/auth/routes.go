package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	auth := router.Group("/auth")
	auth.POST("/login", Login(cfg))
	auth.POST("/logout", middleware.AuthMiddleware(cfg), Logout(cfg))
}
