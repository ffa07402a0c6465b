package upload

import (
	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	router.POST("/common/upload", Upload(cfg))
}
