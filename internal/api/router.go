package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
	_ "github.com/ShakeelGadafi/crediflow-sub000/docs"
	adminPermission "github.com/ShakeelGadafi/crediflow-sub000/internal/api/v1/admin/permission"
	adminUser "github.com/ShakeelGadafi/crediflow-sub000/internal/api/v1/admin/user"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/api/v1/auth"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/api/v1/common/upload"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/api/v1/credit"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/api/v1/dashboard"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/api/v1/expenditure"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/api/v1/suppliers"
	userRoutes "github.com/ShakeelGadafi/crediflow-sub000/internal/api/v1/user"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/api/v1/utilities"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/middleware"
)

// NewRouter wires the full HTTP surface. Database and Redis
// connections are established by the caller before this runs.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded attachments are served straight off disk.
	router.Static("/uploads", cfg.UploadDir)

	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, cfg)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			userRoutes.RegisterRoutes(authorized)
			upload.RegisterRoutes(authorized, cfg)

			credit.RegisterRoutes(authorized)
			utilities.RegisterRoutes(authorized)
			expenditure.RegisterRoutes(authorized)
			suppliers.RegisterRoutes(authorized, cfg)
			dashboard.RegisterRoutes(authorized, cfg)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
		{
			adminUser.RegisterRoutes(admin)
			adminPermission.RegisterRoutes(admin)
		}
	}

	return router
}
