package routes

import (
	"github.com/Meakshayar/spacedrevisionapp/controllers"
	"github.com/Meakshayar/spacedrevisionapp/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.RouterGroup) {
	// Sync endpoints (anonymous clients)
	router.GET("/data", controllers.GetData())
	router.POST("/sync", controllers.SyncData())

	router.POST("/admin/login", controllers.AdminLogin())

	protected := router.Group("/admin")
	protected.Use(middleware.Authenticate())
	{
		// ADMIN only
		protected.GET("/summary",
			middleware.Authorize("ADMIN"),
			controllers.GetSummary(),
		)
		protected.DELETE("/reports/:reportId",
			middleware.Authorize("ADMIN"),
			controllers.DeleteReport(),
		)
	}
}
