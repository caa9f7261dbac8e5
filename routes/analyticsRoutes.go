package routes

import (
	"hostelsync-be/controllers"
	"hostelsync-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AnalyticsRoutes sets up the management analytics route
func AnalyticsRoutes(r *gin.Engine) {
	analytics := r.Group("/api/analytics")
	analytics.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("management"))
	{
		analytics.GET("", controllers.GetAnalytics)
	}
}
