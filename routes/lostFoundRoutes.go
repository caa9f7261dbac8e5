package routes

import (
	"hostelsync-be/controllers"
	"hostelsync-be/middlewares"

	"github.com/gin-gonic/gin"
)

// LostFoundRoutes sets up the lost & found routes
func LostFoundRoutes(r *gin.Engine) {
	lostFound := r.Group("/api/lost-found")
	lostFound.Use(middlewares.AuthMiddleware())
	{
		lostFound.POST("", controllers.CreateLostFoundItem)
		lostFound.GET("", controllers.GetLostFoundItems)
		lostFound.POST("/:id/claim", controllers.RequestClaim)
		lostFound.PATCH("/:id/approve", middlewares.RequireRole("management"), controllers.ApproveClaim)
	}
}
