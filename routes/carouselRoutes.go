package routes

import (
	"hostelsync-be/controllers"
	"hostelsync-be/middlewares"

	"github.com/gin-gonic/gin"
)

// CarouselRoutes sets up the carousel routes
func CarouselRoutes(r *gin.Engine) {
	carousel := r.Group("/api/carousel")
	{
		carousel.GET("", controllers.GetCarousels)

		admin := carousel.Group("/admin")
		admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("management"))
		{
			admin.GET("/all", controllers.GetAllCarousels)
			admin.POST("", controllers.CreateCarousel)
			admin.PATCH("/:id", controllers.UpdateCarousel)
			admin.PATCH("/:id/toggle", controllers.ToggleCarousel)
			admin.DELETE("/:id", controllers.DeleteCarousel)
		}
	}
}
