package routes

import (
	"hostelsync-be/controllers"
	"hostelsync-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
		auth.PATCH("/profile", middlewares.AuthMiddleware(), controllers.UpdateProfile)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)
	}
}
