package routes

import (
	"hostelsync-be/controllers"
	"hostelsync-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AnnouncementRoutes sets up the announcement routes
func AnnouncementRoutes(r *gin.Engine) {
	announcement := r.Group("/api/announcements")
	announcement.Use(middlewares.AuthMiddleware())
	{
		announcement.POST("", middlewares.RequireRole("management"), controllers.CreateAnnouncement)
		announcement.GET("", controllers.GetAnnouncements)

		announcement.POST("/:id/react", controllers.AddReaction)
		announcement.DELETE("/:id/react", controllers.RemoveReaction)
		announcement.GET("/:id/reactions", controllers.GetReactions)

		announcement.POST("/:id/comment", controllers.AddComment)
		announcement.DELETE("/:id/comment/:commentId", controllers.DeleteComment)

		announcement.POST("/:id/comment/:commentId/reply", controllers.AddReply)
		announcement.DELETE("/:id/comment/:commentId/reply/:replyId", controllers.DeleteReply)
	}
}
