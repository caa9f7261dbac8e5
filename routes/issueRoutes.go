package routes

import (
	"hostelsync-be/controllers"
	"hostelsync-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine) {
	issue := r.Group("/api/issues")
	issue.Use(middlewares.AuthMiddleware())
	{
		issue.POST("",
			middlewares.RequireRole("student"),
			middlewares.IssueRateLimiter(10),
			controllers.CreateIssue,
		)
		issue.GET("", controllers.GetIssues)
		issue.PATCH("/:id/status",
			middlewares.RequireRole("management"),
			controllers.UpdateIssueStatus,
		)
	}
}
