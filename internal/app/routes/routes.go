package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lmshub/lms-backend/internal/app/controllers"
	"github.com/lmshub/lms-backend/internal/app/models/dto"
	"github.com/lmshub/lms-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	dashboardController *controllers.DashboardController,
	recommendationController *controllers.RecommendationController,
	courseController *controllers.CourseController,
	chatController *controllers.ChatController,
	helloController *controllers.HelloController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/hello", helloController.Hello)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/hello/me", helloController.HelloAuthenticated)
		authenticated.GET("/dashboard", dashboardController.GetDashboard)
		authenticated.GET("/recommendations", recommendationController.GetRecommendations)

		courses := authenticated.Group("/courses")
		{
			courses.GET("/search", courseController.SearchCourses)
			courses.POST("/:courseName/enroll", courseController.Enroll)
		}

		chat := authenticated.Group("/chat")
		{
			chat.POST("/messages", chatController.SendMessage)
		}
	}
}
