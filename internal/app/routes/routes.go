package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eduface/eduface/internal/app/controllers"
	"github.com/eduface/eduface/internal/app/models"
	"github.com/eduface/eduface/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	attendanceController *controllers.AttendanceController,
	alertController *controllers.AlertController,
	doorController *controllers.DoorController,
	authMiddleware *middleware.AuthMiddleware,
	rateLimit gin.HandlerFunc,
) {
	// Probe and metrics endpoints stay outside the limited group
	api := router.Group("/api")
	api.Use(rateLimit)

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Any staff role can read the registry and mark attendance
		authenticated.GET("/students", studentController.List)
		authenticated.GET("/attendance", attendanceController.List)
		authenticated.POST("/attendance", attendanceController.Mark)

		// Registry mutations are admin only
		adminOnly := authenticated.Group("/students")
		adminOnly.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminOnly.POST("", studentController.Create)
			adminOnly.PUT("/:id", studentController.Update)
			adminOnly.DELETE("/:id", studentController.Delete)
		}

		// Alert feed and door relay belong to the security desk
		securityOnly := authenticated.Group("")
		securityOnly.Use(authMiddleware.RoleRequired(models.RoleSecurity))
		{
			securityOnly.GET("/alerts", alertController.List)
			securityOnly.POST("/door/open", doorController.Open)
		}
	}
}
