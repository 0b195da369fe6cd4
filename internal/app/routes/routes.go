package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kaan/degreeplan/internal/app/controllers"
	"github.com/kaan/degreeplan/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	programController *controllers.ProgramController,
	planController *controllers.PlanController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.ListCourses)
		courses.GET("/:code", catalogController.GetCourse)
	}

	programs := v1.Group("/programs")
	{
		programs.GET("", programController.ListPrograms)
		programs.GET("/:id", programController.GetProgram)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.GetProfile)

		plans := authenticated.Group("/plans")
		{
			plans.POST("", planController.CreatePlan)
			plans.GET("", planController.ListPlans)
			plans.GET("/:id", planController.GetPlan)
			plans.DELETE("/:id", planController.DeletePlan)

			plans.POST("/:id/terms", planController.AddTerm)
			plans.DELETE("/:id/terms/:termId", planController.RemoveTerm)

			plans.POST("/:id/terms/:termId/courses", planController.AddCourse)
			plans.DELETE("/:id/terms/:termId/courses/:code", planController.RemoveCourse)
			plans.PATCH("/:id/terms/:termId/courses/:code", planController.UpdateCourse)
			plans.POST("/:id/courses/move", planController.MoveCourse)

			plans.GET("/:id/validation", planController.ValidateCourse)
			plans.GET("/:id/gpa", planController.GetGPA)
			plans.GET("/:id/progress", planController.GetProgress)
		}
	}
}
