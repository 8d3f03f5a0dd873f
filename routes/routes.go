package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Aashu-1911/Fitness-traker/controllers"
	"github.com/Aashu-1911/Fitness-traker/middlewares"
)

// Controllers bundles the constructed controllers the router mounts.
type Controllers struct {
	Auth            *controllers.AuthController
	Health          *controllers.HealthController
	Logs            *controllers.LogController
	Analytics       *controllers.AnalyticsController
	Challenges      *controllers.ChallengeController
	Recommendations *controllers.RecommendationController
}

func SetupRouter(jwtSecret []byte, ctrl Controllers) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	// Everything else requires a valid token
	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware(jwtSecret))

	health := protected.Group("/health")
	{
		health.GET("/profile", ctrl.Health.GetProfile)
		health.POST("/profile", ctrl.Health.CreateProfile)
		health.PUT("/profile", ctrl.Health.UpdateProfile)
	}

	logs := protected.Group("/logs")
	{
		logs.POST("/water", ctrl.Logs.AddWater)
		logs.POST("/calories", ctrl.Logs.AddCalories)
		logs.POST("/workout", ctrl.Logs.AddWorkout)
		logs.POST("/weight", ctrl.Logs.AddWeight)
		logs.GET("/today", ctrl.Logs.GetToday)
		logs.GET("/range", ctrl.Logs.GetRange)
	}

	analytics := protected.Group("/analytics")
	{
		analytics.GET("/weight-trend", ctrl.Analytics.GetWeightTrend)
		analytics.GET("/water-trend", ctrl.Analytics.GetWaterTrend)
		analytics.GET("/calorie-trend", ctrl.Analytics.GetCalorieTrend)
		analytics.GET("/workout-summary", ctrl.Analytics.GetWorkoutSummary)
		analytics.GET("/dashboard", ctrl.Analytics.GetDashboard)
	}

	challenges := protected.Group("/challenges")
	{
		challenges.GET("/daily", ctrl.Challenges.GetDaily)
		challenges.GET("/weekly", ctrl.Challenges.GetWeekly)
		challenges.PUT("/complete/:id", ctrl.Challenges.Complete)
		challenges.GET("/history", ctrl.Challenges.GetHistory)
	}

	recommendations := protected.Group("/recommendations")
	{
		recommendations.GET("/exercise", ctrl.Recommendations.GetExercise)
		recommendations.GET("/diet", ctrl.Recommendations.GetDiet)
		recommendations.GET("/complete", ctrl.Recommendations.GetComplete)
	}

	return r
}
