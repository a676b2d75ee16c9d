package routes

import (
	"github.com/HarshaVardhank74/Nutricook/config"
	"github.com/HarshaVardhank74/Nutricook/controllers"
	"github.com/HarshaVardhank74/Nutricook/middlewares"
	"github.com/HarshaVardhank74/Nutricook/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	checkerCtl := controllers.NewCheckerController(hub)
	realtimeCtl := controllers.NewRealtimeController(hub)
	analyticsCtl := controllers.NewAnalyticsController(services.NewAnalyticsService(config.DB))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	checker := r.Group("/checker")
	checker.Use(middlewares.AuthMiddleware())
	{
		checker.POST("", checkerCtl.CheckMeal)
		checker.GET("/history", checkerCtl.History)
	}

	recipes := r.Group("/recipes")
	recipes.Use(middlewares.AuthMiddleware())
	{
		recipes.POST("/recommend", controllers.Recommend)
		recipes.POST("/generate", controllers.Generate)
	}

	home := r.Group("/home")
	home.Use(middlewares.AuthMiddleware())
	{
		home.GET("", controllers.Home)
	}

	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/summary", analyticsCtl.GetScoreSummary)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/score", realtimeCtl.ScoreWS)
	}

	return r
}
