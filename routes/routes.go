package routes

import (
	"math/rand"
	"time"

	"caloriex-backend/config"
	"caloriex-backend/controllers"
	"caloriex-backend/middlewares"
	"caloriex-backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// adapter caches: one per source so state never leaks across them
	regional := services.NewRegionalFoodService(config.DB, services.NewTTLCache(15*time.Minute))
	custom := services.NewCustomFoodService(config.DB, services.NewTTLCache(15*time.Minute))
	international := services.NewUSDAFoodService(services.NewTTLCache(15 * time.Minute))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	planSvc := services.NewPlanService(config.DB, regional, custom, international, rng)
	goalSvc := services.NewDailyGoalService(config.DB)
	logSvc := services.NewDailyLogService(config.DB, regional, custom, international)
	hub := services.NewRealtimeHub()

	foodCtl := controllers.NewFoodController(regional, custom, international)
	planCtl := controllers.NewPlanController(planSvc)
	logCtl := controllers.NewLogController(logSvc, goalSvc, hub)
	goalCtl := controllers.NewGoalController(goalSvc, logSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.GET("/food/search", foodCtl.Search)
		api.GET("/food/:source/:id", foodCtl.GetByID)

		api.POST("/plans/generate", planCtl.Generate)
		api.GET("/plans", planCtl.List)
		api.GET("/plans/:id", planCtl.Get)

		api.POST("/logs", logCtl.LogFood)
		api.GET("/logs", logCtl.GetDay)
		api.DELETE("/logs/:id", logCtl.DeleteEntry)

		api.GET("/goals", goalCtl.Get)
		api.PATCH("/goals", goalCtl.Update)

		api.GET("/ws/totals", rtCtl.TotalsWS)
	}

	return r
}
