package routes

import (
	"log"
	"net/http"

	"github.com/JUN1078/game-based-learning/controllers"
	"github.com/JUN1078/game-based-learning/middlewares"
	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Services
	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db)
	gameSvc := services.NewGameService(db)
	levelSvc := services.NewLevelService(db)
	challengeSvc := services.NewChallengeService(db)
	attemptSvc := services.NewAttemptService(db)
	analyticsSvc := services.NewAnalyticsService(db)
	inBodySvc := services.NewInBodyService(db)
	corosSvc := services.NewCorosService(db)
	foodSvc := services.NewFoodService(db)
	energySvc := services.NewEnergyService(inBodySvc, corosSvc, foodSvc, userSvc)

	aiSvc := services.NewOpenAIService()
	rekSvc, err := services.NewRekognitionService()
	if err != nil {
		log.Printf("Rekognition unavailable: %v", err)
		rekSvc = nil
	}
	parseSvc := services.NewParseService(aiSvc, rekSvc)

	rt := services.NewRealtimeHub()
	pushSvc, err := services.NewPushService(db)
	if err != nil {
		log.Printf("push notifications unavailable: %v", err)
		pushSvc = nil
	}
	services.InitAlertDeps(db, rt, pushSvc, analyticsSvc)

	// Controllers
	authCtl := controllers.NewAuthController(authSvc, userSvc)
	gameCtl := controllers.NewGameController(gameSvc)
	levelCtl := controllers.NewLevelController(levelSvc)
	challengeCtl := controllers.NewChallengeController(challengeSvc)
	attemptCtl := controllers.NewAttemptController(attemptSvc)
	analyticsCtl := controllers.NewAnalyticsController(analyticsSvc)
	aiCtl := controllers.NewAIController(aiSvc)
	energyCtl := controllers.NewEnergyController(energySvc)
	inBodyCtl := controllers.NewInBodyController(inBodySvc, parseSvc)
	corosCtl := controllers.NewCorosController(corosSvc, parseSvc)
	foodCtl := controllers.NewFoodController(foodSvc, parseSvc)
	rtCtl := controllers.NewRealtimeController(rt)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected user routes
	user := api.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", authCtl.Me)
		user.PUT("/profile", authCtl.UpdateProfile)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.GET("/alerts", controllers.ListAlerts)
	}

	// Game catalog. Reads are open to any signed-in user; writes need
	// the admin role.
	games := api.Group("/games")
	games.Use(middlewares.AuthMiddleware())
	{
		games.GET("", gameCtl.List)
		games.GET("/:id", gameCtl.Get)
		games.GET("/:id/levels", levelCtl.ListByGame)
		games.GET("/:id/analytics", analyticsCtl.GameAnalytics)
		games.GET("/:id/leaderboard", analyticsCtl.Leaderboard)
	}
	gamesAdmin := api.Group("/games")
	gamesAdmin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		gamesAdmin.POST("", gameCtl.Create)
		gamesAdmin.PUT("/:id", gameCtl.Update)
		gamesAdmin.DELETE("/:id", gameCtl.Delete)
		gamesAdmin.POST("/:id/publish", gameCtl.Publish)
		gamesAdmin.POST("/:id/duplicate", gameCtl.Duplicate)
		gamesAdmin.POST("/:id/levels", levelCtl.Create)
		gamesAdmin.POST("/:id/levels/reorder", levelCtl.Reorder)
	}

	levels := api.Group("/levels")
	levels.Use(middlewares.AuthMiddleware())
	{
		levels.GET("/:id", levelCtl.Get)
		levels.GET("/:id/challenges", challengeCtl.ListByLevel)
	}
	levelsAdmin := api.Group("/levels")
	levelsAdmin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		levelsAdmin.PUT("/:id", levelCtl.Update)
		levelsAdmin.DELETE("/:id", levelCtl.Delete)
		levelsAdmin.POST("/:id/challenges", challengeCtl.Create)
	}

	challengesAdmin := api.Group("/challenges")
	challengesAdmin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		challengesAdmin.PUT("/:id", challengeCtl.Update)
		challengesAdmin.DELETE("/:id", challengeCtl.Delete)
	}

	attempts := api.Group("/attempts")
	attempts.Use(middlewares.AuthMiddleware())
	{
		attempts.GET("", attemptCtl.ListMine)
		attempts.POST("", attemptCtl.Start)
		attempts.PATCH("/:id", attemptCtl.Update)
		attempts.POST("/:id/complete", attemptCtl.Complete)
	}

	ai := api.Group("/ai")
	ai.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		ai.POST("/generate-questions", aiCtl.GenerateQuestions)
		ai.POST("/generate-image", aiCtl.GenerateImage)
	}

	// Energy pipeline
	daily := api.Group("/daily")
	daily.Use(middlewares.AuthMiddleware())
	{
		daily.GET("/energy", energyCtl.Daily)
	}
	weekly := api.Group("/weekly")
	weekly.Use(middlewares.AuthMiddleware())
	{
		weekly.GET("/summary", energyCtl.Weekly)
	}

	// Parse-then-confirm upload flows
	upload := api.Group("/upload")
	upload.Use(middlewares.AuthMiddleware())
	{
		upload.POST("/inbody", inBodyCtl.Parse)
		upload.POST("/inbody/confirm", inBodyCtl.Confirm)
		upload.GET("/inbody", inBodyCtl.List)
		upload.GET("/inbody/latest", inBodyCtl.Latest)
		upload.POST("/coros", corosCtl.Parse)
		upload.POST("/coros/confirm", corosCtl.Confirm)
		upload.GET("/coros", corosCtl.List)
		upload.POST("/image", controllers.UploadImage)
	}

	food := api.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("/parse", foodCtl.Parse)
		food.POST("/log", foodCtl.Log)
		food.GET("/log", foodCtl.List)
	}

	// Devices and realtime alerts
	ws := api.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", rtCtl.AlertsWS)
	}
	if pushSvc != nil {
		deviceCtl := controllers.NewDeviceController(pushSvc)
		devices := api.Group("/devices")
		devices.Use(middlewares.AuthMiddleware())
		{
			devices.POST("/register", deviceCtl.Register)
			devices.GET("", deviceCtl.List)
		}
	}

	return r
}
