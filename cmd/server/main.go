package main

import (
	"net/http"

	"gameshelf/backend/internal/auth"
	"gameshelf/backend/internal/config"
	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/handler"
	"gameshelf/backend/internal/logging"
	"gameshelf/backend/internal/search"
	"gameshelf/backend/internal/store"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gameshelf/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           GameShelf API
// @version         1.0
// @description     This is the API for the GameShelf game catalog.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := logging.New(config.AppConfig.LogLevel)

	db, err := database.Connect(config.AppConfig.DatabaseDriver, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to the database")
	}

	st := store.New(db)
	handler.Setup(st, search.New(st))

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Public catalog routes
		apiV1.GET("/games", handler.GetGames)
		apiV1.GET("/games/:id", handler.GetGameByID)
		apiV1.GET("/filters", handler.GetFilterOptions)
		apiV1.GET("/developers", handler.GetDevelopers)
		apiV1.GET("/genres", handler.GetGenres)
		apiV1.GET("/platforms", handler.GetPlatforms)
		apiV1.GET("/tags", handler.GetTags)

		// Admin login issues the token the protected group requires
		apiV1.POST("/admin/login", handler.AdminLogin)

		// Admin routes (protected by admin token)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.RequireAdmin())
		{
			// Games CRUD and association management
			adminGameRoutes := adminRoutes.Group("/games")
			{
				adminGameRoutes.POST("", handler.CreateGame)
				adminGameRoutes.POST("/import", handler.ImportGame)
				adminGameRoutes.PUT("/:id", handler.UpdateGame)
				adminGameRoutes.DELETE("/:id", handler.DeleteGame)
				adminGameRoutes.POST("/:id/platforms/:platformID", handler.AttachPlatform)
				adminGameRoutes.DELETE("/:id/platforms/:platformID", handler.DetachPlatform)
				adminGameRoutes.POST("/:id/tags/:tagID", handler.AttachTag)
				adminGameRoutes.DELETE("/:id/tags/:tagID", handler.DetachTag)
			}

			// Cascading catalog deletes
			adminRoutes.DELETE("/developers/:id", handler.DeleteDeveloper)
			adminRoutes.DELETE("/genres/:id", handler.DeleteGenre)
		}
	}

	logger.Info().Str("addr", config.AppConfig.ServerAddr).Msg("Server is running")
	logger.Info().Msg("Swagger UI is available at /swagger/index.html")
	if err := router.Run(config.AppConfig.ServerAddr); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}
