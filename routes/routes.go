package routes

import (
	"pokerhands/controllers"
	"pokerhands/middleware"
	"pokerhands/utils"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options carries what the routes need from the server configuration.
type Options struct {
	Logger       *log.Logger
	Clock        quartz.Clock
	AllowOrigins []string
	Version      string
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, opts Options) {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	// utils global
	router.Use(utils.Logger(opts.Logger, opts.Clock))
	router.Use(utils.ErrorHandler(opts.Logger))
	middleware.SetUpMiddleware(router, opts.AllowOrigins)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/ping", controllers.Ping(opts.Version))

	// API routes group
	api := router.Group("/api/v1")

	hands := api.Group("/hands")
	{
		hands.POST("/evaluate", controllers.EvaluateHands(opts.Logger))

		hands.GET("/categories", controllers.ListCategories)
	}
}
