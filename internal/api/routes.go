// Package api contains the API routes for the ElectroWay API
package api

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/electroway/electrowayapi/internal/api/handlers"
	"github.com/electroway/electrowayapi/internal/api/middleware"
	"github.com/electroway/electrowayapi/internal/config"
	"github.com/electroway/electrowayapi/internal/service"
	"github.com/electroway/electrowayapi/pkg/utils/response"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes configures the routes for the API
func SetupRoutes(e *echo.Echo, cfg *config.Config, db *gorm.DB, redisClient *redis.Client) {

	// Index route
	e.GET("/", func(c echo.Context) error {
		message := fmt.Sprintf("%s %s", cfg.APIName, cfg.APIVersion)
		return response.SuccessResponse(c, message)
	})

	tokenService := service.NewTokenService(cfg.JWTSecret)

	// Auth routes (unprotected)
	authService := service.NewAuthService(db, tokenService)
	authHandler := handlers.NewAuthHandler(authService)
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// Saved station routes (protected)
	stationService := service.NewStationService(db, redisClient)
	stationHandler := handlers.NewStationHandler(stationService)
	stationGroup := e.Group("/savedStations")
	stationGroup.Use(middleware.AuthMiddleware(tokenService))
	stationGroup.GET("", stationHandler.ListStations)
	stationGroup.POST("", stationHandler.SaveStation)
	stationGroup.PATCH("/:stationId", stationHandler.UpdateNote)
	stationGroup.DELETE("/:stationId", stationHandler.DeleteStation)
}
