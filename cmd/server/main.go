// Package main is the entry point for the ElectroWay API
package main

import (
	"log"

	"github.com/electroway/electrowayapi/internal/api"
	"github.com/electroway/electrowayapi/internal/api/middleware"
	"github.com/electroway/electrowayapi/internal/config"
	"github.com/electroway/electrowayapi/internal/repository"
	"github.com/electroway/electrowayapi/internal/service"
	"github.com/electroway/electrowayapi/pkg/utils/zaplogger"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration; the service must not start without the signing
	// secret or the Postgres DSN
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup logger
	defer zaplogger.Sync()
	zaplogger.SetLogLevel(cfg.ServerLogLevel)

	// startUpMessage
	zaplogger.Info(cfg.APIName + " - " + cfg.APIVersion + " initialized")

	// Connect to Postgres
	db, err := repository.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	zaplogger.Info("Postgres initialized")

	// Connect Redis
	redisClient, err := repository.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	zaplogger.Info("Redis initialized")

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupLoggerMiddleware(e)
	middleware.SetupCORSMiddleware(e, cfg.CORSOrigin)

	// Setup routes
	api.SetupRoutes(e, cfg, db, redisClient)

	// Setup and start cron jobs
	cronService := service.NewCronService(db)
	cronService.Start()

	// Start the server
	startServer(e, cfg)
}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	zaplogger.Info("SERVER STARTED ON PORT " + cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
