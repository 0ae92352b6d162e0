// Package repository contains the repository layer for the ElectroWay API
package repository

import (
	"fmt"

	"github.com/electroway/electrowayapi/internal/config"
	"github.com/electroway/electrowayapi/internal/models"
	"github.com/electroway/electrowayapi/pkg/utils/zaplogger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectPostgres connects to a Postgres database and returns a GORM database object
func ConnectPostgres(cfg *config.Config) (*gorm.DB, error) {
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing Postgres")

	// Set up GORM logger
	var logLevel logger.LogLevel
	switch cfg.PostgresLogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	case "info":
		logLevel = logger.Info
	default:
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Unique-index violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	// Open database connection
	db, err := gorm.Open(postgres.Open(cfg.PostgresDsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %v", err)
	}

	zaplogger.Info("  * connected")

	// AutoMigrate will create tables and add/modify columns
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %v", err)
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	tables := []struct {
		name  string
		model interface{}
	}{
		{models.UsersTableName, &models.UserModel{}},
		{models.SavedStationsTableName, &models.SavedStationModel{}},
	}

	zaplogger.Info("  * migrating tables")
	for _, table := range tables {
		err := db.AutoMigrate(table.model)
		if err != nil {
			return fmt.Errorf("failed to auto migrate table: %s, err:%v", table.name, err)
		}
		zaplogger.Info("    - \"" + table.name + "\"")
	}

	return nil
}
