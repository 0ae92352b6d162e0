// Package service contains the service layer for the ElectroWay API
package service

import (
	"time"

	"github.com/electroway/electrowayapi/internal/repository"
	"github.com/electroway/electrowayapi/pkg/utils/zaplogger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs the scheduled background jobs
type CronService struct {
	c           *cron.Cron
	userRepo    *repository.UserRepository
	stationRepo *repository.StationRepository
}

// NewCronService creates a new CronService
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		c:           cron.New(),
		userRepo:    repository.NewUserRepository(db),
		stationRepo: repository.NewStationRepository(db),
	}
}

// Start starts the cron service
func (cs *CronService) Start() {
	zaplogger.Info("Initializing CronService")

	cs.addScheduledJob("Daily Stats Job", cs.statsJob, "0 0 * * *") // Once at midnight
	cs.addStartupJob("Daily Stats Job", cs.statsJob, 5*time.Second)

	cs.c.Start()
}

// addStartupJob adds a startup job to the cron service
func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		zaplogger.Info("STARTED STARTUP job", zaplogger.Fields{
			"job": name,
		})
		job()
		zaplogger.Info("COMPLETED STARTUP job", zaplogger.Fields{
			"job": name,
		})
	}()
	zaplogger.Info("QUEUED STARTUP job", zaplogger.Fields{
		"job": name,
	})
}

func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("STARTED SCHEDULED JOB", zaplogger.Fields{
			"job": name,
		})
		job()
		zaplogger.Info("COMPLETED SCHEDULED JOB", zaplogger.Fields{
			"job": name,
		})
	})
	if err != nil {
		zaplogger.Error("FAILED TO QUEUE SCHEDULED JOB", zaplogger.Fields{
			"job":   name,
			"error": err.Error(),
		})
		return
	}
	zaplogger.Info("QUEUED SCHEDULED job", zaplogger.Fields{
		"job": name,
	})
}

// statsJob logs how many users and saved stations the store holds
func (cs *CronService) statsJob() {
	jobName := "Daily Stats Job"

	userCount, err := cs.userRepo.CountUsers()
	if err != nil {
		zaplogger.Error(jobName, zaplogger.Fields{
			"error": err.Error(),
		})
		return
	}

	stationCount, err := cs.stationRepo.CountStations()
	if err != nil {
		zaplogger.Error(jobName, zaplogger.Fields{
			"error": err.Error(),
		})
		return
	}

	zaplogger.Info(jobName, zaplogger.Fields{
		"users":          userCount,
		"saved_stations": stationCount,
	})
}
