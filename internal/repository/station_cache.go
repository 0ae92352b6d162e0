// Package repository contains the repository layer for the ElectroWay API
package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/electroway/electrowayapi/internal/models"
	"github.com/redis/go-redis/v9"
)

// stationListTTL bounds staleness when a DEL is lost after a mutation.
const stationListTTL = 30 * time.Second

const stationListKeyPrefix = "saved_stations:"

// StationCache is a read-through Redis cache for per-user station lists
type StationCache struct {
	redisClient *redis.Client
}

// NewStationCache creates a new cache for saved station lists
func NewStationCache(redisClient *redis.Client) *StationCache {
	return &StationCache{redisClient: redisClient}
}

// GetList returns the cached station list for the user, or ok=false on a miss
func (c *StationCache) GetList(ctx context.Context, userID string) ([]models.SavedStationModel, bool) {
	payload, err := c.redisClient.Get(ctx, stationListKeyPrefix+userID).Bytes()
	if err != nil {
		return nil, false
	}

	var stations []models.SavedStationModel
	if err := json.Unmarshal(payload, &stations); err != nil {
		return nil, false
	}
	return stations, true
}

// SetList caches the station list for the user
func (c *StationCache) SetList(ctx context.Context, userID string, stations []models.SavedStationModel) error {
	payload, err := json.Marshal(stations)
	if err != nil {
		return err
	}
	return c.redisClient.Set(ctx, stationListKeyPrefix+userID, payload, stationListTTL).Err()
}

// Invalidate drops the cached station list for the user
func (c *StationCache) Invalidate(ctx context.Context, userID string) error {
	return c.redisClient.Del(ctx, stationListKeyPrefix+userID).Err()
}
