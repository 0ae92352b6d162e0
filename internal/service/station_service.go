// Package service contains the service layer for the ElectroWay API
package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/electroway/electrowayapi/internal/models"
	"github.com/electroway/electrowayapi/internal/repository"
	"github.com/electroway/electrowayapi/pkg/utils/apperr"
	"github.com/electroway/electrowayapi/pkg/utils/zaplogger"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StationService handles the saved station bookmarks of a user. Every
// operation takes the authenticated userID and folds it into the lookup,
// so one user can never touch another user's bookmarks.
type StationService struct {
	repo  *repository.StationRepository
	cache *repository.StationCache
}

// NewStationService creates a new service for saved stations. The Redis
// client is optional; without it every list goes to Postgres.
func NewStationService(db *gorm.DB, redisClient *redis.Client) *StationService {
	svc := &StationService{
		repo: repository.NewStationRepository(db),
	}
	if redisClient != nil {
		svc.cache = repository.NewStationCache(redisClient)
	}
	return svc
}

// ListStations returns all stations saved by the user, coordinates included
func (s *StationService) ListStations(ctx context.Context, userID string) ([]models.SavedStationModel, error) {
	if s.cache != nil {
		if stations, ok := s.cache.GetList(ctx, userID); ok {
			return stations, nil
		}
	}

	stations, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("failed to list saved stations", err)
	}
	if stations == nil {
		stations = []models.SavedStationModel{}
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, userID, stations); err != nil {
			zaplogger.Warn("failed to cache station list", zaplogger.Fields{"error": err.Error()})
		}
	}
	return stations, nil
}

// SaveStation bookmarks a station for the user. The stationID is coerced
// to its canonical string form; tags defaults to an empty mapping and
// note to an empty string.
func (s *StationService) SaveStation(ctx context.Context, userID string, stationID interface{}, lat, lon *float64, tags map[string]interface{}, note string) (*models.SavedStationModel, error) {
	id := canonicalStationID(stationID)
	if id == "" || lat == nil || lon == nil {
		return nil, apperr.Validation("stationId, lat, lon are required")
	}
	if tags == nil {
		tags = map[string]interface{}{}
	}

	station := &models.SavedStationModel{
		UserID:    userID,
		StationID: id,
		Lat:       *lat,
		Lon:       *lon,
		Tags:      datatypes.JSONMap(tags),
		Note:      note,
	}

	if err := s.repo.CreateStation(station); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Already saved")
		}
		return nil, apperr.Internal("failed to save station", err)
	}

	s.invalidate(ctx, userID)
	return station, nil
}

// UpdateNote replaces the note of a saved station wholesale. Coordinates
// and tags are never touched.
func (s *StationService) UpdateNote(ctx context.Context, userID, stationID, note string) (*models.SavedStationModel, error) {
	station, err := s.repo.UpdateNote(userID, stationID, note)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Saved station not found")
		}
		return nil, apperr.Internal("failed to update note", err)
	}

	s.invalidate(ctx, userID)
	return station, nil
}

// DeleteStation removes a saved station. The delete is a single
// conditional statement, so of two concurrent deletes exactly one
// succeeds and the other observes not-found.
func (s *StationService) DeleteStation(ctx context.Context, userID, stationID string) error {
	rowsAffected, err := s.repo.DeleteStation(userID, stationID)
	if err != nil {
		return apperr.Internal("failed to delete saved station", err)
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Station not found")
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *StationService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		zaplogger.Warn("failed to invalidate station list cache", zaplogger.Fields{"error": err.Error()})
	}
}

// canonicalStationID renders a client-supplied station identifier as the
// string form it is stored and compared under. Providers mint these ids,
// so numbers and strings must collapse to the same key.
func canonicalStationID(stationID interface{}) string {
	switch v := stationID.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}
