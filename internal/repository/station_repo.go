// Package repository contains the repository layer for the ElectroWay API
package repository

import (
	"github.com/electroway/electrowayapi/internal/models"
	"gorm.io/gorm"
)

type StationRepository struct {
	DB *gorm.DB
}

// NewStationRepository creates a new repository for saved station records
func NewStationRepository(db *gorm.DB) *StationRepository {
	return &StationRepository{DB: db}
}

// ListByUser returns all saved stations owned by the given user
func (r *StationRepository) ListByUser(userID string) ([]models.SavedStationModel, error) {
	var stations []models.SavedStationModel
	err := r.DB.Where("user_id = ?", userID).Find(&stations).Error
	if err != nil {
		return nil, err
	}
	return stations, nil
}

// GetStation gets a saved station by (user_id, station_id)
func (r *StationRepository) GetStation(userID, stationID string) (*models.SavedStationModel, error) {
	var station models.SavedStationModel
	err := r.DB.Where("user_id = ? AND station_id = ?", userID, stationID).First(&station).Error
	if err != nil {
		return nil, err
	}
	return &station, nil
}

// CreateStation inserts a new saved station. A second save of the same
// (user_id, station_id) pair surfaces as gorm.ErrDuplicatedKey via the
// composite unique index, so concurrent saves need no pre-check.
func (r *StationRepository) CreateStation(station *models.SavedStationModel) error {
	return r.DB.Create(station).Error
}

// UpdateNote replaces the note of a saved station and returns the updated
// record. Returns gorm.ErrRecordNotFound when no row matches the pair.
func (r *StationRepository) UpdateNote(userID, stationID, note string) (*models.SavedStationModel, error) {
	result := r.DB.Model(&models.SavedStationModel{}).
		Where("user_id = ? AND station_id = ?", userID, stationID).
		Update("note", note)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetStation(userID, stationID)
}

// DeleteStation deletes a saved station in a single conditional DELETE
// and reports how many rows went away. Two concurrent deletes of the
// same pair race on the row itself, so the loser observes zero rows.
func (r *StationRepository) DeleteStation(userID, stationID string) (int64, error) {
	result := r.DB.Where("user_id = ? AND station_id = ?", userID, stationID).
		Delete(&models.SavedStationModel{})
	return result.RowsAffected, result.Error
}

// CountStations returns the total number of saved stations across users
func (r *StationRepository) CountStations() (int64, error) {
	var count int64
	err := r.DB.Model(&models.SavedStationModel{}).Count(&count).Error
	return count, err
}
