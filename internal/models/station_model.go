// Package models contains the models for the ElectroWay API
package models

import (
	"time"

	"gorm.io/datatypes"
)

const SavedStationsTableName = "saved_stations"

// SavedStationModel is a per-user bookmark of an externally-identified
// charging station. The composite unique index on (user_id, station_id)
// is what rejects the loser of a concurrent double-save.
type SavedStationModel struct {
	ID        uint              `gorm:"primaryKey" json:"-"`
	UserID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_user_station,priority:1" json:"userId"`
	StationID string            `gorm:"not null;uniqueIndex:idx_user_station,priority:2" json:"stationId"`
	Lat       float64           `gorm:"not null" json:"lat"`
	Lon       float64           `gorm:"not null" json:"lon"`
	Tags      datatypes.JSONMap `json:"tags"`
	Note      string            `json:"note"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SavedStationModel) TableName() string {
	return SavedStationsTableName
}
