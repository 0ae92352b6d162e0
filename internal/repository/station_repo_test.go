package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/electroway/electrowayapi/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const testUserID = "5f6b2c9e-0000-4000-8000-000000000001"

func TestCreateStation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "saved_stations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	station := &models.SavedStationModel{
		UserID:    testUserID,
		StationID: "42",
		Lat:       10.0,
		Lon:       20.0,
		Tags:      datatypes.JSONMap{},
	}
	if err := repo.CreateStation(station); err != nil {
		t.Fatalf("CreateStation() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCreateStationDuplicatePair(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "saved_stations"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	station := &models.SavedStationModel{
		UserID:    testUserID,
		StationID: "42",
		Lat:       10.0,
		Lon:       20.0,
		Tags:      datatypes.JSONMap{},
	}
	err := repo.CreateStation(station)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "station_id", "lat", "lon", "tags", "note"}).
		AddRow(1, testUserID, "42", 10.0, 20.0, []byte(`{"power":"50kW"}`), "fast charger").
		AddRow(2, testUserID, "77", 11.5, 21.5, []byte(`{}`), "")
	mock.ExpectQuery(`SELECT \* FROM "saved_stations" WHERE user_id =`).
		WithArgs(testUserID).
		WillReturnRows(rows)

	stations, err := repo.ListByUser(testUserID)
	if err != nil {
		t.Fatalf("ListByUser() error: %v", err)
	}
	if len(stations) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(stations))
	}
	if stations[0].StationID != "42" || stations[0].Lat != 10.0 {
		t.Fatalf("unexpected first station: %+v", stations[0])
	}
	if stations[0].Tags["power"] != "50kW" {
		t.Fatalf("expected tags preserved, got %+v", stations[0].Tags)
	}
}

func TestUpdateNote(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "saved_stations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows := sqlmock.NewRows([]string{"id", "user_id", "station_id", "lat", "lon", "tags", "note"}).
		AddRow(1, testUserID, "42", 10.0, 20.0, []byte(`{}`), "fast charger")
	mock.ExpectQuery(`SELECT \* FROM "saved_stations" WHERE user_id =`).
		WillReturnRows(rows)

	station, err := repo.UpdateNote(testUserID, "42", "fast charger")
	if err != nil {
		t.Fatalf("UpdateNote() error: %v", err)
	}
	if station.Note != "fast charger" {
		t.Fatalf("expected updated note, got %q", station.Note)
	}
	if station.Lat != 10.0 || station.Lon != 20.0 {
		t.Fatalf("coordinates must be untouched, got %+v", station)
	}
}

func TestUpdateNoteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "saved_stations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := repo.UpdateNote(testUserID, "missing", "note")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteStation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "saved_stations"`).
		WithArgs(testUserID, "42").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rowsAffected, err := repo.DeleteStation(testUserID, "42")
	if err != nil {
		t.Fatalf("DeleteStation() error: %v", err)
	}
	if rowsAffected != 1 {
		t.Fatalf("expected 1 row deleted, got %d", rowsAffected)
	}
}

func TestDeleteStationGone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "saved_stations"`).
		WithArgs(testUserID, "42").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rowsAffected, err := repo.DeleteStation(testUserID, "42")
	if err != nil {
		t.Fatalf("DeleteStation() error: %v", err)
	}
	if rowsAffected != 0 {
		t.Fatalf("expected 0 rows deleted, got %d", rowsAffected)
	}
}
