// Package handlers contains the handlers for the API
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/electroway/electrowayapi/internal/api/middleware"
	"github.com/electroway/electrowayapi/internal/service"
	"github.com/electroway/electrowayapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// StationHandler is the handler for the saved stations API
type StationHandler struct {
	service *service.StationService
}

// NewStationHandler creates a new handler for the saved stations API
func NewStationHandler(service *service.StationService) *StationHandler {
	return &StationHandler{service: service}
}

// ListStations returns all stations saved by the authenticated user
func (h *StationHandler) ListStations(c echo.Context) error {
	userID, err := middleware.GetUserIDFromEchoContext(c)
	if err != nil {
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Invalid token")
	}

	stations, err := h.service.ListStations(c.Request().Context(), userID)
	if err != nil {
		return response.AppErrorResponse(c, err)
	}

	return response.SuccessResponse(c, stations)
}

// SaveStation bookmarks a station for the authenticated user
func (h *StationHandler) SaveStation(c echo.Context) error {
	userID, err := middleware.GetUserIDFromEchoContext(c)
	if err != nil {
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Invalid token")
	}

	// stationId is decoded loosely because providers mint both string
	// and numeric ids; lat/lon are pointers so JSON null and absent are
	// both rejected as missing
	var req struct {
		StationID interface{}            `json:"stationId"`
		Lat       *float64               `json:"lat"`
		Lon       *float64               `json:"lon"`
		Tags      map[string]interface{} `json:"tags"`
		Note      string                 `json:"note"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid JSON body")
	}

	station, err := h.service.SaveStation(c.Request().Context(), userID, req.StationID, req.Lat, req.Lon, req.Tags, req.Note)
	if err != nil {
		return response.AppErrorResponse(c, err)
	}

	return response.CreatedResponse(c, station)
}

// UpdateNote replaces the note of a saved station
func (h *StationHandler) UpdateNote(c echo.Context) error {
	userID, err := middleware.GetUserIDFromEchoContext(c)
	if err != nil {
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Invalid token")
	}
	stationID := c.Param("stationId")

	// An empty body counts as an absent note, not a malformed request
	var req struct {
		Note *string `json:"note"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid JSON body")
	}

	// An absent or null note clears the field, it never means "no change"
	note := ""
	if req.Note != nil {
		note = *req.Note
	}

	station, err := h.service.UpdateNote(c.Request().Context(), userID, stationID, note)
	if err != nil {
		return response.AppErrorResponse(c, err)
	}

	return response.SuccessResponse(c, station)
}

// DeleteStation removes a saved station of the authenticated user
func (h *StationHandler) DeleteStation(c echo.Context) error {
	userID, err := middleware.GetUserIDFromEchoContext(c)
	if err != nil {
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Invalid token")
	}
	stationID := c.Param("stationId")

	if err := h.service.DeleteStation(c.Request().Context(), userID, stationID); err != nil {
		return response.AppErrorResponse(c, err)
	}

	return response.SuccessResponse(c, map[string]interface{}{
		"message": "Deleted successfully",
	})
}
