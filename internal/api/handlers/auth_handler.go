// Package handlers contains the handlers for the API
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/electroway/electrowayapi/internal/service"
	"github.com/electroway/electrowayapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// AuthHandler is the handler for signup and login
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler for signup and login
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup registers a new user and returns a token for the new identity
func (h *AuthHandler) Signup(c echo.Context) error {
	var req struct {
		Email           string `json:"email"`
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid JSON body")
	}

	token, err := h.service.Register(req.Email, req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		return response.AppErrorResponse(c, err)
	}

	return response.CreatedResponse(c, map[string]interface{}{
		"message": "Registered successfully!",
		"token":   token,
	})
}

// Login verifies credentials and returns a token and the display username
func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid JSON body")
	}

	token, username, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return response.AppErrorResponse(c, err)
	}

	return response.SuccessResponse(c, map[string]interface{}{
		"token":    token,
		"username": username,
	})
}
